package boats

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/BRM-RentalService/internal/domain"
	boatRepo "github.com/m04kA/BRM-RentalService/internal/infra/storage/boat"
	companyClient "github.com/m04kA/BRM-RentalService/internal/integrations/companyservice"
	"github.com/m04kA/BRM-RentalService/internal/service/boats/models"
)

// Service сервис для работы с парком лодок
type Service struct {
	boatRepo      BoatRepository
	companyClient CompanyServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса лодок
func NewService(boatRepo BoatRepository, companyClient CompanyServiceClient, logger Logger) *Service {
	return &Service{
		boatRepo:      boatRepo,
		companyClient: companyClient,
		logger:        logger,
	}
}

// Create добавляет лодку в парк компании
// Доступно только менеджерам компании; счётчики бронирований начинаются с нуля
func (s *Service) Create(ctx context.Context, req *models.CreateBoatRequest) (*models.BoatResponse, error) {
	s.logger.Info("Create: adding boat %q to company=%d by user=%d", req.Name, req.CompanyID, req.UserID)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	if err := s.checkManagerAccess(ctx, req.CompanyID, req.UserID); err != nil {
		return nil, err
	}

	boat := &domain.Boat{
		CompanyID:   req.CompanyID,
		Name:        req.Name,
		Type:        req.Type,
		Capacity:    req.Capacity,
		PricePerDay: req.PricePerDay,
		Location:    req.Location,
		Status:      domain.BoatStatusAvailable,
		Features:    req.Features,
		ImageURL:    req.ImageURL,
	}

	created, err := s.boatRepo.Create(ctx, boat)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created boat id=%d", created.ID)
	return models.FromDomainBoat(created), nil
}

// GetByID получает лодку по ID
// Публичная операция, доступна без авторизации
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BoatResponse, error) {
	boat, err := s.boatRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, boatRepo.ErrBoatNotFound) {
			s.logger.Warn("GetByID: boat id=%d not found", id)
			return nil, ErrBoatNotFound
		}
		s.logger.Error("GetByID: repository error for boat id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBoat(boat), nil
}

// List получает список лодок с фильтрацией по компании и статусу
// Публичная операция, доступна без авторизации
func (s *Service) List(ctx context.Context, req *models.ListBoatsRequest) (*models.BoatListResponse, error) {
	filter := domain.BoatsFilter{CompanyID: req.CompanyID}

	if req.Status != nil {
		status := domain.BoatStatus(*req.Status)
		if !domain.IsValidBoatStatus(status) {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: unknown boat status %q", ErrInvalidInput, *req.Status)
		}
		filter.Status = &status
	}

	boats, err := s.boatRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d boats", len(boats))
	return models.FromDomainBoatList(boats), nil
}

// Update обновляет данные лодки
// Доступно только менеджерам компании; счётчики бронирований
// через эту операцию не меняются
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateBoatRequest) (*models.BoatResponse, error) {
	s.logger.Info("Update: updating boat id=%d by user=%d", id, req.UserID)

	boat, err := s.boatRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, boatRepo.ErrBoatNotFound) {
			s.logger.Warn("Update: boat id=%d not found", id)
			return nil, ErrBoatNotFound
		}
		s.logger.Error("Update: repository error for boat id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := s.checkManagerAccess(ctx, boat.CompanyID, req.UserID); err != nil {
		return nil, err
	}

	if err := applyUpdate(boat, req); err != nil {
		s.logger.Warn("Update: validation failed for boat id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.boatRepo.Update(ctx, boat)
	if err != nil {
		if errors.Is(err, boatRepo.ErrBoatNotFound) {
			return nil, ErrBoatNotFound
		}
		s.logger.Error("Update: repository error for boat id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated boat id=%d", id)
	return models.FromDomainBoat(updated), nil
}

// Delete удаляет лодку из парка
// Доступно только менеджерам компании
func (s *Service) Delete(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Delete: deleting boat id=%d by user=%d", id, userID)

	boat, err := s.boatRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, boatRepo.ErrBoatNotFound) {
			s.logger.Warn("Delete: boat id=%d not found", id)
			return ErrBoatNotFound
		}
		s.logger.Error("Delete: repository error for boat id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.checkManagerAccess(ctx, boat.CompanyID, userID); err != nil {
		return err
	}

	if err := s.boatRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, boatRepo.ErrBoatNotFound) {
			return ErrBoatNotFound
		}
		s.logger.Error("Delete: repository error for boat id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted boat id=%d", id)
	return nil
}

// Вспомогательные методы

// checkManagerAccess проверяет, что пользователь является менеджером компании
func (s *Service) checkManagerAccess(ctx context.Context, companyID int64, userID int64) error {
	company, err := s.companyClient.GetCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, companyClient.ErrCompanyNotFound) {
			s.logger.Warn("checkManagerAccess: company id=%d not found", companyID)
			return ErrCompanyNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get company id=%d: %v", companyID, err)
		return fmt.Errorf("%w: checkManagerAccess - failed to get company: %v", ErrInternal, err)
	}

	if !company.IsManager(userID) {
		s.logger.Warn("checkManagerAccess: user=%d is not a manager of company=%d", userID, companyID)
		return ErrAccessDenied
	}

	return nil
}

// validateCreateRequest валидирует запрос на создание лодки
func validateCreateRequest(req *models.CreateBoatRequest) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyId must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Type) == "" {
		return fmt.Errorf("%w: type is required", ErrInvalidInput)
	}
	if req.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	if req.PricePerDay <= 0 {
		return fmt.Errorf("%w: pricePerDay must be positive", ErrInvalidInput)
	}
	if len(req.Features) > domain.MaxFeaturesPerBoat {
		return fmt.Errorf("%w: too many features", ErrInvalidInput)
	}
	return nil
}

// applyUpdate применяет частичное обновление к доменной модели
func applyUpdate(boat *domain.Boat, req *models.UpdateBoatRequest) error {
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		boat.Name = *req.Name
	}
	if req.Type != nil {
		if strings.TrimSpace(*req.Type) == "" {
			return fmt.Errorf("%w: type cannot be empty", ErrInvalidInput)
		}
		boat.Type = *req.Type
	}
	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
		}
		boat.Capacity = *req.Capacity
	}
	if req.PricePerDay != nil {
		if *req.PricePerDay <= 0 {
			return fmt.Errorf("%w: pricePerDay must be positive", ErrInvalidInput)
		}
		boat.PricePerDay = *req.PricePerDay
	}
	if req.Location != nil {
		boat.Location = *req.Location
	}
	if req.Status != nil {
		status := domain.BoatStatus(*req.Status)
		if !domain.IsValidBoatStatus(status) {
			return fmt.Errorf("%w: unknown boat status %q", ErrInvalidInput, *req.Status)
		}
		boat.Status = status
	}
	if req.Features != nil {
		if len(*req.Features) > domain.MaxFeaturesPerBoat {
			return fmt.Errorf("%w: too many features", ErrInvalidInput)
		}
		boat.Features = *req.Features
	}
	if req.ImageURL != nil {
		boat.ImageURL = req.ImageURL
	}
	return nil
}
