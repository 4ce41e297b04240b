package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BRM-RentalService/internal/domain"
	boatRepo "github.com/m04kA/BRM-RentalService/internal/infra/storage/boat"
	bookingRepo "github.com/m04kA/BRM-RentalService/internal/infra/storage/booking"
	companyClient "github.com/m04kA/BRM-RentalService/internal/integrations/companyservice"
	"github.com/m04kA/BRM-RentalService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
// Создание бронирований вынесено в отдельный usecase с сериализуемой
// транзакцией; здесь живут операции чтения и администрирования
type Service struct {
	bookingRepo   BookingRepository
	boatRepo      BoatRepository
	companyClient CompanyServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	boatRepo BoatRepository,
	companyClient CompanyServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		boatRepo:      boatRepo,
		companyClient: companyClient,
		logger:        logger,
	}
}

// GetByID получает бронирование по ID
// Доступно только менеджерам компании, которой принадлежит лодка
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkBoatManagerAccess(ctx, booking.BoatID, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с фильтрацией
// Выборка всегда ограничена лодкой или парком компании; в обоих случаях
// доступ проверяется через менеджеров компании-владельца
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	if req.BoatID == nil && req.CompanyID == nil {
		s.logger.Warn("List: neither boatId nor companyId given by user=%d", req.UserID)
		return nil, fmt.Errorf("%w: boatId or companyId is required", ErrInvalidInput)
	}

	filter := domain.BookingsFilter{
		DateFrom:         req.DateFrom,
		DateTo:           req.DateTo,
		IncludeCancelled: req.IncludeCancelled,
	}

	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s from user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	switch {
	case req.BoatID != nil:
		if err := s.checkBoatManagerAccess(ctx, *req.BoatID, req.UserID); err != nil {
			return nil, err
		}
		filter.BoatID = req.BoatID

	default:
		if err := s.checkManagerAccess(ctx, *req.CompanyID, req.UserID); err != nil {
			return nil, err
		}

		// Бронирования компании собираются по всему её парку
		boats, err := s.boatRepo.ListWithFilter(ctx, domain.BoatsFilter{CompanyID: req.CompanyID})
		if err != nil {
			s.logger.Error("List: failed to list boats of company=%d: %v", *req.CompanyID, err)
			return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
		}
		if len(boats) == 0 {
			return models.FromDomainBookingList(nil), nil
		}

		boatIDs := make([]int64, 0, len(boats))
		for _, boat := range boats {
			boatIDs = append(boatIDs, boat.ID)
		}
		filter.BoatIDs = boatIDs
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Доступно только менеджерам компании; отмена освобождает даты,
// но запись остаётся в истории
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.checkBoatManagerAccess(ctx, booking.BoatID, req.UserID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", req.UserID, bookingID)
		return err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// UpdateStatus обновляет статус бронирования
// Доступно только менеджерам компании; переходы проверяются
// по жизненному циклу бронирования
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if err := s.checkBoatManagerAccess(ctx, booking.BoatID, req.UserID); err != nil {
		return err
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if !domain.CanTransition(booking.Status, newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%d",
			booking.Status, newStatus, bookingID)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	// Отмена идёт через Cancel, чтобы проставить cancelled_at
	if newStatus == domain.StatusCancelled {
		if err := s.bookingRepo.Cancel(ctx, bookingID); err != nil {
			s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}
		return nil
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// Delete физически удаляет бронирование
// Предназначено для ошибочных записей; доступно только менеджерам компании
func (s *Service) Delete(ctx context.Context, bookingID int64, userID int64) error {
	s.logger.Info("Delete: deleting booking id=%d by user=%d", bookingID, userID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.checkBoatManagerAccess(ctx, booking.BoatID, userID); err != nil {
		s.logger.Warn("Delete: access denied for user=%d to booking id=%d", userID, bookingID)
		return err
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", bookingID)
	return nil
}

// Вспомогательные методы

// checkBoatManagerAccess проверяет, что пользователь является менеджером
// компании, которой принадлежит лодка
func (s *Service) checkBoatManagerAccess(ctx context.Context, boatID int64, userID int64) error {
	boat, err := s.boatRepo.GetByID(ctx, boatID)
	if err != nil {
		if errors.Is(err, boatRepo.ErrBoatNotFound) {
			s.logger.Warn("checkBoatManagerAccess: boat id=%d not found", boatID)
			return ErrBoatNotFound
		}
		s.logger.Error("checkBoatManagerAccess: failed to get boat id=%d: %v", boatID, err)
		return fmt.Errorf("%w: checkBoatManagerAccess - failed to get boat: %v", ErrInternal, err)
	}

	return s.checkManagerAccess(ctx, boat.CompanyID, userID)
}

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
