package search_available_boats

import (
	"context"
	"fmt"

	"github.com/m04kA/BRM-RentalService/internal/availability"
	"github.com/m04kA/BRM-RentalService/internal/domain"
	"github.com/m04kA/BRM-RentalService/pkg/ptr"
)

// UseCase use case для поиска лодок, свободных на весь интервал дат
type UseCase struct {
	boatRepo    BoatRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(boatRepo BoatRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		boatRepo:    boatRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case поиска доступных лодок
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SearchAvailableBoats: validation failed: %v", err)
		return nil, err
	}

	startDate := availability.NormalizeDate(req.StartDate)
	endDate := availability.NormalizeDate(req.EndDate)

	// Фильтр по статусу лодки независим от фильтра по занятости дат,
	// их можно комбинировать
	boatsFilter := domain.BoatsFilter{CompanyID: req.CompanyID}
	if req.Status != nil {
		status := domain.BoatStatus(*req.Status)
		boatsFilter.Status = &status
	}

	boats, err := uc.boatRepo.ListWithFilter(ctx, boatsFilter)
	if err != nil {
		uc.logger.Error("SearchAvailableBoats: failed to list boats: %v", err)
		return nil, fmt.Errorf("%w: failed to list boats: %v", ErrInternal, err)
	}

	// Активные бронирования всего парка на интервал одной выборкой
	bookings, err := uc.bookingRepo.ListWithFilter(ctx, domain.BookingsFilter{
		DateFrom: ptr.Ptr(startDate),
		DateTo:   ptr.Ptr(endDate),
	})
	if err != nil {
		uc.logger.Error("SearchAvailableBoats: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	free := availability.FilterAvailable(boats, startDate, endDate, bookings)

	result := make([]BoatResponse, 0, len(free))
	for _, boat := range free {
		result = append(result, toBoatResponse(boat))
	}

	uc.logger.Info("SearchAvailableBoats: %d of %d boats free for %s..%s",
		len(free), len(boats), startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat))

	return &Response{
		StartDate: startDate.Format(domain.DateFormat),
		EndDate:   endDate.Format(domain.DateFormat),
		Boats:     result,
		Total:     len(result),
	}, nil
}

func toBoatResponse(boat *domain.Boat) BoatResponse {
	return BoatResponse{
		ID:            boat.ID,
		CompanyID:     boat.CompanyID,
		Name:          boat.Name,
		Type:          boat.Type,
		Capacity:      boat.Capacity,
		PricePerDay:   boat.PricePerDay,
		Location:      boat.Location,
		Status:        string(boat.Status),
		BookingsCount: boat.BookingsCount,
		Features:      boat.Features,
		ImageURL:      boat.ImageURL,
	}
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}
	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}
	if err := availability.ValidateRange(req.StartDate, req.EndDate); err != nil {
		return fmt.Errorf("%w: endDate must be after startDate", ErrInvalidInput)
	}
	if req.Status != nil && !domain.IsValidBoatStatus(domain.BoatStatus(*req.Status)) {
		return fmt.Errorf("%w: unknown boat status %q", ErrInvalidInput, *req.Status)
	}
	return nil
}
