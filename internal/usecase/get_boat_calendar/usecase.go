package get_boat_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BRM-RentalService/internal/availability"
	"github.com/m04kA/BRM-RentalService/internal/domain"
	boatRepo "github.com/m04kA/BRM-RentalService/internal/infra/storage/boat"
	"github.com/m04kA/BRM-RentalService/pkg/ptr"
)

// UseCase use case для построения календаря доступности лодки на месяц
type UseCase struct {
	bookingRepo BookingRepository
	boatRepo    BoatRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, boatRepo BoatRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		boatRepo:    boatRepo,
		logger:      logger,
	}
}

// Execute выполняет use case построения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetBoatCalendar: validation failed: %v", err)
		return nil, err
	}

	// Лодка должна существовать; иначе календарь бессмысленен
	if _, err := uc.boatRepo.GetByID(ctx, req.BoatID); err != nil {
		if errors.Is(err, boatRepo.ErrBoatNotFound) {
			uc.logger.Warn("GetBoatCalendar: boat id=%d not found", req.BoatID)
			return nil, ErrBoatNotFound
		}
		uc.logger.Error("GetBoatCalendar: failed to get boat id=%d: %v", req.BoatID, err)
		return nil, fmt.Errorf("%w: failed to get boat: %v", ErrInternal, err)
	}

	// Интервал месяца полуоткрытый: захватывает и бронирования,
	// пересекающие границы месяца с любой стороны
	monthStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	bookings, err := uc.bookingRepo.ListWithFilter(ctx, domain.BookingsFilter{
		BoatID:   ptr.Ptr(req.BoatID),
		DateFrom: ptr.Ptr(monthStart),
		DateTo:   ptr.Ptr(monthEnd),
	})
	if err != nil {
		uc.logger.Error("GetBoatCalendar: failed to list bookings for boat id=%d: %v", req.BoatID, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	calendar := availability.BuildCalendar(req.BoatID, time.Month(req.Month), req.Year, bookings)

	days := make([]DayResponse, 0, len(calendar.Days))
	for _, day := range calendar.Days {
		days = append(days, DayResponse{
			Date:      day.Date.Format(domain.DateFormat),
			Available: day.Available,
		})
	}

	return &Response{
		BoatID: calendar.BoatID,
		Month:  int(calendar.Month),
		Year:   calendar.Year,
		Days:   days,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BoatID <= 0 {
		return fmt.Errorf("%w: boatId must be positive", ErrInvalidInput)
	}
	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}
	if req.Year < 1 {
		return fmt.Errorf("%w: year must be positive", ErrInvalidInput)
	}
	return nil
}
