package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/BRM-RentalService/internal/availability"
	"github.com/m04kA/BRM-RentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Проверки не обращаются к хранилищу; существование лодки и доступность дат
// проверяются дальше по шагам usecase
func validateRequest(req *Request) error {
	if req.BoatID <= 0 {
		return fmt.Errorf("%w: boatId must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	// Вырожденный интервал (endDate <= startDate) отклоняется до оценки доступности
	if err := availability.ValidateRange(req.StartDate, req.EndDate); err != nil {
		return fmt.Errorf("%w: endDate must be after startDate", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if len(req.CustomerName) > domain.MaxNameLength {
		return fmt.Errorf("%w: customerName is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerEmail) == "" {
		return fmt.Errorf("%w: customerEmail is required", ErrInvalidInput)
	}

	if !strings.Contains(req.CustomerEmail, "@") {
		return fmt.Errorf("%w: customerEmail is malformed", ErrInvalidInput)
	}

	if req.Guests < domain.MinGuests {
		return fmt.Errorf("%w: guests must be at least %d", ErrInvalidInput, domain.MinGuests)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}

// validateDates проверяет даты относительно текущего момента
func validateDates(start, end, now time.Time) error {
	// Дата начала аренды не может быть в прошлом
	if availability.NormalizeDate(start).Before(availability.NormalizeDate(now)) {
		return ErrInvalidDate
	}

	days := rentalDays(start, end)
	if days > domain.MaxRentalDays {
		return fmt.Errorf("%w: at most %d days per booking", ErrRentalTooLong, domain.MaxRentalDays)
	}

	return nil
}

// rentalDays возвращает количество дней аренды в полуоткрытом интервале
func rentalDays(start, end time.Time) int {
	return int(availability.NormalizeDate(end).Sub(availability.NormalizeDate(start)).Hours() / 24)
}
