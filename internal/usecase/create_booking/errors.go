package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BRM-RentalService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных;
	// обёртка всегда называет конкретное поле
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrBoatNotFound возвращается, когда лодка не найдена
	ErrBoatNotFound = errors.New("create_booking: boat not found")

	// ErrDatesNotAvailable возвращается, когда запрошенный интервал пересекается
	// с активным бронированием лодки
	ErrDatesNotAvailable = errors.New("create_booking: dates are not available")

	// ErrTooManyGuests возвращается, когда количество гостей превышает вместимость лодки
	ErrTooManyGuests = errors.New("create_booking: guests exceed boat capacity")

	// ErrInvalidDate возвращается, когда дата начала аренды в прошлом
	ErrInvalidDate = errors.New("create_booking: booking start date is in the past")

	// ErrRentalTooLong возвращается, когда длительность аренды превышает лимит
	ErrRentalTooLong = errors.New("create_booking: rental period is too long")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ConflictError несёт занятый период, чтобы клиент мог предложить другие даты
// errors.Is(err, ErrDatesNotAvailable) для такой ошибки истинен
type ConflictError struct {
	ConflictStart time.Time
	ConflictEnd   time.Time
}

// Error возвращает текст ошибки с занятым периодом
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: booked %s to %s", ErrDatesNotAvailable,
		e.ConflictStart.Format(domain.DateFormat), e.ConflictEnd.Format(domain.DateFormat))
}

// Unwrap связывает ConflictError с sentinel-ошибкой ErrDatesNotAvailable
func (e *ConflictError) Unwrap() error {
	return ErrDatesNotAvailable
}
