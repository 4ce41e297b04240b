package get_boat_calendar

import (
	"context"

	"github.com/m04kA/BRM-RentalService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// BoatRepository интерфейс репозитория лодок
type BoatRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Boat, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
