package search_available_boats

import (
	"context"

	"github.com/m04kA/BRM-RentalService/internal/domain"
)

// BoatRepository интерфейс репозитория лодок
type BoatRepository interface {
	ListWithFilter(ctx context.Context, filter domain.BoatsFilter) ([]*domain.Boat, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
