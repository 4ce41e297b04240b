package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusActive    BookingStatus = "active"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a boat rental booking
// Даты образуют полуоткрытый интервал [StartDate, EndDate):
// день выезда совпадает с днём заезда следующего бронирования и конфликтом не является
type Booking struct {
	ID        int64
	BoatID    int64
	StartDate time.Time
	EndDate   time.Time

	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	Guests        int

	TotalPrice float64
	Status     BookingStatus
	Notes      *string

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive returns true if the booking counts towards availability conflicts
// Отменённые бронирования не участвуют в проверке пересечений
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status != StatusCancelled && b.Status != StatusCompleted
}

// Days returns the number of rental days in the half-open interval
func (b *Booking) Days() int {
	return int(b.EndDate.Sub(b.StartDate).Hours() / 24)
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	BoatID           *int64         // Фильтр по лодке (опционально)
	BoatIDs          []int64        // Фильтр по набору лодок, например по парку компании (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	DateFrom         *time.Time     // Начало интервала (опционально)
	DateTo           *time.Time     // Конец интервала (опционально); выбираются бронирования, пересекающие [DateFrom, DateTo)
	IncludeCancelled bool           // Включать ли отменённые бронирования
}
