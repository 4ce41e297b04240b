package domain

// Business validation constants
const (
	MinGuests          = 1
	MaxNotesLength     = 500
	MaxNameLength      = 200
	MaxRentalDays      = 90 // Максимальная длительность одной аренды
	MaxFeaturesPerBoat = 20
)

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ValidBookingStatuses список допустимых статусов бронирования
var ValidBookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusActive,
	StatusCompleted,
	StatusCancelled,
}

// ValidBoatStatuses список допустимых статусов лодки
var ValidBoatStatuses = []BoatStatus{
	BoatStatusAvailable,
	BoatStatusRented,
	BoatStatusMaintenance,
}

// statusTransitions допустимые переходы статусов бронирования
// Отмена (cancelled) обрабатывается отдельно и допустима из любого нетерминального статуса
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusActive},
	StatusConfirmed: {StatusActive},
	StatusActive:    {StatusCompleted},
	StatusCompleted: {},
	StatusCancelled: {},
}

// IsValidBookingStatus проверяет, что статус бронирования известен
func IsValidBookingStatus(status BookingStatus) bool {
	for _, s := range ValidBookingStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsValidBoatStatus проверяет, что статус лодки известен
func IsValidBoatStatus(status BoatStatus) bool {
	for _, s := range ValidBoatStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// CanTransition проверяет допустимость перехода статуса бронирования
func CanTransition(from, to BookingStatus) bool {
	if to == StatusCancelled {
		return from != StatusCancelled && from != StatusCompleted
	}
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
