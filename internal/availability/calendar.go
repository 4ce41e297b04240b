package availability

import (
	"time"

	"github.com/m04kA/BRM-RentalService/internal/domain"
)

// BuildCalendar строит по-дневную карту доступности лодки на месяц
// Для каждого дня d месяца день занят, если какое-либо активное бронирование
// содержит d, то есть пересекает интервал [d, d+1 день)
//
// Передавать нужно ПОЛНЫЙ набор бронирований лодки, не отфильтрованный по месяцу:
// бронирование, начавшееся в прошлом месяце, может занимать первые дни текущего
func BuildCalendar(boatID int64, month time.Month, year int, bookings []*domain.Booking) *domain.Calendar {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// AddDate корректно учитывает длину месяца и високосные годы
	daysInMonth := firstDay.AddDate(0, 1, -1).Day()

	days := make([]domain.CalendarDay, daysInMonth)
	for i := 0; i < daysInMonth; i++ {
		day := firstDay.AddDate(0, 0, i)
		days[i] = domain.CalendarDay{
			Date:      day,
			Available: IsAvailable(boatID, day, day.AddDate(0, 0, 1), bookings),
		}
	}

	return &domain.Calendar{
		BoatID: boatID,
		Month:  month,
		Year:   year,
		Days:   days,
	}
}
