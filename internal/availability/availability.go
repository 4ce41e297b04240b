// Package availability содержит чистую логику проверки доступности лодок:
// предикат пересечения интервалов, оценку доступности по набору бронирований,
// построение календаря и фильтрацию флота. Все функции без состояния и
// безопасны для конкурентных вызовов; сериализация конкурирующих записей -
// ответственность usecase создания бронирования.
package availability

import (
	"errors"
	"time"

	"github.com/m04kA/BRM-RentalService/internal/domain"
)

var (
	// ErrInvalidRange возвращается для вырожденного интервала (end <= start)
	// Вызывающая сторона обязана проверить интервал до оценки доступности
	ErrInvalidRange = errors.New("availability: end date must be after start date")
)

// NormalizeDate обнуляет компонент времени, оставляя только календарную дату (UTC)
// Все сравнения дат ведутся с точностью до дня; без нормализации несогласованные
// timestamp-ы давали бы ложные пересечения
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ValidateRange проверяет, что интервал [start, end) не вырожден
func ValidateRange(start, end time.Time) error {
	if !NormalizeDate(start).Before(NormalizeDate(end)) {
		return ErrInvalidRange
	}
	return nil
}

// Overlaps сообщает, пересекаются ли полуоткрытые интервалы [aStart, aEnd) и [bStart, bEnd)
// Совпадение границ (конец одного бронирования равен началу другого) пересечением
// НЕ считается: день выезда совпадает с днём заезда следующего клиента
//
// Примеры:
//   - [15.01, 18.01) и [14.01, 16.01) → пересекаются
//   - [15.01, 18.01) и [10.01, 15.01) → граничат, НЕ пересекаются
//   - [15.01, 18.01) и [18.01, 20.01) → граничат, НЕ пересекаются
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	aStart, aEnd = NormalizeDate(aStart), NormalizeDate(aEnd)
	bStart, bEnd = NormalizeDate(bStart), NormalizeDate(bEnd)
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// IsAvailable сообщает, свободна ли лодка в интервале [start, end)
// Учитываются только бронирования этой лодки со статусом, отличным от cancelled
// Пустой набор бронирований означает полную доступность
func IsAvailable(boatID int64, start, end time.Time, bookings []*domain.Booking) bool {
	return FindConflict(boatID, start, end, bookings) == nil
}

// FindConflict возвращает первое активное бронирование лодки, пересекающее
// интервал [start, end), либо nil, если таких нет
// Используется контроллером бронирований, чтобы сообщить клиенту занятый период
func FindConflict(boatID int64, start, end time.Time, bookings []*domain.Booking) *domain.Booking {
	for _, booking := range bookings {
		if booking.BoatID != boatID {
			continue
		}
		if !booking.IsActive() {
			continue
		}
		if Overlaps(start, end, booking.StartDate, booking.EndDate) {
			return booking
		}
	}
	return nil
}
