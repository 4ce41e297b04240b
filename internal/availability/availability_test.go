package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRM-RentalService/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func booking(boatID int64, start, end time.Time, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		BoatID:    boatID,
		StartDate: start,
		EndDate:   end,
		Status:    status,
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{
			name:   "full containment",
			aStart: date(2025, 1, 10), aEnd: date(2025, 1, 20),
			bStart: date(2025, 1, 12), bEnd: date(2025, 1, 14),
			want: true,
		},
		{
			name:   "partial overlap",
			aStart: date(2025, 1, 14), aEnd: date(2025, 1, 16),
			bStart: date(2025, 1, 15), bEnd: date(2025, 1, 18),
			want: true,
		},
		{
			name:   "identical intervals",
			aStart: date(2025, 1, 15), aEnd: date(2025, 1, 18),
			bStart: date(2025, 1, 15), bEnd: date(2025, 1, 18),
			want: true,
		},
		{
			name:   "back to back: a ends where b starts",
			aStart: date(2025, 1, 10), aEnd: date(2025, 1, 15),
			bStart: date(2025, 1, 15), bEnd: date(2025, 1, 18),
			want: false,
		},
		{
			name:   "back to back: b ends where a starts",
			aStart: date(2025, 1, 18), aEnd: date(2025, 1, 20),
			bStart: date(2025, 1, 15), bEnd: date(2025, 1, 18),
			want: false,
		},
		{
			name:   "disjoint",
			aStart: date(2025, 1, 1), aEnd: date(2025, 1, 5),
			bStart: date(2025, 1, 20), bEnd: date(2025, 1, 25),
			want: false,
		},
		{
			name:   "single day inside interval",
			aStart: date(2025, 1, 16), aEnd: date(2025, 1, 17),
			bStart: date(2025, 1, 15), bEnd: date(2025, 1, 18),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			assert.Equal(t, tt.want, got)

			// Предикат симметричен: overlaps(A, B) == overlaps(B, A)
			mirrored := Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd)
			assert.Equal(t, got, mirrored, "overlaps must be symmetric")
		})
	}
}

func TestOverlaps_NormalizesTimeOfDay(t *testing.T) {
	// Несогласованные timestamp-ы не должны давать ложное пересечение:
	// интервал, заканчивающийся 15-го в 23:59, граничит с интервалом,
	// начинающимся 15-го в 00:00
	aStart := time.Date(2025, 1, 10, 8, 30, 0, 0, time.UTC)
	aEnd := time.Date(2025, 1, 15, 23, 59, 59, 0, time.UTC)
	bStart := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	bEnd := time.Date(2025, 1, 18, 12, 0, 0, 0, time.UTC)

	assert.False(t, Overlaps(aStart, aEnd, bStart, bEnd))
}

func TestValidateRange(t *testing.T) {
	assert.NoError(t, ValidateRange(date(2025, 1, 15), date(2025, 1, 18)))

	err := ValidateRange(date(2025, 1, 15), date(2025, 1, 15))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRange)

	err = ValidateRange(date(2025, 1, 18), date(2025, 1, 15))
	assert.ErrorIs(t, err, ErrInvalidRange)

	// Интервал короче суток вырожден после нормализации дат
	err = ValidateRange(
		time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 15, 20, 0, 0, 0, time.UTC),
	)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestIsAvailable_EmptyBookings(t *testing.T) {
	assert.True(t, IsAvailable(1, date(2025, 1, 15), date(2025, 1, 18), nil))
	assert.True(t, IsAvailable(1, date(2025, 1, 15), date(2025, 1, 18), []*domain.Booking{}))
}

func TestIsAvailable_BoundaryTouch(t *testing.T) {
	// Сценарий: лодка занята [15.01, 18.01)
	bookings := []*domain.Booking{
		booking(1, date(2025, 1, 15), date(2025, 1, 18), domain.StatusConfirmed),
	}

	// Запрос [10.01, 15.01) граничит с бронированием - доступно
	assert.True(t, IsAvailable(1, date(2025, 1, 10), date(2025, 1, 15), bookings))

	// Запрос [14.01, 16.01) пересекается - недоступно
	assert.False(t, IsAvailable(1, date(2025, 1, 14), date(2025, 1, 16), bookings))

	// Запрос [18.01, 20.01) начинается в день выезда - доступно
	assert.True(t, IsAvailable(1, date(2025, 1, 18), date(2025, 1, 20), bookings))
}

func TestIsAvailable_CancelledExcluded(t *testing.T) {
	bookings := []*domain.Booking{
		booking(1, date(2025, 1, 15), date(2025, 1, 18), domain.StatusCancelled),
	}

	// Отменённое бронирование не блокирует даты даже при полном совпадении
	assert.True(t, IsAvailable(1, date(2025, 1, 15), date(2025, 1, 18), bookings))
}

func TestIsAvailable_IgnoresOtherBoats(t *testing.T) {
	bookings := []*domain.Booking{
		booking(2, date(2025, 1, 15), date(2025, 1, 18), domain.StatusConfirmed),
		booking(3, date(2025, 1, 15), date(2025, 1, 18), domain.StatusActive),
	}

	assert.True(t, IsAvailable(1, date(2025, 1, 15), date(2025, 1, 18), bookings))
	assert.False(t, IsAvailable(2, date(2025, 1, 15), date(2025, 1, 18), bookings))
}

func TestIsAvailable_AllActiveStatusesConflict(t *testing.T) {
	// Конфликтом считается любой статус, кроме cancelled
	for _, status := range []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusActive,
		domain.StatusCompleted,
	} {
		bookings := []*domain.Booking{
			booking(1, date(2025, 1, 15), date(2025, 1, 18), status),
		}
		assert.False(t, IsAvailable(1, date(2025, 1, 16), date(2025, 1, 17), bookings),
			"status %s must conflict", status)
	}
}

func TestFindConflict(t *testing.T) {
	conflicting := booking(1, date(2025, 1, 15), date(2025, 1, 18), domain.StatusConfirmed)
	bookings := []*domain.Booking{
		booking(1, date(2025, 1, 1), date(2025, 1, 5), domain.StatusCompleted),
		booking(1, date(2025, 1, 10), date(2025, 1, 15), domain.StatusCancelled),
		conflicting,
	}

	got := FindConflict(1, date(2025, 1, 16), date(2025, 1, 20), bookings)
	require.NotNil(t, got)
	assert.Equal(t, conflicting, got)

	assert.Nil(t, FindConflict(1, date(2025, 1, 20), date(2025, 1, 25), bookings))
}

func TestNormalizeDate(t *testing.T) {
	normalized := NormalizeDate(time.Date(2025, 3, 15, 18, 45, 12, 99, time.UTC))
	assert.Equal(t, date(2025, 3, 15), normalized)
}
