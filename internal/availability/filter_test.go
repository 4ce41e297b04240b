package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRM-RentalService/internal/domain"
)

func boat(id int64, status domain.BoatStatus) *domain.Boat {
	return &domain.Boat{ID: id, Status: status}
}

func TestFilterAvailable_Empty(t *testing.T) {
	got := FilterAvailable(nil, date(2025, 1, 15), date(2025, 1, 18), nil)
	assert.Empty(t, got)
}

func TestFilterAvailable_ExcludesConflicting(t *testing.T) {
	boats := []*domain.Boat{
		boat(1, domain.BoatStatusAvailable),
		boat(2, domain.BoatStatusAvailable),
		boat(3, domain.BoatStatusAvailable),
	}
	bookings := []*domain.Booking{
		booking(2, date(2025, 1, 14), date(2025, 1, 16), domain.StatusConfirmed),
	}

	got := FilterAvailable(boats, date(2025, 1, 15), date(2025, 1, 18), bookings)

	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestFilterAvailable_PreservesInputOrder(t *testing.T) {
	// Порядок входного списка сохраняется, фильтр ничего не пересортировывает
	boats := []*domain.Boat{
		boat(5, domain.BoatStatusAvailable),
		boat(1, domain.BoatStatusAvailable),
		boat(9, domain.BoatStatusAvailable),
		boat(3, domain.BoatStatusAvailable),
	}

	got := FilterAvailable(boats, date(2025, 1, 15), date(2025, 1, 18), nil)

	require.Len(t, got, 4)
	for i := range boats {
		assert.Equal(t, boats[i].ID, got[i].ID)
	}
}

func TestFilterAvailable_Idempotent(t *testing.T) {
	boats := []*domain.Boat{
		boat(1, domain.BoatStatusAvailable),
		boat(2, domain.BoatStatusAvailable),
		boat(3, domain.BoatStatusAvailable),
	}
	bookings := []*domain.Booking{
		booking(1, date(2025, 1, 10), date(2025, 1, 20), domain.StatusActive),
	}

	first := FilterAvailable(boats, date(2025, 1, 15), date(2025, 1, 18), bookings)
	second := FilterAvailable(boats, date(2025, 1, 15), date(2025, 1, 18), bookings)

	assert.Equal(t, first, second)
}

func TestFilterAvailable_IgnoresBoatStatus(t *testing.T) {
	// Инвентарный статус лодки не учитывается: лодка в maintenance без
	// пересекающихся бронирований считается свободной по датам
	boats := []*domain.Boat{
		boat(1, domain.BoatStatusMaintenance),
		boat(2, domain.BoatStatusRented),
	}

	got := FilterAvailable(boats, date(2025, 1, 15), date(2025, 1, 18), nil)
	assert.Len(t, got, 2)
}

func TestFilterAvailable_BoundaryTouchIncluded(t *testing.T) {
	boats := []*domain.Boat{boat(1, domain.BoatStatusAvailable)}
	bookings := []*domain.Booking{
		booking(1, date(2025, 1, 18), date(2025, 1, 22), domain.StatusConfirmed),
	}

	// Запрошенный интервал заканчивается в день заезда существующего бронирования
	got := FilterAvailable(boats, date(2025, 1, 15), date(2025, 1, 18), bookings)
	assert.Len(t, got, 1)
}

func TestFilterAvailable_TimeOfDayNormalized(t *testing.T) {
	boats := []*domain.Boat{boat(1, domain.BoatStatusAvailable)}
	bookings := []*domain.Booking{
		booking(1,
			time.Date(2025, 1, 18, 14, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 22, 10, 0, 0, 0, time.UTC),
			domain.StatusConfirmed),
	}

	got := FilterAvailable(boats,
		time.Date(2025, 1, 15, 23, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 18, 1, 0, 0, 0, time.UTC),
		bookings)
	assert.Len(t, got, 1)
}
