package get_boat_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRM-RentalService/internal/domain"
	boatRepo "github.com/m04kA/BRM-RentalService/internal/infra/storage/boat"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	filter   domain.BookingsFilter
}

func (r *fakeBookingRepo) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.filter = filter
	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if filter.BoatID != nil && b.BoatID != *filter.BoatID {
			continue
		}
		if b.IsCancelled() {
			continue
		}
		if filter.DateFrom != nil && !b.EndDate.After(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && !b.StartDate.Before(*filter.DateTo) {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

type fakeBoatRepo struct {
	boats map[int64]*domain.Boat
}

func (r *fakeBoatRepo) GetByID(_ context.Context, id int64) (*domain.Boat, error) {
	boat, ok := r.boats[id]
	if !ok {
		return nil, boatRepo.ErrBoatNotFound
	}
	return boat, nil
}

func newUseCaseWith(bookings []*domain.Booking) (*UseCase, *fakeBookingRepo) {
	bookingRepo := &fakeBookingRepo{bookings: bookings}
	boats := &fakeBoatRepo{boats: map[int64]*domain.Boat{
		1: {ID: 1, Name: "Sunset Cruiser"},
	}}
	return NewUseCase(bookingRepo, boats, nopLogger{}), bookingRepo
}

func TestExecute_EmptyMonth(t *testing.T) {
	uc, _ := newUseCaseWith(nil)

	resp, err := uc.Execute(context.Background(), &Request{BoatID: 1, Month: 6, Year: 2025})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.BoatID)
	assert.Len(t, resp.Days, 30)
	for _, day := range resp.Days {
		assert.True(t, day.Available, day.Date)
	}
	assert.Equal(t, "2025-06-01", resp.Days[0].Date)
	assert.Equal(t, "2025-06-30", resp.Days[29].Date)
}

func TestExecute_BookedDaysMarked(t *testing.T) {
	uc, _ := newUseCaseWith([]*domain.Booking{
		{ID: 1, BoatID: 1, StartDate: date(2025, 6, 10), EndDate: date(2025, 6, 13), Status: domain.StatusConfirmed},
	})

	resp, err := uc.Execute(context.Background(), &Request{BoatID: 1, Month: 6, Year: 2025})
	require.NoError(t, err)

	// Заняты 10, 11, 12 июня; день выезда 13-го снова свободен
	byDate := make(map[string]bool, len(resp.Days))
	for _, day := range resp.Days {
		byDate[day.Date] = day.Available
	}
	assert.True(t, byDate["2025-06-09"])
	assert.False(t, byDate["2025-06-10"])
	assert.False(t, byDate["2025-06-11"])
	assert.False(t, byDate["2025-06-12"])
	assert.True(t, byDate["2025-06-13"])
}

func TestExecute_MonthStraddlingBooking(t *testing.T) {
	// Бронирование с 28 мая по 3 июня должно занять первые дни июня
	uc, repo := newUseCaseWith([]*domain.Booking{
		{ID: 1, BoatID: 1, StartDate: date(2025, 5, 28), EndDate: date(2025, 6, 3), Status: domain.StatusConfirmed},
	})

	resp, err := uc.Execute(context.Background(), &Request{BoatID: 1, Month: 6, Year: 2025})
	require.NoError(t, err)

	assert.False(t, resp.Days[0].Available) // 1 июня
	assert.False(t, resp.Days[1].Available) // 2 июня
	assert.True(t, resp.Days[2].Available)  // 3 июня

	// Выборка из хранилища покрывает весь месяц
	require.NotNil(t, repo.filter.DateFrom)
	require.NotNil(t, repo.filter.DateTo)
	assert.Equal(t, date(2025, 6, 1), *repo.filter.DateFrom)
	assert.Equal(t, date(2025, 7, 1), *repo.filter.DateTo)
}

func TestExecute_CancelledBookingIgnored(t *testing.T) {
	uc, _ := newUseCaseWith([]*domain.Booking{
		{ID: 1, BoatID: 1, StartDate: date(2025, 6, 10), EndDate: date(2025, 6, 13), Status: domain.StatusCancelled},
	})

	resp, err := uc.Execute(context.Background(), &Request{BoatID: 1, Month: 6, Year: 2025})
	require.NoError(t, err)

	for _, day := range resp.Days {
		assert.True(t, day.Available, day.Date)
	}
}

func TestExecute_BoatNotFound(t *testing.T) {
	uc, _ := newUseCaseWith(nil)

	_, err := uc.Execute(context.Background(), &Request{BoatID: 404, Month: 6, Year: 2025})
	assert.ErrorIs(t, err, ErrBoatNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc, _ := newUseCaseWith(nil)

	tests := []struct {
		name string
		req  Request
	}{
		{"zero boat", Request{BoatID: 0, Month: 6, Year: 2025}},
		{"month too small", Request{BoatID: 1, Month: 0, Year: 2025}},
		{"month too large", Request{BoatID: 1, Month: 13, Year: 2025}},
		{"zero year", Request{BoatID: 1, Month: 6, Year: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ResponseEchoesMonthAndYear(t *testing.T) {
	uc, _ := newUseCaseWith(nil)

	resp, err := uc.Execute(context.Background(), &Request{BoatID: 1, Month: 12, Year: 2025})

	require.NoError(t, err)
	assert.Equal(t, 12, resp.Month)
	assert.Equal(t, 2025, resp.Year)
	assert.Len(t, resp.Days, 31)
}

func TestExecute_LeapFebruary(t *testing.T) {
	uc, _ := newUseCaseWith(nil)

	resp, err := uc.Execute(context.Background(), &Request{BoatID: 1, Month: 2, Year: 2024})
	require.NoError(t, err)
	assert.Len(t, resp.Days, 29)
}
