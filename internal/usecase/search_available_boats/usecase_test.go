package search_available_boats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRM-RentalService/internal/domain"
	"github.com/m04kA/BRM-RentalService/pkg/ptr"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBoatRepo struct {
	boats  []*domain.Boat
	filter domain.BoatsFilter
}

func (r *fakeBoatRepo) ListWithFilter(_ context.Context, filter domain.BoatsFilter) ([]*domain.Boat, error) {
	r.filter = filter
	result := make([]*domain.Boat, 0)
	for _, b := range r.boats {
		if filter.CompanyID != nil && b.CompanyID != *filter.CompanyID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (r *fakeBookingRepo) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
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

func fleet() []*domain.Boat {
	return []*domain.Boat{
		{ID: 1, CompanyID: 10, Name: "Sunset Cruiser", Status: domain.BoatStatusAvailable},
		{ID: 2, CompanyID: 10, Name: "Sea Breeze", Status: domain.BoatStatusAvailable},
		{ID: 3, CompanyID: 20, Name: "Wave Dancer", Status: domain.BoatStatusMaintenance},
	}
}

func newTestUseCase(boats []*domain.Boat, bookings []*domain.Booking) (*UseCase, *fakeBoatRepo) {
	boatRepo := &fakeBoatRepo{boats: boats}
	return NewUseCase(boatRepo, &fakeBookingRepo{bookings: bookings}, nopLogger{}), boatRepo
}

func searchRequest() *Request {
	return &Request{StartDate: date(2025, 7, 1), EndDate: date(2025, 7, 5)}
}

func TestExecute_AllFreeWithoutBookings(t *testing.T) {
	uc, _ := newTestUseCase(fleet(), nil)

	resp, err := uc.Execute(context.Background(), searchRequest())

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	// Порядок парка сохраняется
	assert.Equal(t, int64(1), resp.Boats[0].ID)
	assert.Equal(t, int64(2), resp.Boats[1].ID)
	assert.Equal(t, int64(3), resp.Boats[2].ID)
}

func TestExecute_BusyBoatExcluded(t *testing.T) {
	uc, _ := newTestUseCase(fleet(), []*domain.Booking{
		{ID: 1, BoatID: 2, StartDate: date(2025, 7, 3), EndDate: date(2025, 7, 8), Status: domain.StatusConfirmed},
	})

	resp, err := uc.Execute(context.Background(), searchRequest())

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	for _, boat := range resp.Boats {
		assert.NotEqual(t, int64(2), boat.ID)
	}
}

func TestExecute_BackToBackBoatIncluded(t *testing.T) {
	// Бронирование заканчивается ровно в день начала запрошенного интервала
	uc, _ := newTestUseCase(fleet(), []*domain.Booking{
		{ID: 1, BoatID: 1, StartDate: date(2025, 6, 25), EndDate: date(2025, 7, 1), Status: domain.StatusConfirmed},
	})

	resp, err := uc.Execute(context.Background(), searchRequest())

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
}

func TestExecute_MaintenanceStatusDoesNotHideBoat(t *testing.T) {
	// Статус лодки не участвует в проверке занятости дат; без явного
	// фильтра по статусу лодка на обслуживании остаётся в выдаче
	uc, _ := newTestUseCase(fleet(), nil)

	resp, err := uc.Execute(context.Background(), searchRequest())

	require.NoError(t, err)
	ids := make([]int64, 0, len(resp.Boats))
	for _, b := range resp.Boats {
		ids = append(ids, b.ID)
	}
	assert.Contains(t, ids, int64(3))
}

func TestExecute_StatusFilterComposes(t *testing.T) {
	uc, boatRepo := newTestUseCase(fleet(), []*domain.Booking{
		{ID: 1, BoatID: 1, StartDate: date(2025, 7, 1), EndDate: date(2025, 7, 10), Status: domain.StatusConfirmed},
	})

	req := searchRequest()
	req.Status = ptr.Ptr(string(domain.BoatStatusAvailable))

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	// Лодка 3 отсечена статусом, лодка 1 занята датами
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(2), resp.Boats[0].ID)
	require.NotNil(t, boatRepo.filter.Status)
	assert.Equal(t, domain.BoatStatusAvailable, *boatRepo.filter.Status)
}

func TestExecute_CompanyFilter(t *testing.T) {
	uc, _ := newTestUseCase(fleet(), nil)

	req := searchRequest()
	req.CompanyID = ptr.Ptr(int64(20))

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(3), resp.Boats[0].ID)
}

func TestExecute_Validation(t *testing.T) {
	uc, _ := newTestUseCase(fleet(), nil)

	tests := []struct {
		name string
		req  Request
	}{
		{"missing start", Request{EndDate: date(2025, 7, 5)}},
		{"missing end", Request{StartDate: date(2025, 7, 1)}},
		{"start equals end", Request{StartDate: date(2025, 7, 1), EndDate: date(2025, 7, 1)}},
		{"end before start", Request{StartDate: date(2025, 7, 5), EndDate: date(2025, 7, 1)}},
		{"unknown status", Request{StartDate: date(2025, 7, 1), EndDate: date(2025, 7, 5), Status: ptr.Ptr("sunk")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
