package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRM-RentalService/internal/domain"
	boatRepoPkg "github.com/m04kA/BRM-RentalService/internal/infra/storage/boat"
	bookingRepoPkg "github.com/m04kA/BRM-RentalService/internal/infra/storage/booking"
	"github.com/m04kA/BRM-RentalService/internal/integrations/companyservice"
	"github.com/m04kA/BRM-RentalService/internal/service/bookings/models"
	"github.com/m04kA/BRM-RentalService/pkg/ptr"
)

const (
	managerID  = int64(1)
	strangerID = int64(2)
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	lastFilter    *domain.BookingsFilter
	cancelled     []int64
	statusUpdates map[int64]domain.BookingStatus
	deleted       []int64
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{
		bookings:      make(map[int64]*domain.Booking),
		statusUpdates: make(map[int64]domain.BookingStatus),
	}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepoPkg.ErrBookingNotFound
	}
	return b, nil
}

func (r *fakeBookingRepo) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.lastFilter = &filter
	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if filter.BoatID != nil && b.BoatID != *filter.BoatID {
			continue
		}
		if len(filter.BoatIDs) > 0 && !containsID(filter.BoatIDs, b.BoatID) {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if _, ok := r.bookings[id]; !ok {
		return bookingRepoPkg.ErrBookingNotFound
	}
	r.statusUpdates[id] = status
	return nil
}

func (r *fakeBookingRepo) Cancel(_ context.Context, id int64) error {
	if _, ok := r.bookings[id]; !ok {
		return bookingRepoPkg.ErrBookingNotFound
	}
	r.cancelled = append(r.cancelled, id)
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.bookings[id]; !ok {
		return bookingRepoPkg.ErrBookingNotFound
	}
	delete(r.bookings, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

type fakeBoatRepo struct {
	boats map[int64]*domain.Boat
}

func (r *fakeBoatRepo) GetByID(_ context.Context, id int64) (*domain.Boat, error) {
	boat, ok := r.boats[id]
	if !ok {
		return nil, boatRepoPkg.ErrBoatNotFound
	}
	return boat, nil
}

func (r *fakeBoatRepo) ListWithFilter(_ context.Context, filter domain.BoatsFilter) ([]*domain.Boat, error) {
	result := make([]*domain.Boat, 0)
	for _, b := range r.boats {
		if filter.CompanyID != nil && b.CompanyID != *filter.CompanyID {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

type fakeCompanyClient struct {
	companies map[int64]*companyservice.Company
}

func (c *fakeCompanyClient) GetCompany(_ context.Context, id int64) (*companyservice.Company, error) {
	company, ok := c.companies[id]
	if !ok {
		return nil, companyservice.ErrCompanyNotFound
	}
	return company, nil
}

func newTestService(bookings ...*domain.Booking) (*Service, *fakeBookingRepo) {
	bookingRepo := newFakeBookingRepo(bookings...)
	boatRepo := &fakeBoatRepo{boats: map[int64]*domain.Boat{
		1: {ID: 1, CompanyID: 10, Name: "Sunset Cruiser"},
		2: {ID: 2, CompanyID: 10, Name: "Sea Breeze"},
		3: {ID: 3, CompanyID: 20, Name: "Wave Dancer"},
	}}
	companyClient := &fakeCompanyClient{companies: map[int64]*companyservice.Company{
		10: {ID: 10, Name: "Blue Marina", ManagerIDs: []int64{managerID}},
		20: {ID: 20, Name: "Harbor Co", ManagerIDs: []int64{strangerID}},
	}}
	return NewService(bookingRepo, boatRepo, companyClient, nopLogger{}), bookingRepo
}

func confirmedBooking(id, boatID int64) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		BoatID:    boatID,
		StartDate: date(2025, 7, 1),
		EndDate:   date(2025, 7, 5),
		Status:    domain.StatusConfirmed,
	}
}

func TestGetByID(t *testing.T) {
	svc, _ := newTestService(confirmedBooking(1, 1))

	resp, err := svc.GetByID(context.Background(), 1, managerID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2025-07-01", resp.StartDate)
	assert.Equal(t, 4, resp.Days)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), 404, managerID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_AccessDenied(t *testing.T) {
	svc, _ := newTestService(confirmedBooking(1, 1))

	_, err := svc.GetByID(context.Background(), 1, strangerID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestList_RequiresScope(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{UserID: managerID})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_ByBoat(t *testing.T) {
	svc, _ := newTestService(confirmedBooking(1, 1), confirmedBooking(2, 2))

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		UserID: managerID,
		BoatID: ptr.Ptr(int64(1)),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
}

func TestList_ByCompanyCoversFleet(t *testing.T) {
	svc, repo := newTestService(
		confirmedBooking(1, 1),
		confirmedBooking(2, 2),
		confirmedBooking(3, 3), // чужая компания
	)

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		UserID:    managerID,
		CompanyID: ptr.Ptr(int64(10)),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	require.NotNil(t, repo.lastFilter)
	assert.ElementsMatch(t, []int64{1, 2}, repo.lastFilter.BoatIDs)
}

func TestList_CompanyAccessDenied(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{
		UserID:    strangerID,
		CompanyID: ptr.Ptr(int64(10)),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestList_InvalidStatus(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{
		UserID: managerID,
		BoatID: ptr.Ptr(int64(1)),
		Status: ptr.Ptr("teleported"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	svc, repo := newTestService(confirmedBooking(1, 1))

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: managerID})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.cancelled)
}

func TestCancel_CompletedBooking(t *testing.T) {
	booking := confirmedBooking(1, 1)
	booking.Status = domain.StatusCompleted
	svc, repo := newTestService(booking)

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: managerID})
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Empty(t, repo.cancelled)
}

func TestCancel_AccessDenied(t *testing.T) {
	svc, repo := newTestService(confirmedBooking(1, 1))

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: strangerID})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.cancelled)
}

func TestUpdateStatus(t *testing.T) {
	svc, repo := newTestService(confirmedBooking(1, 1))

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: managerID,
		Status: "active",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, repo.statusUpdates[1])
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	svc, repo := newTestService(confirmedBooking(1, 1))

	// confirmed -> completed минует стадию active
	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: managerID,
		Status: "completed",
	})

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, repo.statusUpdates)
}

func TestUpdateStatus_CancelGoesThroughCancel(t *testing.T) {
	svc, repo := newTestService(confirmedBooking(1, 1))

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: managerID,
		Status: "cancelled",
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.cancelled)
	assert.Empty(t, repo.statusUpdates)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc, _ := newTestService(confirmedBooking(1, 1))

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: managerID,
		Status: "parked",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	svc, repo := newTestService(confirmedBooking(1, 1))

	err := svc.Delete(context.Background(), 1, managerID)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.deleted)
}

func TestDelete_AccessDenied(t *testing.T) {
	svc, repo := newTestService(confirmedBooking(1, 1))

	err := svc.Delete(context.Background(), 1, strangerID)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.deleted)
}
