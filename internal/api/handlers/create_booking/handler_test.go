package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRM-RentalService/internal/api/handlers"
	createBooking "github.com/m04kA/BRM-RentalService/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
}

func (u *fakeUseCase) Execute(_ context.Context, _ *createBooking.Request) (*createBooking.Response, error) {
	return u.resp, u.err
}

func doRequest(t *testing.T, useCase CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(useCase, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func validBody() string {
	return `{
		"boatId": 1,
		"startDate": "2025-07-01",
		"endDate": "2025-07-05",
		"customerName": "John Smith",
		"customerEmail": "john@example.com",
		"guests": 4
	}`
}

func TestHandle_Created(t *testing.T) {
	useCase := &fakeUseCase{resp: &createBooking.Response{
		ID:        42,
		BoatID:    1,
		BoatName:  "Sunset Cruiser",
		StartDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC),
		Days:      4,
		Status:    "confirmed",
	}}

	rec := doRequest(t, useCase, validBody())

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2025-07-01", resp.StartDate)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandle_MalformedBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MalformedDate(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"boatId": 1, "startDate": "01.07.2025", "endDate": "2025-07-05"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ConflictCarriesBusyRange(t *testing.T) {
	useCase := &fakeUseCase{err: &createBooking.ConflictError{
		ConflictStart: time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
		ConflictEnd:   time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC),
	}}

	rec := doRequest(t, useCase, validBody())

	require.Equal(t, http.StatusConflict, rec.Code)

	var errResp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Contains(t, errResp.Message, "2025-07-02")
	assert.Contains(t, errResp.Message, "2025-07-08")
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"boat not found", createBooking.ErrBoatNotFound, http.StatusNotFound},
		{"dates not available", createBooking.ErrDatesNotAvailable, http.StatusConflict},
		{"too many guests", createBooking.ErrTooManyGuests, http.StatusBadRequest},
		{"start in past", createBooking.ErrInvalidDate, http.StatusBadRequest},
		{"rental too long", createBooking.ErrRentalTooLong, http.StatusBadRequest},
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody())
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
