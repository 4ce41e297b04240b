package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getBoatCalendar "github.com/m04kA/BRM-RentalService/internal/usecase/get_boat_calendar"
	searchBoats "github.com/m04kA/BRM-RentalService/internal/usecase/search_available_boats"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCalendarUseCase struct {
	req  *getBoatCalendar.Request
	resp *getBoatCalendar.Response
	err  error
}

func (u *fakeCalendarUseCase) Execute(_ context.Context, req *getBoatCalendar.Request) (*getBoatCalendar.Response, error) {
	u.req = req
	return u.resp, u.err
}

type fakeSearchUseCase struct {
	req  *searchBoats.Request
	resp *searchBoats.Response
	err  error
}

func (u *fakeSearchUseCase) Execute(_ context.Context, req *searchBoats.Request) (*searchBoats.Response, error) {
	u.req = req
	return u.resp, u.err
}

func doRequest(calendar *fakeCalendarUseCase, search *fakeSearchUseCase, url string) *httptest.ResponseRecorder {
	handler := NewHandler(calendar, search, nopLogger{})
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_MissingDates(t *testing.T) {
	rec := doRequest(&fakeCalendarUseCase{}, &fakeSearchUseCase{}, "/api/v1/availability?startDate=2025-07-01")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MalformedDate(t *testing.T) {
	rec := doRequest(&fakeCalendarUseCase{}, &fakeSearchUseCase{},
		"/api/v1/availability?startDate=01.07.2025&endDate=2025-07-05")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_SearchBranch(t *testing.T) {
	search := &fakeSearchUseCase{resp: &searchBoats.Response{
		StartDate: "2025-07-01",
		EndDate:   "2025-07-05",
		Boats:     []searchBoats.BoatResponse{{ID: 1, Name: "Sunset Cruiser"}},
		Total:     1,
	}}

	rec := doRequest(&fakeCalendarUseCase{}, search,
		"/api/v1/availability?startDate=2025-07-01&endDate=2025-07-05")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, search.req)
	assert.Nil(t, search.req.CompanyID)

	var resp searchBoats.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
}

func TestHandle_CalendarBranch(t *testing.T) {
	// С boatId запрос уходит в календарь на месяц даты начала
	calendar := &fakeCalendarUseCase{resp: &getBoatCalendar.Response{
		BoatID: 7,
		Month:  7,
		Year:   2025,
		Days:   []getBoatCalendar.DayResponse{{Date: "2025-07-01", Available: true}},
	}}

	rec := doRequest(calendar, &fakeSearchUseCase{},
		"/api/v1/availability?startDate=2025-07-15&endDate=2025-07-20&boatId=7")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, calendar.req)
	assert.Equal(t, int64(7), calendar.req.BoatID)
	assert.Equal(t, 7, calendar.req.Month)
	assert.Equal(t, 2025, calendar.req.Year)
}

func TestHandle_CalendarBoatNotFound(t *testing.T) {
	calendar := &fakeCalendarUseCase{err: getBoatCalendar.ErrBoatNotFound}

	rec := doRequest(calendar, &fakeSearchUseCase{},
		"/api/v1/availability?startDate=2025-07-01&endDate=2025-07-05&boatId=404")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InvalidBoatID(t *testing.T) {
	rec := doRequest(&fakeCalendarUseCase{}, &fakeSearchUseCase{},
		"/api/v1/availability?startDate=2025-07-01&endDate=2025-07-05&boatId=yacht")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_SearchFilters(t *testing.T) {
	search := &fakeSearchUseCase{resp: &searchBoats.Response{Boats: []searchBoats.BoatResponse{}}}

	rec := doRequest(&fakeCalendarUseCase{}, search,
		"/api/v1/availability?startDate=2025-07-01&endDate=2025-07-05&companyId=10&status=available")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, search.req)
	require.NotNil(t, search.req.CompanyID)
	assert.Equal(t, int64(10), *search.req.CompanyID)
	require.NotNil(t, search.req.Status)
	assert.Equal(t, "available", *search.req.Status)
}

func TestHandle_SearchInvalidRange(t *testing.T) {
	// Вырожденный интервал отклоняется до вызова usecase
	search := &fakeSearchUseCase{}

	rec := doRequest(&fakeCalendarUseCase{}, search,
		"/api/v1/availability?startDate=2025-07-05&endDate=2025-07-01")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, search.req)
}

func TestHandle_CalendarInvalidRange(t *testing.T) {
	// Календарная ветка строится по месяцу startDate, но интервал
	// всё равно должен быть корректным
	calendar := &fakeCalendarUseCase{}

	tests := []struct {
		name string
		url  string
	}{
		{"end before start", "/api/v1/availability?startDate=2025-07-15&endDate=2025-07-10&boatId=7"},
		{"end equals start", "/api/v1/availability?startDate=2025-07-15&endDate=2025-07-15&boatId=7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(calendar, &fakeSearchUseCase{}, tt.url)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, calendar.req)
		})
	}
}
