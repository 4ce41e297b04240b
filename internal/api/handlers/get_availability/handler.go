package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/BRM-RentalService/internal/api/handlers"
	"github.com/m04kA/BRM-RentalService/internal/availability"
	"github.com/m04kA/BRM-RentalService/internal/domain"
	getBoatCalendar "github.com/m04kA/BRM-RentalService/internal/usecase/get_boat_calendar"
	searchBoats "github.com/m04kA/BRM-RentalService/internal/usecase/search_available_boats"
)

const (
	msgMissingDates   = "параметры startDate и endDate обязательны"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange   = "дата окончания должна быть позже даты начала"
	msgInvalidBoatID  = "некорректный ID лодки"
	msgInvalidParams  = "некорректные параметры запроса"
	msgBoatNotFound   = "лодка не найдена"
	msgInvalidCompany = "некорректный ID компании"
)

type Handler struct {
	calendarUseCase GetBoatCalendarUseCase
	searchUseCase   SearchAvailableBoatsUseCase
	logger          Logger
}

func NewHandler(
	calendarUseCase GetBoatCalendarUseCase,
	searchUseCase SearchAvailableBoatsUseCase,
	logger Logger,
) *Handler {
	return &Handler{
		calendarUseCase: calendarUseCase,
		searchUseCase:   searchUseCase,
		logger:          logger,
	}
}

// Handle GET /api/v1/availability
// Query params: startDate, endDate (обязательные), boatId, companyId, status (опциональные)
//
// Без boatId возвращает список лодок, свободных на весь интервал.
// С boatId возвращает календарь доступности лодки на месяц даты startDate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	startDateStr := query.Get("startDate")
	endDateStr := query.Get("endDate")
	if startDateStr == "" || endDateStr == "" {
		h.logger.Warn("GET /availability - Missing date params")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid endDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Интервал проверяется до ветвления: календарная ветка строится по месяцу
	// startDate, но вырожденный интервал отклоняется для обоих режимов
	if err := availability.ValidateRange(startDate, endDate); err != nil {
		h.logger.Warn("GET /availability - Invalid date range: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	if boatIDStr := query.Get("boatId"); boatIDStr != "" {
		h.handleBoatCalendar(w, r, boatIDStr, startDate)
		return
	}

	h.handleSearch(w, r, startDate, endDate)
}

// handleBoatCalendar возвращает календарь лодки на месяц даты начала
func (h *Handler) handleBoatCalendar(w http.ResponseWriter, r *http.Request, boatIDStr string, startDate time.Time) {
	boatID, err := strconv.ParseInt(boatIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid boat ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBoatID)
		return
	}

	result, err := h.calendarUseCase.Execute(r.Context(), &getBoatCalendar.Request{
		BoatID: boatID,
		Month:  int(startDate.Month()),
		Year:   startDate.Year(),
	})
	if err != nil {
		switch {
		case errors.Is(err, getBoatCalendar.ErrBoatNotFound):
			h.logger.Warn("GET /availability - Boat not found: boat_id=%d", boatID)
			handlers.RespondNotFound(w, msgBoatNotFound)

		case errors.Is(err, getBoatCalendar.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid calendar params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /availability - Failed to build calendar: boat_id=%d, error=%v", boatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Calendar built: boat_id=%d, month=%d/%d", boatID, result.Month, result.Year)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// handleSearch возвращает лодки, свободные на весь интервал
func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request, startDate, endDate time.Time) {
	query := r.URL.Query()

	req := &searchBoats.Request{
		StartDate: startDate,
		EndDate:   endDate,
	}

	if companyIDStr := query.Get("companyId"); companyIDStr != "" {
		companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid company ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCompany)
			return
		}
		req.CompanyID = &companyID
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.searchUseCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, searchBoats.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid search params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /availability - Failed to search boats: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Search done: %d boats free", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
