package list_boats

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/BRM-RentalService/internal/api/handlers"
	"github.com/m04kA/BRM-RentalService/internal/domain"
	"github.com/m04kA/BRM-RentalService/internal/service/boats"
	"github.com/m04kA/BRM-RentalService/internal/service/boats/models"
	searchBoats "github.com/m04kA/BRM-RentalService/internal/usecase/search_available_boats"
)

const (
	msgInvalidCompany = "некорректный ID компании"
	msgInvalidParams  = "некорректные параметры запроса"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingDates   = "для onlyAvailable требуются startDate и endDate"
)

type Handler struct {
	service       BoatService
	searchUseCase SearchAvailableBoatsUseCase
	logger        Logger
}

func NewHandler(service BoatService, searchUseCase SearchAvailableBoatsUseCase, logger Logger) *Handler {
	return &Handler{
		service:       service,
		searchUseCase: searchUseCase,
		logger:        logger,
	}
}

// Handle GET /api/v1/boats
// Query params: companyId, status, onlyAvailable, startDate, endDate (опциональные)
//
// Фильтр по статусу и фильтр по занятости дат независимы:
// onlyAvailable=true с интервалом дат отсекает занятые лодки,
// status дополнительно сужает выборку
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var companyID *int64
	if companyIDStr := query.Get("companyId"); companyIDStr != "" {
		id, err := strconv.ParseInt(companyIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /boats - Invalid company ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCompany)
			return
		}
		companyID = &id
	}

	var status *string
	if statusStr := query.Get("status"); statusStr != "" {
		status = &statusStr
	}

	if query.Get("onlyAvailable") == "true" {
		h.handleOnlyAvailable(w, r, companyID, status)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListBoatsRequest{
		CompanyID: companyID,
		Status:    status,
	})
	if err != nil {
		switch {
		case errors.Is(err, boats.ErrInvalidInput):
			h.logger.Warn("GET /boats - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /boats - Failed to list boats: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /boats - Listed %d boats", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// handleOnlyAvailable возвращает лодки, свободные на весь интервал
func (h *Handler) handleOnlyAvailable(w http.ResponseWriter, r *http.Request, companyID *int64, status *string) {
	query := r.URL.Query()

	startDateStr := query.Get("startDate")
	endDateStr := query.Get("endDate")
	if startDateStr == "" || endDateStr == "" {
		h.logger.Warn("GET /boats - onlyAvailable without date range")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		h.logger.Warn("GET /boats - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		h.logger.Warn("GET /boats - Invalid endDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.searchUseCase.Execute(r.Context(), &searchBoats.Request{
		StartDate: startDate,
		EndDate:   endDate,
		CompanyID: companyID,
		Status:    status,
	})
	if err != nil {
		switch {
		case errors.Is(err, searchBoats.ErrInvalidInput):
			h.logger.Warn("GET /boats - Invalid search params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /boats - Failed to search boats: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /boats - Listed %d available boats", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
