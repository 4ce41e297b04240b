package create_boat

import (
	"errors"
	"net/http"

	"github.com/m04kA/BRM-RentalService/internal/api/handlers"
	"github.com/m04kA/BRM-RentalService/internal/api/middleware"
	"github.com/m04kA/BRM-RentalService/internal/service/boats"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные лодки"
	msgCompanyNotFound    = "компания не найдена"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	service BoatService
	logger  Logger
}

func NewHandler(service BoatService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/boats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /boats - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBoatRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /boats - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, boats.ErrInvalidInput):
			h.logger.Warn("POST /boats - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, boats.ErrCompanyNotFound):
			h.logger.Warn("POST /boats - Company not found: company_id=%d", req.CompanyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, boats.ErrAccessDenied):
			h.logger.Warn("POST /boats - Access denied: company_id=%d, user_id=%d", req.CompanyID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /boats - Failed to create boat: company_id=%d, error=%v", req.CompanyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /boats - Boat created successfully: boat_id=%d, company_id=%d", result.ID, req.CompanyID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
