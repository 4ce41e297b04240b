package update_boat

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRM-RentalService/internal/api/handlers"
	"github.com/m04kA/BRM-RentalService/internal/api/middleware"
	"github.com/m04kA/BRM-RentalService/internal/service/boats"
)

const (
	msgInvalidBoatID      = "некорректный ID лодки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные лодки"
	msgNotFound           = "лодка не найдена"
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

// Handle PUT /api/v1/boats/{boatId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	boatID, err := strconv.ParseInt(vars["boatId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /boats/{id} - Invalid boat ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBoatID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /boats/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateBoatRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /boats/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), boatID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, boats.ErrBoatNotFound):
			h.logger.Warn("PUT /boats/{id} - Boat not found: boat_id=%d", boatID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, boats.ErrAccessDenied):
			h.logger.Warn("PUT /boats/{id} - Access denied: boat_id=%d, user_id=%d", boatID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, boats.ErrInvalidInput):
			h.logger.Warn("PUT /boats/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /boats/{id} - Failed to update boat: boat_id=%d, error=%v", boatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /boats/{id} - Boat updated successfully: boat_id=%d", boatID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
