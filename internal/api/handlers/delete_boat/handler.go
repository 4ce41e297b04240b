package delete_boat

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
	msgInvalidBoatID = "некорректный ID лодки"
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "лодка не найдена"
	msgForbidden     = "доступ запрещен"
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

// Handle DELETE /api/v1/boats/{boatId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	boatID, err := strconv.ParseInt(vars["boatId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /boats/{id} - Invalid boat ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBoatID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /boats/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), boatID, userID); err != nil {
		switch {
		case errors.Is(err, boats.ErrBoatNotFound):
			h.logger.Warn("DELETE /boats/{id} - Boat not found: boat_id=%d", boatID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, boats.ErrAccessDenied):
			h.logger.Warn("DELETE /boats/{id} - Access denied: boat_id=%d, user_id=%d", boatID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /boats/{id} - Failed to delete boat: boat_id=%d, error=%v", boatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /boats/{id} - Boat deleted successfully: boat_id=%d", boatID)
	handlers.RespondNoContent(w)
}
