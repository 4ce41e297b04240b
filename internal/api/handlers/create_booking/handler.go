package create_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/BRM-RentalService/internal/api/handlers"
	"github.com/m04kA/BRM-RentalService/internal/domain"
	createBooking "github.com/m04kA/BRM-RentalService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные бронирования"
	msgBoatNotFound       = "лодка не найдена"
	msgDatesNotAvailable  = "выбранные даты заняты"
	msgDatesBusyRange     = "выбранные даты заняты: лодка забронирована с %s по %s"
	msgTooManyGuests      = "количество гостей превышает вместимость лодки"
	msgDateInPast         = "дата начала аренды не может быть в прошлом"
	msgRentalTooLong      = "превышена максимальная длительность аренды"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Конфликт с указанием занятого периода
		var conflict *createBooking.ConflictError
		if errors.As(err, &conflict) {
			h.logger.Warn("POST /bookings - Dates not available: boat_id=%d, busy %s..%s",
				req.BoatID,
				conflict.ConflictStart.Format(domain.DateFormat),
				conflict.ConflictEnd.Format(domain.DateFormat))
			handlers.RespondError(w, http.StatusConflict, fmt.Sprintf(msgDatesBusyRange,
				conflict.ConflictStart.Format(domain.DateFormat),
				conflict.ConflictEnd.Format(domain.DateFormat)))
			return
		}

		switch {
		case errors.Is(err, createBooking.ErrDatesNotAvailable):
			h.logger.Warn("POST /bookings - Dates not available: boat_id=%d", req.BoatID)
			handlers.RespondError(w, http.StatusConflict, msgDatesNotAvailable)

		case errors.Is(err, createBooking.ErrBoatNotFound):
			h.logger.Warn("POST /bookings - Boat not found: boat_id=%d", req.BoatID)
			handlers.RespondNotFound(w, msgBoatNotFound)

		case errors.Is(err, createBooking.ErrTooManyGuests):
			h.logger.Warn("POST /bookings - Too many guests: boat_id=%d, guests=%d", req.BoatID, req.Guests)
			handlers.RespondBadRequest(w, msgTooManyGuests)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Start date in past: boat_id=%d", req.BoatID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrRentalTooLong):
			h.logger.Warn("POST /bookings - Rental too long: boat_id=%d", req.BoatID)
			handlers.RespondBadRequest(w, msgRentalTooLong)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: boat_id=%d, error=%v", req.BoatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, boat_id=%d",
		result.ID, req.BoatID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
