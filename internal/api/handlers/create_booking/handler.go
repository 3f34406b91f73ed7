package create_booking

import (
	"errors"
	"net/http"

	"github.com/velmare/Nautic-BookingService/internal/api/handlers"
	createBooking "github.com/velmare/Nautic-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid booking date format, expected YYYY-MM-DD"
	msgBoatNotFound       = "boat not found"
	msgServiceNotFound    = "service not found"
	msgServiceNotForBoat  = "service does not belong to this boat"
	msgTooManyPassengers  = "passenger count exceeds boat capacity"
	msgPriceNotConfigured = "price not configured for the requested date, supply finalPrice"
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
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *createBooking.ConflictError

		switch {
		case errors.As(err, &conflict):
			// Причина конфликта уходит клиенту as-is: стаф видит,
			// чем именно занята лодка
			h.logger.Warn("POST /bookings - Conflict: boat_id=%d, date=%s, reason=%s",
				req.BoatID, req.BookingDate, conflict.Reason)
			handlers.RespondError(w, http.StatusConflict, conflict.Reason)

		case errors.Is(err, createBooking.ErrBoatNotFound):
			h.logger.Warn("POST /bookings - Boat not found: boat_id=%d", req.BoatID)
			handlers.RespondNotFound(w, msgBoatNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrServiceNotForBoat):
			h.logger.Warn("POST /bookings - Service mismatch: boat_id=%d, service_id=%d", req.BoatID, req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceNotForBoat)

		case errors.Is(err, createBooking.ErrTooManyPassengers):
			h.logger.Warn("POST /bookings - Too many passengers: boat_id=%d, passengers=%d", req.BoatID, req.Passengers)
			handlers.RespondBadRequest(w, msgTooManyPassengers)

		case errors.Is(err, createBooking.ErrPriceNotConfigured):
			h.logger.Warn("POST /bookings - Price not configured: boat_id=%d, service_id=%d, date=%s",
				req.BoatID, req.ServiceID, req.BookingDate)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPriceNotConfigured)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: boat_id=%d, error=%v", req.BoatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, boat_id=%d, date=%s, slot=%s",
		result.ID, req.BoatID, req.BookingDate, req.TimeSlot)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
