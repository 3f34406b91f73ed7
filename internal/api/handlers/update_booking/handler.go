package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/velmare/Nautic-BookingService/internal/api/handlers"
	updateBooking "github.com/velmare/Nautic-BookingService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID   = "invalid booking ID"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid booking date format, expected YYYY-MM-DD"
	msgNotFound           = "booking not found"
	msgBookingLocked      = "booking cannot be updated in its current status"
	msgTooManyPassengers  = "passenger count exceeds boat capacity"
	msgPriceNotConfigured = "price not configured for the new date, supply finalPrice"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *updateBooking.ConflictError

		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("PUT /bookings/{id} - Conflict: booking_id=%d, reason=%s", bookingID, conflict.Reason)
			handlers.RespondError(w, http.StatusConflict, conflict.Reason)

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrBookingLocked):
			h.logger.Warn("PUT /bookings/{id} - Booking locked: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgBookingLocked)

		case errors.Is(err, updateBooking.ErrTooManyPassengers):
			h.logger.Warn("PUT /bookings/{id} - Too many passengers: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgTooManyPassengers)

		case errors.Is(err, updateBooking.ErrPriceNotConfigured):
			h.logger.Warn("PUT /bookings/{id} - Price not configured: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPriceNotConfigured)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking updated successfully: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
