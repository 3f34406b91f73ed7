package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/velmare/Nautic-BookingService/internal/api/handlers"
	"github.com/velmare/Nautic-BookingService/internal/domain"
	checkAvailability "github.com/velmare/Nautic-BookingService/internal/usecase/check_availability"
)

const (
	msgInvalidBoatID           = "invalid boat ID"
	msgMissingDate             = "date is required"
	msgInvalidDate             = "invalid date format, expected YYYY-MM-DD"
	msgMissingSlot             = "slot is required"
	msgInvalidExcludeBookingID = "invalid excludeBookingId"
	msgBoatNotFound            = "boat not found"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/boats/{boatId}/availability
// Query params: date (required, YYYY-MM-DD), slot (required),
// excludeBookingId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	boatID, err := strconv.ParseInt(vars["boatId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /boats/{id}/availability - Invalid boat ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBoatID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /boats/{id}/availability - Missing date: boat_id=%d", boatID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /boats/{id}/availability - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slot := r.URL.Query().Get("slot")
	if slot == "" {
		h.logger.Warn("GET /boats/{id}/availability - Missing slot: boat_id=%d", boatID)
		handlers.RespondBadRequest(w, msgMissingSlot)
		return
	}

	req := &checkAvailability.Request{
		BoatID:        boatID,
		Date:          date,
		RequestedSlot: domain.TimeSlot(slot),
	}

	if excludeStr := r.URL.Query().Get("excludeBookingId"); excludeStr != "" {
		excludeID, err := strconv.ParseInt(excludeStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /boats/{id}/availability - Invalid excludeBookingId %q: %v", excludeStr, err)
			handlers.RespondBadRequest(w, msgInvalidExcludeBookingID)
			return
		}
		req.ExcludeBookingID = &excludeID
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrBoatNotFound):
			h.logger.Warn("GET /boats/{id}/availability - Boat not found: boat_id=%d", boatID)
			handlers.RespondNotFound(w, msgBoatNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /boats/{id}/availability - Invalid input: boat_id=%d, error=%v", boatID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /boats/{id}/availability - Failed to check: boat_id=%d, error=%v", boatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /boats/{id}/availability - boat_id=%d, date=%s, slot=%s, available=%t",
		boatID, dateStr, slot, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
