package get_boat_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/velmare/Nautic-BookingService/internal/api/handlers"
	"github.com/velmare/Nautic-BookingService/internal/domain"
	"github.com/velmare/Nautic-BookingService/internal/service/bookings"
	"github.com/velmare/Nautic-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidBoatID = "invalid boat ID"
	msgInvalidDate   = "invalid date format, expected YYYY-MM-DD"
	msgInvalidFilter = "invalid filter parameters"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/boats/{boatId}/bookings
// Query params: startDate, endDate (YYYY-MM-DD), status, includeCancelled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	boatID, err := strconv.ParseInt(vars["boatId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /boats/{id}/bookings - Invalid boat ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBoatID)
		return
	}

	req := &models.GetBoatBookingsRequest{BoatID: boatID}
	query := r.URL.Query()

	if startStr := query.Get("startDate"); startStr != "" {
		start, err := time.Parse(domain.DateFormat, startStr)
		if err != nil {
			h.logger.Warn("GET /boats/{id}/bookings - Invalid startDate %q: %v", startStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &start
	}

	if endStr := query.Get("endDate"); endStr != "" {
		end, err := time.Parse(domain.DateFormat, endStr)
		if err != nil {
			h.logger.Warn("GET /boats/{id}/bookings - Invalid endDate %q: %v", endStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &end
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	req.IncludeCancelled = query.Get("includeCancelled") == "true"

	result, err := h.service.GetBoatBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /boats/{id}/bookings - Invalid filter: boat_id=%d, error=%v", boatID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /boats/{id}/bookings - Failed to fetch: boat_id=%d, error=%v", boatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /boats/{id}/bookings - Retrieved %d bookings for boat_id=%d", len(result.Bookings), boatID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
