package get_unavailability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/velmare/Nautic-BookingService/internal/api/handlers"
	"github.com/velmare/Nautic-BookingService/internal/service/unavailability"
)

const (
	msgInvalidBoatID = "invalid boat ID"
)

type Handler struct {
	service UnavailabilityService
	logger  Logger
}

func NewHandler(service UnavailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/boats/{boatId}/unavailability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	boatID, err := strconv.ParseInt(vars["boatId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /boats/{id}/unavailability - Invalid boat ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBoatID)
		return
	}

	result, err := h.service.ListByBoat(r.Context(), boatID)
	if err != nil {
		switch {
		case errors.Is(err, unavailability.ErrInvalidInput):
			h.logger.Warn("GET /boats/{id}/unavailability - Invalid boat ID: boat_id=%d", boatID)
			handlers.RespondBadRequest(w, msgInvalidBoatID)

		default:
			h.logger.Error("GET /boats/{id}/unavailability - Failed to fetch: boat_id=%d, error=%v", boatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /boats/{id}/unavailability - Retrieved %d windows for boat_id=%d", len(result.Windows), boatID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
