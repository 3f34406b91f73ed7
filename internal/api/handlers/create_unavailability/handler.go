package create_unavailability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/velmare/Nautic-BookingService/internal/api/handlers"
	"github.com/velmare/Nautic-BookingService/internal/service/unavailability"
	"github.com/velmare/Nautic-BookingService/internal/service/unavailability/models"
)

const (
	msgInvalidBoatID      = "invalid boat ID"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidWindow      = "invalid unavailability window"
	msgBoatNotFound       = "boat not found"
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

// Handle POST /api/v1/boats/{boatId}/unavailability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	boatID, err := strconv.ParseInt(vars["boatId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /boats/{id}/unavailability - Invalid boat ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBoatID)
		return
	}

	var req models.CreateWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /boats/{id}/unavailability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// ID лодки берется из пути, тело его не перекрывает
	req.BoatID = boatID

	window, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, unavailability.ErrBoatNotFound):
			h.logger.Warn("POST /boats/{id}/unavailability - Boat not found: boat_id=%d", boatID)
			handlers.RespondNotFound(w, msgBoatNotFound)

		case errors.Is(err, unavailability.ErrInvalidInput):
			h.logger.Warn("POST /boats/{id}/unavailability - Invalid window: boat_id=%d, error=%v", boatID, err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("POST /boats/{id}/unavailability - Failed to create: boat_id=%d, error=%v", boatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /boats/{id}/unavailability - Window created: window_id=%d, boat_id=%d", window.ID, boatID)
	handlers.RespondJSON(w, http.StatusCreated, window)
}
