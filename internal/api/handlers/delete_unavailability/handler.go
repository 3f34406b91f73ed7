package delete_unavailability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/velmare/Nautic-BookingService/internal/api/handlers"
	"github.com/velmare/Nautic-BookingService/internal/service/unavailability"
)

const (
	msgInvalidWindowID = "invalid unavailability window ID"
	msgNotFound        = "unavailability window not found"
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

// Handle DELETE /api/v1/unavailability/{windowId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	windowID, err := strconv.ParseInt(vars["windowId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /unavailability/{id} - Invalid window ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindowID)
		return
	}

	if err := h.service.Delete(r.Context(), windowID); err != nil {
		switch {
		case errors.Is(err, unavailability.ErrWindowNotFound):
			h.logger.Warn("DELETE /unavailability/{id} - Window not found: window_id=%d", windowID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /unavailability/{id} - Failed to delete: window_id=%d, error=%v", windowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /unavailability/{id} - Window deleted successfully: window_id=%d", windowID)
	handlers.RespondNoContent(w)
}
