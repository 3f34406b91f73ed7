package calculate_price

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/velmare/Nautic-BookingService/internal/api/handlers"
	"github.com/velmare/Nautic-BookingService/internal/domain"
	calculatePrice "github.com/velmare/Nautic-BookingService/internal/usecase/calculate_price"
)

const (
	msgInvalidBoatID      = "invalid boat ID"
	msgMissingServiceID   = "serviceId is required"
	msgInvalidServiceID   = "invalid serviceId"
	msgMissingDate        = "date is required"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgMissingPassengers  = "passengers is required"
	msgInvalidPassengers  = "invalid passengers"
	msgBoatNotFound       = "boat not found"
	msgServiceNotFound    = "service not found"
	msgServiceNotForBoat  = "service does not belong to this boat"
	msgTooManyPassengers  = "passenger count exceeds boat capacity"
	msgPriceNotConfigured = "price not configured for the requested date"
)

type Handler struct {
	useCase CalculatePriceUseCase
	logger  Logger
}

func NewHandler(useCase CalculatePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/boats/{boatId}/price
// Query params: serviceId (required), date (required, YYYY-MM-DD),
// passengers (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	boatID, err := strconv.ParseInt(vars["boatId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /boats/{id}/price - Invalid boat ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBoatID)
		return
	}

	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /boats/{id}/price - Missing service ID: boat_id=%d", boatID)
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /boats/{id}/price - Invalid service ID %q: %v", serviceIDStr, err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /boats/{id}/price - Missing date: boat_id=%d", boatID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /boats/{id}/price - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	passengersStr := r.URL.Query().Get("passengers")
	if passengersStr == "" {
		h.logger.Warn("GET /boats/{id}/price - Missing passengers: boat_id=%d", boatID)
		handlers.RespondBadRequest(w, msgMissingPassengers)
		return
	}

	passengers, err := strconv.Atoi(passengersStr)
	if err != nil {
		h.logger.Warn("GET /boats/{id}/price - Invalid passengers %q: %v", passengersStr, err)
		handlers.RespondBadRequest(w, msgInvalidPassengers)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &calculatePrice.Request{
		BoatID:     boatID,
		ServiceID:  serviceID,
		Date:       date,
		Passengers: passengers,
	})
	if err != nil {
		switch {
		case errors.Is(err, calculatePrice.ErrBoatNotFound):
			h.logger.Warn("GET /boats/{id}/price - Boat not found: boat_id=%d", boatID)
			handlers.RespondNotFound(w, msgBoatNotFound)

		case errors.Is(err, calculatePrice.ErrServiceNotFound):
			h.logger.Warn("GET /boats/{id}/price - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, calculatePrice.ErrServiceNotForBoat):
			h.logger.Warn("GET /boats/{id}/price - Service mismatch: boat_id=%d, service_id=%d", boatID, serviceID)
			handlers.RespondBadRequest(w, msgServiceNotForBoat)

		case errors.Is(err, calculatePrice.ErrTooManyPassengers):
			h.logger.Warn("GET /boats/{id}/price - Too many passengers: boat_id=%d, passengers=%d", boatID, passengers)
			handlers.RespondBadRequest(w, msgTooManyPassengers)

		case errors.Is(err, calculatePrice.ErrPriceNotConfigured):
			// Отсутствие конфигурации - явная ошибка, не нулевая цена
			h.logger.Warn("GET /boats/{id}/price - Price not configured: boat_id=%d, service_id=%d, date=%s",
				boatID, serviceID, dateStr)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPriceNotConfigured)

		case errors.Is(err, calculatePrice.ErrInvalidInput):
			h.logger.Warn("GET /boats/{id}/price - Invalid input: boat_id=%d, error=%v", boatID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /boats/{id}/price - Failed to calculate: boat_id=%d, error=%v", boatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /boats/{id}/price - boat_id=%d, service_id=%d, date=%s, passengers=%d, price=%.2f",
		boatID, serviceID, dateStr, passengers, result.Price)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
