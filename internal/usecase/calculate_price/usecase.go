package calculate_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/velmare/Nautic-BookingService/internal/domain"
	fleetRepo "github.com/velmare/Nautic-BookingService/internal/infra/storage/fleet"
	"github.com/velmare/Nautic-BookingService/internal/pricing"
)

// UseCase use case расчета цены бронирования
type UseCase struct {
	fleetRepo FleetRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(fleetRepo FleetRepository, logger Logger) *UseCase {
	return &UseCase{
		fleetRepo: fleetRepo,
		logger:    logger,
	}
}

// Execute выполняет расчет цены
//
// В отличие от проверки доступности этот use case fail-loud: сбой
// хранилища или отсутствие ценовой конфигурации - ошибка, цена никогда
// не выдумывается и не обнуляется молча.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CalculatePrice: boat=%d, service=%d, date=%s, passengers=%d",
		req.BoatID, req.ServiceID, req.Date.Format(domain.DateFormat), req.Passengers)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CalculatePrice: validation failed: %v", err)
		return nil, err
	}

	boat, err := uc.fleetRepo.GetBoatByID(ctx, req.BoatID)
	if err != nil {
		if errors.Is(err, fleetRepo.ErrBoatNotFound) {
			uc.logger.Warn("CalculatePrice: boat id=%d not found", req.BoatID)
			return nil, ErrBoatNotFound
		}
		uc.logger.Error("CalculatePrice: failed to get boat id=%d: %v", req.BoatID, err)
		return nil, fmt.Errorf("%w: failed to get boat: %v", ErrInternal, err)
	}

	service, err := uc.fleetRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, fleetRepo.ErrServiceNotFound) {
			uc.logger.Warn("CalculatePrice: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CalculatePrice: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if service.BoatID != boat.ID {
		uc.logger.Warn("CalculatePrice: service id=%d belongs to boat id=%d, not id=%d",
			service.ID, service.BoatID, boat.ID)
		return nil, ErrServiceNotForBoat
	}

	if !boat.FitsPassengers(req.Passengers) {
		uc.logger.Warn("CalculatePrice: %d passengers exceed capacity %d of boat id=%d",
			req.Passengers, boat.MaxPassengers, boat.ID)
		return nil, fmt.Errorf("%w: max %d", ErrTooManyPassengers, boat.MaxPassengers)
	}

	schedule, err := uc.fleetRepo.GetPriceSchedule(ctx, req.BoatID, req.ServiceID)
	if err != nil {
		if errors.Is(err, fleetRepo.ErrScheduleNotFound) {
			uc.logger.Warn("CalculatePrice: no schedule for boat=%d, service=%d", req.BoatID, req.ServiceID)
			return nil, fmt.Errorf("%w: no schedule for boat and service", ErrPriceNotConfigured)
		}
		uc.logger.Error("CalculatePrice: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	price, err := pricing.Resolve(schedule, req.Date, req.Passengers)
	if err != nil {
		uc.logger.Warn("CalculatePrice: price not configured for boat=%d, service=%d, date=%s: %v",
			req.BoatID, req.ServiceID, req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrPriceNotConfigured, err)
	}

	season, _ := domain.SeasonForMonth(req.Date.Month())

	uc.logger.Info("CalculatePrice: boat=%d, service=%d, season=%s, price=%.2f",
		req.BoatID, req.ServiceID, season, price)

	return &Response{Price: price, Season: season}, nil
}

func validateRequest(req *Request) error {
	if req.BoatID <= 0 {
		return fmt.Errorf("%w: boatID must be positive", ErrInvalidInput)
	}
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Passengers < domain.MinPassengers {
		return fmt.Errorf("%w: passengers must be positive", ErrInvalidInput)
	}
	return nil
}
