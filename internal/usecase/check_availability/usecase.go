package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/velmare/Nautic-BookingService/internal/availability"
	"github.com/velmare/Nautic-BookingService/internal/domain"
	fleetRepo "github.com/velmare/Nautic-BookingService/internal/infra/storage/fleet"
)

// UseCase use case проверки доступности лодки на дату и слот
type UseCase struct {
	bookingRepo BookingRepository
	unavailRepo UnavailabilityRepository
	fleetRepo   FleetRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	unavailRepo UnavailabilityRepository,
	fleetRepo FleetRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		unavailRepo: unavailRepo,
		fleetRepo:   fleetRepo,
		logger:      logger,
	}
}

// Execute выполняет проверку доступности
//
// Сбои хранилища не пробрасываются как ошибки: проверка fail-closed
// и отвечает "недоступно" с generic причиной. Ошибкой считаются только
// некорректный запрос и несуществующая лодка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: boat=%d, date=%s, slot=%s",
		req.BoatID, req.Date.Format(domain.DateFormat), req.RequestedSlot)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// Лодка должна существовать - резолвер доверяет вызывающему коду
	if _, err := uc.fleetRepo.GetBoatByID(ctx, req.BoatID); err != nil {
		if errors.Is(err, fleetRepo.ErrBoatNotFound) {
			uc.logger.Warn("CheckAvailability: boat id=%d not found", req.BoatID)
			return nil, ErrBoatNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get boat id=%d, failing closed: %v", req.BoatID, err)
		return failClosed(), nil
	}

	filter := domain.BoatBookingsFilter{
		BoatID:           req.BoatID,
		StartDate:        &req.Date,
		EndDate:          &req.Date,
		ExcludeBookingID: req.ExcludeBookingID,
		IncludeCancelled: true, // фильтрация по статусу - ответственность резолвера
	}

	bookings, err := uc.bookingRepo.GetByBoatWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings, failing closed: %v", err)
		return failClosed(), nil
	}

	windows, err := uc.unavailRepo.GetCovering(ctx, req.BoatID, req.Date)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get unavailability windows, failing closed: %v", err)
		return failClosed(), nil
	}

	result := availability.Check(availability.CheckInput{
		Date:             req.Date,
		RequestedSlot:    req.RequestedSlot,
		ExcludeBookingID: req.ExcludeBookingID,
		Bookings:         bookings,
		Windows:          windows,
	})

	if result.Available {
		uc.logger.Info("CheckAvailability: boat=%d available on %s for slot=%s",
			req.BoatID, req.Date.Format(domain.DateFormat), req.RequestedSlot)
	} else {
		uc.logger.Info("CheckAvailability: boat=%d not available on %s: %s",
			req.BoatID, req.Date.Format(domain.DateFormat), result.Reason)
	}

	return &Response{Available: result.Available, Reason: result.Reason}, nil
}

func validateRequest(req *Request) error {
	if req.BoatID <= 0 {
		return fmt.Errorf("%w: boatID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.RequestedSlot == "" {
		return fmt.Errorf("%w: slot is required", ErrInvalidInput)
	}
	if len(req.RequestedSlot) > domain.MaxTimeSlotLength {
		return fmt.Errorf("%w: slot is too long", ErrInvalidInput)
	}
	return nil
}

func failClosed() *Response {
	return &Response{Available: false, Reason: ReasonCheckFailed}
}
