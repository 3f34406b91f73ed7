package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/velmare/Nautic-BookingService/internal/availability"
	"github.com/velmare/Nautic-BookingService/internal/domain"
	bookingRepo "github.com/velmare/Nautic-BookingService/internal/infra/storage/booking"
	fleetRepo "github.com/velmare/Nautic-BookingService/internal/infra/storage/fleet"
	"github.com/velmare/Nautic-BookingService/internal/pricing"
)

// UseCase use case для обновления бронирования
type UseCase struct {
	bookingRepo BookingRepository
	unavailRepo UnavailabilityRepository
	fleetRepo   FleetRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	unavailRepo UnavailabilityRepository,
	fleetRepo FleetRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		unavailRepo: unavailRepo,
		fleetRepo:   fleetRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case обновления бронирования
//
// Перенос даты или слота перепроверяет доступность внутри той же
// сериализуемой транзакции, что и запись, исключая из проверки само
// редактируемое бронирование - иначе оно конфликтовало бы само с собой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: id=%d", req.ID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.ID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		if !booking.CanBeUpdated() {
			uc.logger.Warn("UpdateBooking: booking id=%d in status %q is not editable",
				booking.ID, booking.Status)
			return fmt.Errorf("%w: status %q", ErrBookingLocked, booking.Status)
		}

		if err := uc.applyChanges(txCtx, booking, req); err != nil {
			return err
		}

		// Перенос по дате или слоту обязан пройти резолвер заново
		if req.touchesSchedule() {
			if err := uc.recheckAvailability(txCtx, booking); err != nil {
				return err
			}
		}

		updated, err := uc.bookingRepo.Update(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotConflict) {
				uc.logger.Warn("UpdateBooking: unique index rejected move of booking id=%d", booking.ID)
				return &ConflictError{Reason: "slot was booked concurrently"}
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", result.ID)

	return fromDomain(result), nil
}

// applyChanges накладывает изменения запроса на бронирование
func (uc *UseCase) applyChanges(ctx context.Context, booking *domain.Booking, req *Request) error {
	if req.CustomerName != nil {
		booking.CustomerName = *req.CustomerName
	}
	if req.CustomerPhone != nil {
		booking.CustomerPhone = req.CustomerPhone
	}
	if req.CustomerEmail != nil {
		booking.CustomerEmail = req.CustomerEmail
	}
	if req.Notes != nil {
		booking.Notes = req.Notes
	}
	if req.Status != nil {
		booking.Status = *req.Status
	}
	if req.Deposit != nil {
		booking.Deposit = *req.Deposit
	}

	if req.Passengers != nil {
		boat, err := uc.fleetRepo.GetBoatByID(ctx, booking.BoatID)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get boat id=%d: %v", booking.BoatID, err)
			return fmt.Errorf("%w: failed to get boat: %w", ErrInternal, err)
		}
		if !boat.FitsPassengers(*req.Passengers) {
			uc.logger.Warn("UpdateBooking: %d passengers exceed capacity %d of boat id=%d",
				*req.Passengers, boat.MaxPassengers, boat.ID)
			return fmt.Errorf("%w: max %d", ErrTooManyPassengers, boat.MaxPassengers)
		}
		booking.Passengers = *req.Passengers
	}

	dateMoved := req.Date != nil && !req.Date.Equal(booking.BookingDate)
	if req.Date != nil {
		booking.BookingDate = *req.Date
	}
	if req.TimeSlot != nil {
		booking.TimeSlot = *req.TimeSlot
	}

	// Перенос даты или смена состава пересчитывает рекомендованную цену:
	// другой сезон или другой тариф по пассажирам
	if dateMoved || req.Passengers != nil {
		if err := uc.reprice(ctx, booking, req); err != nil {
			return err
		}
	} else if req.FinalPrice != nil {
		booking.FinalPrice = *req.FinalPrice
	}

	return nil
}

// reprice пересчитывает base_price после переноса; ручная цена из запроса,
// если есть, остается итоговой
func (uc *UseCase) reprice(ctx context.Context, booking *domain.Booking, req *Request) error {
	schedule, err := uc.fleetRepo.GetPriceSchedule(ctx, booking.BoatID, booking.ServiceID)
	if err != nil && !errors.Is(err, fleetRepo.ErrScheduleNotFound) {
		uc.logger.Error("UpdateBooking: failed to get price schedule: %v", err)
		return fmt.Errorf("%w: failed to get price schedule: %w", ErrInternal, err)
	}

	var resolveErr error
	var basePrice float64
	if schedule != nil {
		basePrice, resolveErr = pricing.Resolve(schedule, booking.BookingDate, booking.Passengers)
	} else {
		resolveErr = pricing.ErrScheduleNotConfigured
	}

	if resolveErr != nil {
		if req.FinalPrice == nil {
			uc.logger.Warn("UpdateBooking: price not configured for boat=%d, service=%d: %v",
				booking.BoatID, booking.ServiceID, resolveErr)
			return fmt.Errorf("%w: %w", ErrPriceNotConfigured, resolveErr)
		}
		booking.BasePrice = *req.FinalPrice
		booking.FinalPrice = *req.FinalPrice
		return nil
	}

	booking.BasePrice = basePrice
	if req.FinalPrice != nil {
		booking.FinalPrice = *req.FinalPrice
	} else {
		booking.FinalPrice = basePrice
	}

	return nil
}

// recheckAvailability перепроверяет доступность новой даты и слота,
// исключая само редактируемое бронирование
func (uc *UseCase) recheckAvailability(ctx context.Context, booking *domain.Booking) error {
	filter := domain.BoatBookingsFilter{
		BoatID:           booking.BoatID,
		StartDate:        &booking.BookingDate,
		EndDate:          &booking.BookingDate,
		IncludeCancelled: true,
		ExcludeBookingID: &booking.ID,
	}

	bookings, err := uc.bookingRepo.GetByBoatWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("UpdateBooking: failed to get bookings: %v", err)
		return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
	}

	windows, err := uc.unavailRepo.GetCovering(ctx, booking.BoatID, booking.BookingDate)
	if err != nil {
		uc.logger.Error("UpdateBooking: failed to get unavailability windows: %v", err)
		return fmt.Errorf("%w: failed to get unavailability windows: %w", ErrInternal, err)
	}

	verdict := availability.Check(availability.CheckInput{
		Date:             booking.BookingDate,
		RequestedSlot:    booking.TimeSlot,
		ExcludeBookingID: &booking.ID,
		Bookings:         bookings,
		Windows:          windows,
	})

	if !verdict.Available {
		uc.logger.Warn("UpdateBooking: boat=%d not available on %s: %s",
			booking.BoatID, booking.BookingDate.Format(domain.DateFormat), verdict.Reason)
		return &ConflictError{Reason: verdict.Reason}
	}

	return nil
}
