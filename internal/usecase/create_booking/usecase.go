package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/velmare/Nautic-BookingService/internal/availability"
	"github.com/velmare/Nautic-BookingService/internal/domain"
	bookingRepo "github.com/velmare/Nautic-BookingService/internal/infra/storage/booking"
	fleetRepo "github.com/velmare/Nautic-BookingService/internal/infra/storage/fleet"
	"github.com/velmare/Nautic-BookingService/internal/integrations/notifier"
	"github.com/velmare/Nautic-BookingService/internal/pricing"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	unavailRepo UnavailabilityRepository
	fleetRepo   FleetRepository
	notifier    NotifierClient
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	unavailRepo UnavailabilityRepository,
	fleetRepo FleetRepository,
	notifierClient NotifierClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		unavailRepo: unavailRepo,
		fleetRepo:   fleetRepo,
		notifier:    notifierClient,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Проверка доступности и вставка выполняются в одной сериализуемой
// транзакции с блокировкой прочитанных строк - два конкурентных запроса
// на один слот не могут оба увидеть "доступно" и оба вставиться.
// Частичный уникальный индекс в БД - последний рубеж: его нарушение
// трактуется как конфликт слота, а не как сбой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: boat=%d, service=%d, date=%s, slot=%s, passengers=%d",
		req.BoatID, req.ServiceID, req.Date.Format(domain.DateFormat), req.TimeSlot, req.Passengers)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем лодку
	boat, err := uc.fleetRepo.GetBoatByID(ctx, req.BoatID)
	if err != nil {
		if errors.Is(err, fleetRepo.ErrBoatNotFound) {
			uc.logger.Warn("CreateBooking: boat id=%d not found", req.BoatID)
			return nil, ErrBoatNotFound
		}
		uc.logger.Error("CreateBooking: failed to get boat id=%d: %v", req.BoatID, err)
		return nil, fmt.Errorf("%w: failed to get boat: %w", ErrInternal, err)
	}

	// 3. Получаем услугу и проверяем привязку к лодке
	service, err := uc.fleetRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, fleetRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %w", ErrInternal, err)
	}

	if service.BoatID != boat.ID {
		uc.logger.Warn("CreateBooking: service id=%d belongs to boat id=%d, not id=%d",
			service.ID, service.BoatID, boat.ID)
		return nil, ErrServiceNotForBoat
	}

	// 4. Проверяем вместимость
	if !boat.FitsPassengers(req.Passengers) {
		uc.logger.Warn("CreateBooking: %d passengers exceed capacity %d of boat id=%d",
			req.Passengers, boat.MaxPassengers, boat.ID)
		return nil, fmt.Errorf("%w: max %d", ErrTooManyPassengers, boat.MaxPassengers)
	}

	// 5. Рассчитываем цену
	basePrice, finalPrice, err := uc.resolvePrice(ctx, req)
	if err != nil {
		return nil, err
	}

	status := domain.StatusPending
	if req.Status != nil {
		status = *req.Status
	}

	var result *domain.Booking

	// 6. Проверка доступности + вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Бронирования на эту дату с блокировкой (FOR UPDATE)
		filter := domain.BoatBookingsFilter{
			BoatID:           req.BoatID,
			StartDate:        &req.Date,
			EndDate:          &req.Date,
			IncludeCancelled: true, // фильтрация по статусу - ответственность резолвера
		}

		bookings, err := uc.bookingRepo.GetByBoatWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// 6.2. Окна недоступности, покрывающие дату
		windows, err := uc.unavailRepo.GetCovering(txCtx, req.BoatID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get unavailability windows: %v", err)
			return fmt.Errorf("%w: failed to get unavailability windows: %w", ErrInternal, err)
		}

		// 6.3. Проверяем доступность слота
		verdict := availability.Check(availability.CheckInput{
			Date:          req.Date,
			RequestedSlot: req.TimeSlot,
			Bookings:      bookings,
			Windows:       windows,
		})

		if !verdict.Available {
			uc.logger.Warn("CreateBooking: boat=%d not available on %s: %s",
				req.BoatID, req.Date.Format(domain.DateFormat), verdict.Reason)
			return &ConflictError{Reason: verdict.Reason}
		}

		// 6.4. Сохраняем бронирование
		booking := &domain.Booking{
			BoatID:        req.BoatID,
			ServiceID:     req.ServiceID,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			CustomerEmail: req.CustomerEmail,
			BookingDate:   req.Date,
			TimeSlot:      req.TimeSlot,
			Passengers:    req.Passengers,
			BasePrice:     basePrice,
			FinalPrice:    finalPrice,
			Deposit:       req.Deposit,
			Status:        status,
			Notes:         req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Нарушение уникального индекса - авторитетное "слот занят"
			if errors.Is(err, bookingRepo.ErrSlotConflict) {
				uc.logger.Warn("CreateBooking: unique index rejected insert for boat=%d, date=%s, slot=%s",
					req.BoatID, req.Date.Format(domain.DateFormat), req.TimeSlot)
				return &ConflictError{Reason: "slot was booked concurrently"}
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 7. Уведомление: недоступность нотификатора не ломает бронирование
	uc.notifyCreated(ctx, result)

	return fromDomain(result), nil
}

// resolvePrice рассчитывает цену бронирования
// Рекомендация резолвера становится base_price; ручная цена стафа, если
// указана, перекрывает её в final_price. Отсутствие ценовой конфигурации -
// ошибка, если стаф не указал цену вручную
func (uc *UseCase) resolvePrice(ctx context.Context, req *Request) (basePrice, finalPrice float64, err error) {
	schedule, err := uc.fleetRepo.GetPriceSchedule(ctx, req.BoatID, req.ServiceID)
	if err != nil && !errors.Is(err, fleetRepo.ErrScheduleNotFound) {
		uc.logger.Error("CreateBooking: failed to get price schedule: %v", err)
		return 0, 0, fmt.Errorf("%w: failed to get price schedule: %w", ErrInternal, err)
	}

	var resolveErr error
	if schedule != nil {
		basePrice, resolveErr = pricing.Resolve(schedule, req.Date, req.Passengers)
	} else {
		resolveErr = pricing.ErrScheduleNotConfigured
	}

	if resolveErr != nil {
		if req.PriceOverride == nil {
			uc.logger.Warn("CreateBooking: price not configured for boat=%d, service=%d: %v",
				req.BoatID, req.ServiceID, resolveErr)
			return 0, 0, fmt.Errorf("%w: %w", ErrPriceNotConfigured, resolveErr)
		}
		// Стаф указал цену вручную - конфигурация не обязательна
		uc.logger.Warn("CreateBooking: price not configured, using manual price %.2f: %v",
			*req.PriceOverride, resolveErr)
		return *req.PriceOverride, *req.PriceOverride, nil
	}

	finalPrice = basePrice
	if req.PriceOverride != nil {
		finalPrice = *req.PriceOverride
	}

	return basePrice, finalPrice, nil
}

func (uc *UseCase) notifyCreated(ctx context.Context, booking *domain.Booking) {
	event := &notifier.BookingEvent{
		Event:        notifier.EventBookingCreated,
		BookingID:    booking.ID,
		BoatID:       booking.BoatID,
		CustomerName: booking.CustomerName,
		BookingDate:  booking.BookingDate.Format(domain.DateFormat),
		TimeSlot:     string(booking.TimeSlot),
		FinalPrice:   booking.FinalPrice,
	}

	// Ошибка уже залогирована клиентом, здесь просто не роняем запрос
	_ = uc.notifier.SendBookingEventWithGracefulDegradation(ctx, event)
}
