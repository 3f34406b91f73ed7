package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/velmare/Nautic-BookingService/internal/domain"
	bookingRepo "github.com/velmare/Nautic-BookingService/internal/infra/storage/booking"
	"github.com/velmare/Nautic-BookingService/internal/integrations/notifier"
	"github.com/velmare/Nautic-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	notifier    NotifierClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	notifierClient NotifierClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		notifier:    notifierClient,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetBoatBookings получает бронирования лодки с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению отменённых.
// По умолчанию отменённые бронирования не возвращаются.
func (s *Service) GetBoatBookings(ctx context.Context, req *models.GetBoatBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetBoatBookings: fetching bookings for boat=%d", req.BoatID)

	if req.BoatID <= 0 {
		return nil, fmt.Errorf("%w: boatID must be positive", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetBoatBookings: invalid filter for boat=%d: %v", req.BoatID, err)
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByBoatWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetBoatBookings: repository error for boat=%d: %v", req.BoatID, err)
		return nil, fmt.Errorf("%w: GetBoatBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBoatBookings: fetched %d bookings for boat=%d", len(bookings), req.BoatID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Отмена освобождает дату и слот для новых бронирований.
// Завершённые и уже отменённые бронирования отменить нельзя.
func (s *Service) Cancel(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d in status %q cannot be cancelled", id, booking.Status)
		return nil, fmt.Errorf("%w: status %q", ErrCannotCancel, booking.Status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		s.logger.Error("Cancel: failed to update status for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - failed to update status: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusCancelled

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)

	// Недоступность нотификатора не откатывает отмену
	_ = s.notifier.SendBookingEventWithGracefulDegradation(ctx, &notifier.BookingEvent{
		Event:        notifier.EventBookingCancelled,
		BookingID:    booking.ID,
		BoatID:       booking.BoatID,
		CustomerName: booking.CustomerName,
		BookingDate:  booking.BookingDate.Format(domain.DateFormat),
		TimeSlot:     string(booking.TimeSlot),
		FinalPrice:   booking.FinalPrice,
	})

	return models.FromDomainBooking(booking), nil
}

// UpdateStatus меняет статус бронирования
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%d -> %s", id, req.Status)

	status, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status %q for booking id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Отмена через смену статуса подчиняется тем же правилам, что и Cancel
	if status == domain.StatusCancelled && !booking.CanBeCancelled() {
		s.logger.Warn("UpdateStatus: booking id=%d in status %q cannot be cancelled", id, booking.Status)
		return nil, fmt.Errorf("%w: status %q", ErrCannotCancel, booking.Status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Error("UpdateStatus: failed to update booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - failed to update: %v", ErrInternal, err)
	}

	booking.Status = status

	s.logger.Info("UpdateStatus: booking id=%d is now %s", id, status)
	return models.FromDomainBooking(booking), nil
}

// Delete безвозвратно удаляет бронирование
// В отличие от отмены, запись исчезает из истории; для обычного
// освобождения слота предпочтительна отмена.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}
