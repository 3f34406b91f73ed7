package unavailability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/velmare/Nautic-BookingService/internal/domain"
	fleetRepo "github.com/velmare/Nautic-BookingService/internal/infra/storage/fleet"
	unavailRepo "github.com/velmare/Nautic-BookingService/internal/infra/storage/unavailability"
	"github.com/velmare/Nautic-BookingService/internal/service/unavailability/models"
)

// Service сервис для работы с окнами недоступности
type Service struct {
	unavailRepo UnavailabilityRepository
	fleetRepo   FleetRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса окон недоступности
func NewService(
	unavailRepo UnavailabilityRepository,
	fleetRepo FleetRepository,
	logger Logger,
) *Service {
	return &Service{
		unavailRepo: unavailRepo,
		fleetRepo:   fleetRepo,
		logger:      logger,
	}
}

// Create создает окно недоступности для лодки
// Окно блокирует все слоты на каждый день диапазона включительно.
// Существующие бронирования внутри диапазона не трогаются - стаф
// разбирается с ними вручную.
func (s *Service) Create(ctx context.Context, req *models.CreateWindowRequest) (*models.WindowResponse, error) {
	s.logger.Info("Create: window for boat=%d, from=%s, to=%s", req.BoatID, req.DateFrom, req.DateTo)

	window, err := s.parseRequest(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	if _, err := s.fleetRepo.GetBoatByID(ctx, req.BoatID); err != nil {
		if errors.Is(err, fleetRepo.ErrBoatNotFound) {
			s.logger.Warn("Create: boat id=%d not found", req.BoatID)
			return nil, ErrBoatNotFound
		}
		s.logger.Error("Create: failed to get boat id=%d: %v", req.BoatID, err)
		return nil, fmt.Errorf("%w: Create - failed to get boat: %v", ErrInternal, err)
	}

	created, err := s.unavailRepo.Create(ctx, window)
	if err != nil {
		s.logger.Error("Create: repository error for boat=%d: %v", req.BoatID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created window id=%d for boat=%d", created.ID, created.BoatID)
	return models.FromDomainWindow(created), nil
}

// ListByBoat возвращает все окна недоступности лодки
func (s *Service) ListByBoat(ctx context.Context, boatID int64) (*models.WindowListResponse, error) {
	s.logger.Info("ListByBoat: fetching windows for boat=%d", boatID)

	if boatID <= 0 {
		return nil, fmt.Errorf("%w: boatID must be positive", ErrInvalidInput)
	}

	windows, err := s.unavailRepo.GetByBoatID(ctx, boatID)
	if err != nil {
		s.logger.Error("ListByBoat: repository error for boat=%d: %v", boatID, err)
		return nil, fmt.Errorf("%w: ListByBoat - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWindowList(windows), nil
}

// Delete удаляет окно недоступности
// Окна правятся целиком: изменение диапазона - это удаление и создание заново
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting window id=%d", id)

	if err := s.unavailRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, unavailRepo.ErrWindowNotFound) {
			s.logger.Warn("Delete: window id=%d not found", id)
			return ErrWindowNotFound
		}
		s.logger.Error("Delete: repository error for window id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted window id=%d", id)
	return nil
}

// parseRequest валидирует запрос и собирает domain модель
func (s *Service) parseRequest(req *models.CreateWindowRequest) (*domain.UnavailabilityWindow, error) {
	if req.BoatID <= 0 {
		return nil, fmt.Errorf("%w: boatID must be positive", ErrInvalidInput)
	}

	dateFrom, err := time.Parse(domain.DateFormat, req.DateFrom)
	if err != nil {
		return nil, fmt.Errorf("%w: dateFrom must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	dateTo, err := time.Parse(domain.DateFormat, req.DateTo)
	if err != nil {
		return nil, fmt.Errorf("%w: dateTo must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	if dateTo.Before(dateFrom) {
		return nil, fmt.Errorf("%w: dateTo must not precede dateFrom", ErrInvalidInput)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxUnavailabilityReasonLength {
		return nil, fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	return &domain.UnavailabilityWindow{
		BoatID:   req.BoatID,
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Reason:   req.Reason,
	}, nil
}
