package unavailability

import (
	"context"

	"github.com/velmare/Nautic-BookingService/internal/domain"
)

// UnavailabilityRepository интерфейс репозитория окон недоступности
type UnavailabilityRepository interface {
	Create(ctx context.Context, window *domain.UnavailabilityWindow) (*domain.UnavailabilityWindow, error)
	GetByBoatID(ctx context.Context, boatID int64) ([]*domain.UnavailabilityWindow, error)
	Delete(ctx context.Context, id int64) error
}

// FleetRepository интерфейс репозитория флота
type FleetRepository interface {
	GetBoatByID(ctx context.Context, id int64) (*domain.Boat, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
