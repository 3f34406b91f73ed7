package check_availability

import (
	"context"
	"time"

	"github.com/velmare/Nautic-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByBoatWithFilter(ctx context.Context, filter domain.BoatBookingsFilter) ([]*domain.Booking, error)
}

// UnavailabilityRepository интерфейс репозитория окон недоступности
type UnavailabilityRepository interface {
	GetCovering(ctx context.Context, boatID int64, date time.Time) ([]*domain.UnavailabilityWindow, error)
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
