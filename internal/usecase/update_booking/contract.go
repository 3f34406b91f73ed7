package update_booking

import (
	"context"
	"time"

	"github.com/velmare/Nautic-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByBoatWithFilter(ctx context.Context, filter domain.BoatBookingsFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// UnavailabilityRepository интерфейс репозитория окон недоступности
type UnavailabilityRepository interface {
	GetCovering(ctx context.Context, boatID int64, date time.Time) ([]*domain.UnavailabilityWindow, error)
}

// FleetRepository интерфейс репозитория флота
type FleetRepository interface {
	GetBoatByID(ctx context.Context, id int64) (*domain.Boat, error)
	GetPriceSchedule(ctx context.Context, boatID, serviceID int64) (*domain.PriceSchedule, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
