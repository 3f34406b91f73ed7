package calculate_price

import (
	"context"

	"github.com/velmare/Nautic-BookingService/internal/domain"
)

// FleetRepository интерфейс репозитория флота
type FleetRepository interface {
	GetBoatByID(ctx context.Context, id int64) (*domain.Boat, error)
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
	GetPriceSchedule(ctx context.Context, boatID, serviceID int64) (*domain.PriceSchedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
