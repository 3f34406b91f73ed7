package create_unavailability

import (
	"context"

	"github.com/velmare/Nautic-BookingService/internal/service/unavailability/models"
)

type UnavailabilityService interface {
	Create(ctx context.Context, req *models.CreateWindowRequest) (*models.WindowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
