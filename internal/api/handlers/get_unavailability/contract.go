package get_unavailability

import (
	"context"

	"github.com/velmare/Nautic-BookingService/internal/service/unavailability/models"
)

type UnavailabilityService interface {
	ListByBoat(ctx context.Context, boatID int64) (*models.WindowListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
