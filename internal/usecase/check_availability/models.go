package check_availability

import (
	"time"

	"github.com/velmare/Nautic-BookingService/internal/domain"
)

// Request модель запроса на проверку доступности
type Request struct {
	BoatID           int64           // ID лодки
	Date             time.Time       // Дата бронирования (без времени)
	RequestedSlot    domain.TimeSlot // Запрашиваемый слот
	ExcludeBookingID *int64          // Исключаемое бронирование (при редактировании)
}

// Response вердикт проверки доступности
// Либо Available=true без причины, либо Available=false с причиной
type Response struct {
	Available bool
	Reason    string
}
