package notifier

// BookingEvent событие бронирования, отправляемое в сервис уведомлений
type BookingEvent struct {
	Event        string  `json:"event"` // "booking.created", "booking.cancelled"
	BookingID    int64   `json:"booking_id"`
	BoatID       int64   `json:"boat_id"`
	CustomerName string  `json:"customer_name"`
	BookingDate  string  `json:"booking_date"` // "2025-07-10"
	TimeSlot     string  `json:"time_slot"`
	FinalPrice   float64 `json:"final_price"`
}

// Событийные типы
const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

// ErrorResponse модель ошибки от сервиса уведомлений
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
