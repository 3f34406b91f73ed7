package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrBookingLocked возвращается, когда бронирование нельзя редактировать
	// (завершено или отменено)
	ErrBookingLocked = errors.New("update_booking: booking cannot be updated in its current status")

	// ErrTooManyPassengers возвращается, когда пассажиров больше вместимости лодки
	ErrTooManyPassengers = errors.New("update_booking: passenger count exceeds boat capacity")

	// ErrPriceNotConfigured возвращается, когда при переносе даты цена не
	// настроена и не переопределена вручную
	ErrPriceNotConfigured = errors.New("update_booking: price not configured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)

// ConflictError возвращается, когда новая дата или слот заняты
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return "update_booking: boat not available: " + e.Reason
}
