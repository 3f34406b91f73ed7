package create_booking

import "errors"

var (
	// ErrBoatNotFound возвращается, когда лодка не найдена
	ErrBoatNotFound = errors.New("create_booking: boat not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceNotForBoat возвращается, когда услуга привязана к другой лодке
	ErrServiceNotForBoat = errors.New("create_booking: service does not belong to this boat")

	// ErrTooManyPassengers возвращается, когда пассажиров больше вместимости лодки
	ErrTooManyPassengers = errors.New("create_booking: passenger count exceeds boat capacity")

	// ErrPriceNotConfigured возвращается, когда цена не настроена и не
	// переопределена вручную
	ErrPriceNotConfigured = errors.New("create_booking: price not configured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ConflictError возвращается, когда лодка недоступна на запрошенную дату и слот
// Несет человекочитаемую причину из резолвера доступности
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return "create_booking: boat not available: " + e.Reason
}
