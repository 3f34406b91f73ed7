package calculate_price

import "errors"

var (
	// ErrBoatNotFound возвращается, когда лодка не найдена
	ErrBoatNotFound = errors.New("calculate_price: boat not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("calculate_price: service not found")

	// ErrServiceNotForBoat возвращается, когда услуга привязана к другой лодке
	ErrServiceNotForBoat = errors.New("calculate_price: service does not belong to this boat")

	// ErrTooManyPassengers возвращается, когда пассажиров больше вместимости лодки
	ErrTooManyPassengers = errors.New("calculate_price: passenger count exceeds boat capacity")

	// ErrPriceNotConfigured возвращается при отсутствии ценовой конфигурации
	// для лодки, услуги или сезона даты. Никогда не маскируется нулевой ценой
	ErrPriceNotConfigured = errors.New("calculate_price: price not configured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("calculate_price: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("calculate_price: internal error")
)
