package unavailability

import "errors"

var (
	// ErrWindowNotFound возвращается, когда окно недоступности не найдено
	ErrWindowNotFound = errors.New("unavailability window not found")

	// ErrBoatNotFound возвращается, когда лодка не найдена
	ErrBoatNotFound = errors.New("boat not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
