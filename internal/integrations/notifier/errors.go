package notifier

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifier client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("notifier client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Уведомления не критичны для бронирования: сервис недоступен - бронирование проходит без уведомления
	ErrServiceDegraded = errors.New("notifier unavailable: graceful degradation applied")
)
