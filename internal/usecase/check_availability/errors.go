package check_availability

import "errors"

var (
	// ErrBoatNotFound возвращается, когда лодка не найдена
	ErrBoatNotFound = errors.New("check_availability: boat not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")
)

// ReasonCheckFailed причина, возвращаемая при сбое хранилища
// Проверка fail-closed: лучше заблокировать бронирование, чем допустить
// double-booking на фоне инфраструктурного сбоя
const ReasonCheckFailed = "error checking availability"
