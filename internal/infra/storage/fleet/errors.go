package fleet

import "errors"

var (
	// ErrBoatNotFound возвращается, когда лодка не найдена
	ErrBoatNotFound = errors.New("fleet.repository: boat not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("fleet.repository: service not found")

	// ErrScheduleNotFound возвращается, когда для лодки и услуги нет таблицы цен
	ErrScheduleNotFound = errors.New("fleet.repository: price schedule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("fleet.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("fleet.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("fleet.repository: failed to scan row")
)
