package availability

import "errors"

var (
	// ErrAvailabilityNotFound возвращается, когда запись доступности не найдена
	ErrAvailabilityNotFound = errors.New("availability.repository: availability not found")

	// ErrUnknownType возвращается для записи с неизвестным типом
	ErrUnknownType = errors.New("availability.repository: unknown availability type")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
