package registration

import "errors"

var (
	// ErrRegistrationNotFound возвращается, когда запись на занятие не найдена
	ErrRegistrationNotFound = errors.New("registration.repository: registration not found")

	// ErrAlreadyRegistered возвращается при нарушении уникальности (member_id, fitness_class_id)
	ErrAlreadyRegistered = errors.New("registration.repository: member already registered for class")

	// ErrReferenceNotFound возвращается, когда член клуба или занятие удалены до вставки записи
	ErrReferenceNotFound = errors.New("registration.repository: member or class not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("registration.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("registration.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("registration.repository: failed to scan row")
)
