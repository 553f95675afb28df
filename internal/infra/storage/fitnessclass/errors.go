package fitnessclass

import "errors"

var (
	// ErrClassNotFound возвращается, когда занятие не найдено
	ErrClassNotFound = errors.New("fitnessclass.repository: class not found")

	// ErrTrainerOverlap возвращается при нарушении ограничения fitness_classes_trainer_no_overlap
	ErrTrainerOverlap = errors.New("fitnessclass.repository: trainer already has a class in this interval")

	// ErrRoomOverlap возвращается при нарушении ограничения fitness_classes_room_no_overlap
	ErrRoomOverlap = errors.New("fitnessclass.repository: room already has a class in this interval")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("fitnessclass.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("fitnessclass.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("fitnessclass.repository: failed to scan row")
)
