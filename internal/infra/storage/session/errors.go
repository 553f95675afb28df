package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда тренировка не найдена
	ErrSessionNotFound = errors.New("session.repository: session not found")

	// ErrTrainerOverlap возвращается при нарушении ограничения sessions_trainer_no_overlap
	ErrTrainerOverlap = errors.New("session.repository: trainer already has a session in this interval")

	// ErrRoomOverlap возвращается при нарушении ограничения sessions_room_no_overlap
	ErrRoomOverlap = errors.New("session.repository: room already has a session in this interval")

	// ErrMemberOverlap возвращается при нарушении ограничения sessions_member_no_overlap
	ErrMemberOverlap = errors.New("session.repository: member already has a session in this interval")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("session.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("session.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("session.repository: failed to scan row")
)
