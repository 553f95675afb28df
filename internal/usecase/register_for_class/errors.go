package register_for_class

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("register_for_class: %w", domain.ErrInvalidInput)

	// ErrMemberNotFound возвращается, когда член клуба не найден
	ErrMemberNotFound = fmt.Errorf("register_for_class: member %w", domain.ErrNotFound)

	// ErrClassNotFound возвращается, когда занятие не найдено
	ErrClassNotFound = fmt.Errorf("register_for_class: class %w", domain.ErrNotFound)

	// ErrReferenceNotFound возвращается, когда член клуба или занятие удалены во время записи
	ErrReferenceNotFound = fmt.Errorf("register_for_class: member or class %w", domain.ErrNotFound)

	// ErrAlreadyStarted возвращается при записи на начавшееся занятие
	ErrAlreadyStarted = fmt.Errorf("register_for_class: class %w", domain.ErrAlreadyStarted)

	// ErrAlreadyRegistered возвращается при повторной записи на то же занятие
	ErrAlreadyRegistered = fmt.Errorf("register_for_class: member %w", domain.ErrAlreadyRegistered)

	// ErrClassFull возвращается, когда на занятии нет свободных мест
	ErrClassFull = fmt.Errorf("register_for_class: class %w", domain.ErrCapacityExceeded)

	// ErrMemberConflict возвращается, когда член клуба занят в интервале занятия
	ErrMemberConflict = fmt.Errorf("register_for_class: member %w", domain.ErrResourceConflict)

	// ErrConcurrentBooking возвращается, когда параллельный запрос занял ресурс раньше
	ErrConcurrentBooking = fmt.Errorf("register_for_class: concurrent booking %w", domain.ErrResourceConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("register_for_class: internal error")
)
