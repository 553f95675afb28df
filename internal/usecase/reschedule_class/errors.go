package reschedule_class

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("reschedule_class: %w", domain.ErrInvalidInput)

	// ErrClassNotFound возвращается, когда занятие не найдено
	ErrClassNotFound = fmt.Errorf("reschedule_class: class %w", domain.ErrNotFound)

	// ErrTrainerNotFound возвращается, когда тренер не найден
	ErrTrainerNotFound = fmt.Errorf("reschedule_class: trainer %w", domain.ErrNotFound)

	// ErrRoomNotFound возвращается, когда зал не найден
	ErrRoomNotFound = fmt.Errorf("reschedule_class: room %w", domain.ErrNotFound)

	// ErrAlreadyStarted возвращается при попытке изменить начавшееся занятие
	ErrAlreadyStarted = fmt.Errorf("reschedule_class: class %w", domain.ErrAlreadyStarted)

	// ErrRoomCapacityExceeded возвращается, когда вместимость занятия больше вместимости зала
	ErrRoomCapacityExceeded = fmt.Errorf("reschedule_class: room %w", domain.ErrCapacityExceeded)

	// ErrBelowRegistrations возвращается, когда вместимость меньше текущего числа записей
	ErrBelowRegistrations = fmt.Errorf("reschedule_class: registrations %w", domain.ErrCapacityExceeded)

	// ErrTrainerNotAvailable возвращается, когда интервал не покрыт доступностью тренера
	ErrTrainerNotAvailable = fmt.Errorf("reschedule_class: trainer %w", domain.ErrNotAvailable)

	// ErrTrainerConflict возвращается при конфликте у тренера
	ErrTrainerConflict = fmt.Errorf("reschedule_class: trainer %w", domain.ErrResourceConflict)

	// ErrRoomConflict возвращается при конфликте у зала
	ErrRoomConflict = fmt.Errorf("reschedule_class: room %w", domain.ErrResourceConflict)

	// ErrConcurrentBooking возвращается, когда параллельный запрос занял ресурс раньше
	ErrConcurrentBooking = fmt.Errorf("reschedule_class: concurrent booking %w", domain.ErrResourceConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_class: internal error")
)
