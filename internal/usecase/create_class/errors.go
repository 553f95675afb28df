package create_class

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных (интервал, вместимость, название)
	ErrInvalidInput = fmt.Errorf("create_class: %w", domain.ErrInvalidInput)

	// ErrTrainerNotFound возвращается, когда тренер не найден
	ErrTrainerNotFound = fmt.Errorf("create_class: trainer %w", domain.ErrNotFound)

	// ErrRoomNotFound возвращается, когда зал не найден
	ErrRoomNotFound = fmt.Errorf("create_class: room %w", domain.ErrNotFound)

	// ErrRoomCapacityExceeded возвращается, когда вместимость занятия больше вместимости зала
	ErrRoomCapacityExceeded = fmt.Errorf("create_class: room %w", domain.ErrCapacityExceeded)

	// ErrTrainerNotAvailable возвращается, когда интервал не покрыт доступностью тренера
	ErrTrainerNotAvailable = fmt.Errorf("create_class: trainer %w", domain.ErrNotAvailable)

	// ErrTrainerConflict возвращается при конфликте у тренера
	ErrTrainerConflict = fmt.Errorf("create_class: trainer %w", domain.ErrResourceConflict)

	// ErrRoomConflict возвращается при конфликте у зала
	ErrRoomConflict = fmt.Errorf("create_class: room %w", domain.ErrResourceConflict)

	// ErrConcurrentBooking возвращается, когда параллельный запрос занял ресурс раньше
	ErrConcurrentBooking = fmt.Errorf("create_class: concurrent booking %w", domain.ErrResourceConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_class: internal error")
)
