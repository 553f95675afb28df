package reschedule_session

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("reschedule_session: %w", domain.ErrInvalidInput)

	// ErrRoomRequired возвращается, когда у тренировки после переноса нет зала
	ErrRoomRequired = fmt.Errorf("reschedule_session: room is required for PT session: %w", domain.ErrInvalidInput)

	// ErrSessionNotFound возвращается, когда тренировка не найдена
	ErrSessionNotFound = fmt.Errorf("reschedule_session: session %w", domain.ErrNotFound)

	// ErrTrainerNotFound возвращается, когда новый тренер не найден
	ErrTrainerNotFound = fmt.Errorf("reschedule_session: trainer %w", domain.ErrNotFound)

	// ErrRoomNotFound возвращается, когда новый зал не найден
	ErrRoomNotFound = fmt.Errorf("reschedule_session: room %w", domain.ErrNotFound)

	// ErrNotOwner возвращается, когда тренировка принадлежит другому члену клуба
	ErrNotOwner = fmt.Errorf("reschedule_session: session %w", domain.ErrOwnership)

	// ErrAlreadyStarted возвращается при попытке перенести начавшуюся тренировку
	ErrAlreadyStarted = fmt.Errorf("reschedule_session: session %w", domain.ErrAlreadyStarted)

	// ErrTrainerNotAvailable возвращается, когда новый интервал не покрыт доступностью тренера
	ErrTrainerNotAvailable = fmt.Errorf("reschedule_session: trainer %w", domain.ErrNotAvailable)

	// ErrTrainerConflict возвращается при конфликте у тренера
	ErrTrainerConflict = fmt.Errorf("reschedule_session: trainer %w", domain.ErrResourceConflict)

	// ErrMemberConflict возвращается при конфликте у члена клуба
	ErrMemberConflict = fmt.Errorf("reschedule_session: member %w", domain.ErrResourceConflict)

	// ErrRoomConflict возвращается при конфликте у зала
	ErrRoomConflict = fmt.Errorf("reschedule_session: room %w", domain.ErrResourceConflict)

	// ErrConcurrentBooking возвращается, когда параллельный запрос занял ресурс раньше
	ErrConcurrentBooking = fmt.Errorf("reschedule_session: concurrent booking %w", domain.ErrResourceConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_session: internal error")
)
