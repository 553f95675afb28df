package book_session

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных (в том числе интервале)
	ErrInvalidInput = fmt.Errorf("book_session: %w", domain.ErrInvalidInput)

	// ErrMemberNotFound возвращается, когда член клуба не найден
	ErrMemberNotFound = fmt.Errorf("book_session: member %w", domain.ErrNotFound)

	// ErrTrainerNotFound возвращается, когда тренер не найден
	ErrTrainerNotFound = fmt.Errorf("book_session: trainer %w", domain.ErrNotFound)

	// ErrRoomNotFound возвращается, когда зал не найден
	ErrRoomNotFound = fmt.Errorf("book_session: room %w", domain.ErrNotFound)

	// ErrTrainerNotAvailable возвращается, когда интервал не покрыт доступностью тренера
	ErrTrainerNotAvailable = fmt.Errorf("book_session: trainer %w", domain.ErrNotAvailable)

	// ErrTrainerConflict возвращается, когда у тренера уже есть тренировка или занятие в этом интервале
	ErrTrainerConflict = fmt.Errorf("book_session: trainer %w", domain.ErrResourceConflict)

	// ErrMemberConflict возвращается, когда член клуба уже занят в этом интервале
	ErrMemberConflict = fmt.Errorf("book_session: member %w", domain.ErrResourceConflict)

	// ErrRoomConflict возвращается, когда зал уже занят в этом интервале
	ErrRoomConflict = fmt.Errorf("book_session: room %w", domain.ErrResourceConflict)

	// ErrConcurrentBooking возвращается, когда параллельный запрос занял ресурс раньше
	ErrConcurrentBooking = fmt.Errorf("book_session: concurrent booking %w", domain.ErrResourceConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_session: internal error")
)
