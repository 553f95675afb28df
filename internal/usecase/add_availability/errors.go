package add_availability

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных (тип, день недели, время)
	ErrInvalidInput = fmt.Errorf("add_availability: %w", domain.ErrInvalidInput)

	// ErrTrainerNotFound возвращается, когда тренер не найден
	ErrTrainerNotFound = fmt.Errorf("add_availability: trainer %w", domain.ErrNotFound)

	// ErrOverlap возвращается, когда запись пересекается с существующей записью того же типа
	ErrOverlap = fmt.Errorf("add_availability: availability %w", domain.ErrResourceConflict)

	// ErrConcurrentUpdate возвращается, когда параллельный запрос изменил доступность тренера раньше
	ErrConcurrentUpdate = fmt.Errorf("add_availability: concurrent update %w", domain.ErrResourceConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("add_availability: internal error")
)
