package cancel_session

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("cancel_session: %w", domain.ErrInvalidInput)

	// ErrSessionNotFound возвращается, когда тренировка не найдена
	ErrSessionNotFound = fmt.Errorf("cancel_session: session %w", domain.ErrNotFound)

	// ErrNotOwner возвращается, когда тренировка принадлежит другому члену клуба
	ErrNotOwner = fmt.Errorf("cancel_session: session %w", domain.ErrOwnership)

	// ErrAlreadyStarted возвращается при попытке отменить начавшуюся тренировку
	ErrAlreadyStarted = fmt.Errorf("cancel_session: session %w", domain.ErrAlreadyStarted)

	// ErrConcurrentUpdate возвращается, когда параллельный запрос изменил тренировку раньше
	ErrConcurrentUpdate = fmt.Errorf("cancel_session: concurrent update %w", domain.ErrResourceConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_session: internal error")
)
