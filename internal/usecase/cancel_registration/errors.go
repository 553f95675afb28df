package cancel_registration

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("cancel_registration: %w", domain.ErrInvalidInput)

	// ErrRegistrationNotFound возвращается, когда запись не найдена
	ErrRegistrationNotFound = fmt.Errorf("cancel_registration: registration %w", domain.ErrNotFound)

	// ErrNotOwner возвращается, когда запись принадлежит другому члену клуба
	ErrNotOwner = fmt.Errorf("cancel_registration: registration %w", domain.ErrOwnership)

	// ErrAlreadyStarted возвращается, когда занятие уже началось
	ErrAlreadyStarted = fmt.Errorf("cancel_registration: class %w", domain.ErrAlreadyStarted)

	// ErrConcurrentUpdate возвращается, когда параллельный запрос изменил запись раньше
	ErrConcurrentUpdate = fmt.Errorf("cancel_registration: concurrent update %w", domain.ErrResourceConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_registration: internal error")
)
