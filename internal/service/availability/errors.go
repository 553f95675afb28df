package availability

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

var (
	// ErrTrainerNotFound возвращается, когда тренер не найден
	ErrTrainerNotFound = fmt.Errorf("availability: trainer %w", domain.ErrNotFound)

	// ErrAvailabilityNotFound возвращается, когда запись не найдена или принадлежит другому тренеру
	ErrAvailabilityNotFound = fmt.Errorf("availability: entry %w", domain.ErrNotFound)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
