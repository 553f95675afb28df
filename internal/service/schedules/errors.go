package schedules

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

var (
	// ErrTrainerNotFound возвращается, когда тренер не найден
	ErrTrainerNotFound = fmt.Errorf("schedules: trainer %w", domain.ErrNotFound)

	// ErrMemberNotFound возвращается, когда член клуба не найден
	ErrMemberNotFound = fmt.Errorf("schedules: member %w", domain.ErrNotFound)

	// ErrClassNotFound возвращается, когда занятие не найдено
	ErrClassNotFound = fmt.Errorf("schedules: class %w", domain.ErrNotFound)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedules: internal error")
)
