package create_class

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

// validateRequest валидирует входные данные запроса и возвращает интервал занятия
func validateRequest(req *Request) (domain.TimeInterval, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.TimeInterval{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(name) > domain.MaxClassNameLen {
		return domain.TimeInterval{}, fmt.Errorf("%w: name is longer than %d characters", ErrInvalidInput, domain.MaxClassNameLen)
	}

	if req.TrainerID <= 0 {
		return domain.TimeInterval{}, fmt.Errorf("%w: trainerID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return domain.TimeInterval{}, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.Capacity < domain.MinClassCapacity {
		return domain.TimeInterval{}, fmt.Errorf("%w: capacity must be at least %d", ErrInvalidInput, domain.MinClassCapacity)
	}

	interval, err := domain.NewTimeInterval(req.Start, req.End)
	if err != nil {
		return domain.TimeInterval{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return interval, nil
}
