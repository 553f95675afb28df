package reschedule_class

import (
	"fmt"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

// validateRequest валидирует входные данные, не зависящие от текущего занятия
func validateRequest(req *Request) error {
	if req.ClassID <= 0 {
		return fmt.Errorf("%w: classID must be positive", ErrInvalidInput)
	}

	if req.NewTrainerID != nil && *req.NewTrainerID <= 0 {
		return fmt.Errorf("%w: trainerID must be positive", ErrInvalidInput)
	}

	if req.NewRoomID != nil && *req.NewRoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.NewCapacity != nil && *req.NewCapacity < domain.MinClassCapacity {
		return fmt.Errorf("%w: capacity must be at least %d", ErrInvalidInput, domain.MinClassCapacity)
	}

	return nil
}

// applyChanges возвращает занятие после изменений запроса и проверяет его интервал
func applyChanges(req *Request, current *domain.FitnessClass) (*domain.FitnessClass, error) {
	updated := *current

	start, end := current.Interval.Start, current.Interval.End
	if req.Start != nil {
		start = *req.Start
	}
	if req.End != nil {
		end = *req.End
	}

	interval, err := domain.NewTimeInterval(start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	updated.Interval = interval

	if req.NewTrainerID != nil {
		updated.TrainerID = *req.NewTrainerID
	}
	if req.NewRoomID != nil {
		updated.RoomID = *req.NewRoomID
	}
	if req.NewCapacity != nil {
		updated.Capacity = *req.NewCapacity
	}

	return &updated, nil
}
