package book_session

import (
	"fmt"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

// validateRequest валидирует входные данные запроса и возвращает интервал тренировки
func validateRequest(req *Request) (domain.TimeInterval, error) {
	if req.MemberID <= 0 {
		return domain.TimeInterval{}, fmt.Errorf("%w: memberID must be positive", ErrInvalidInput)
	}

	if req.TrainerID <= 0 {
		return domain.TimeInterval{}, fmt.Errorf("%w: trainerID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return domain.TimeInterval{}, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	interval, err := domain.NewTimeInterval(req.Start, req.End)
	if err != nil {
		return domain.TimeInterval{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return interval, nil
}

// lockKeys ключи блокировки всех ресурсов тренировки
func lockKeys(req *Request) []string {
	return []string{
		domain.TrainerRef(req.TrainerID).String(),
		domain.MemberRef(req.MemberID).String(),
		domain.RoomRef(req.RoomID).String(),
	}
}
