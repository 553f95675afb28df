package reschedule_session

import (
	"fmt"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

// validateRequest валидирует входные данные запроса и возвращает новый интервал
func validateRequest(req *Request) (domain.TimeInterval, error) {
	if req.SessionID <= 0 {
		return domain.TimeInterval{}, fmt.Errorf("%w: sessionID must be positive", ErrInvalidInput)
	}

	if req.NewTrainerID != nil && *req.NewTrainerID <= 0 {
		return domain.TimeInterval{}, fmt.Errorf("%w: trainerID must be positive", ErrInvalidInput)
	}

	if req.NewRoomID != nil && *req.NewRoomID <= 0 {
		return domain.TimeInterval{}, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	interval, err := domain.NewTimeInterval(req.Start, req.End)
	if err != nil {
		return domain.TimeInterval{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return interval, nil
}

// resolveAssignment возвращает тренера и зал после переноса
// Неуказанные значения берутся из текущей тренировки
func resolveAssignment(req *Request, current *domain.Session) (int64, *int64) {
	trainerID := current.TrainerID
	if req.NewTrainerID != nil {
		trainerID = *req.NewTrainerID
	}

	roomID := current.RoomID
	if req.NewRoomID != nil {
		roomID = req.NewRoomID
	}

	return trainerID, roomID
}
