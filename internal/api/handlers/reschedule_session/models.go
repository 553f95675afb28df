package reschedule_session

import (
	"time"

	rescheduleSession "github.com/m04kA/SMC-GymService/internal/usecase/reschedule_session"
)

// RescheduleSessionRequest HTTP request model
// trainerId и roomId опциональны, по умолчанию остаются текущие
type RescheduleSessionRequest struct {
	Start     time.Time `json:"start" validate:"required"`
	End       time.Time `json:"end" validate:"required"`
	TrainerID *int64    `json:"trainerId,omitempty" validate:"omitempty,gt=0"`
	RoomID    *int64    `json:"roomId,omitempty" validate:"omitempty,gt=0"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	ID        int64  `json:"id"`
	MemberID  int64  `json:"memberId"`
	TrainerID int64  `json:"trainerId"`
	RoomID    *int64 `json:"roomId,omitempty"`
	Start     string `json:"start"`
	End       string `json:"end"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleSessionRequest) ToUseCaseRequest(sessionID int64, requesterID *int64) *rescheduleSession.Request {
	return &rescheduleSession.Request{
		SessionID:    sessionID,
		RequesterID:  requesterID,
		Start:        r.Start,
		End:          r.End,
		NewTrainerID: r.TrainerID,
		NewRoomID:    r.RoomID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleSession.Response) *SessionResponse {
	return &SessionResponse{
		ID:        resp.ID,
		MemberID:  resp.MemberID,
		TrainerID: resp.TrainerID,
		RoomID:    resp.RoomID,
		Start:     resp.Start.Format(time.RFC3339),
		End:       resp.End.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
