package book_session

import (
	"time"

	bookSession "github.com/m04kA/SMC-GymService/internal/usecase/book_session"
)

// BookSessionRequest HTTP request model
// Член клуба берется из заголовка X-Member-ID
type BookSessionRequest struct {
	TrainerID int64     `json:"trainerId" validate:"required,gt=0"`
	RoomID    int64     `json:"roomId" validate:"required,gt=0"`
	Start     time.Time `json:"start" validate:"required"`
	End       time.Time `json:"end" validate:"required"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	ID        int64  `json:"id"`
	MemberID  int64  `json:"memberId"`
	TrainerID int64  `json:"trainerId"`
	RoomID    int64  `json:"roomId"`
	Start     string `json:"start"`
	End       string `json:"end"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookSessionRequest) ToUseCaseRequest(memberID int64) *bookSession.Request {
	return &bookSession.Request{
		MemberID:  memberID,
		TrainerID: r.TrainerID,
		RoomID:    r.RoomID,
		Start:     r.Start,
		End:       r.End,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSession.Response) *SessionResponse {
	return &SessionResponse{
		ID:        resp.ID,
		MemberID:  resp.MemberID,
		TrainerID: resp.TrainerID,
		RoomID:    resp.RoomID,
		Start:     resp.Start.Format(time.RFC3339),
		End:       resp.End.Format(time.RFC3339),
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
