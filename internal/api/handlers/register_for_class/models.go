package register_for_class

import (
	"time"

	registerForClass "github.com/m04kA/SMC-GymService/internal/usecase/register_for_class"
)

// RegistrationResponse HTTP response model
type RegistrationResponse struct {
	ID             int64  `json:"id"`
	MemberID       int64  `json:"memberId"`
	ClassID        int64  `json:"classId"`
	ClassStart     string `json:"classStart"`
	RemainingSpots int    `json:"remainingSpots"`
	CreatedAt      string `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *registerForClass.Response) *RegistrationResponse {
	return &RegistrationResponse{
		ID:             resp.ID,
		MemberID:       resp.MemberID,
		ClassID:        resp.ClassID,
		ClassStart:     resp.ClassStart.Format(time.RFC3339),
		RemainingSpots: resp.RemainingSpots,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
