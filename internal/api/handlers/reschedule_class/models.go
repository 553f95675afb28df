package reschedule_class

import (
	"time"

	rescheduleClass "github.com/m04kA/SMC-GymService/internal/usecase/reschedule_class"
)

// RescheduleClassRequest HTTP request model
// Все поля опциональны - меняются только переданные значения
type RescheduleClassRequest struct {
	Start     *time.Time `json:"start,omitempty"`
	End       *time.Time `json:"end,omitempty"`
	TrainerID *int64     `json:"trainerId,omitempty" validate:"omitempty,gt=0"`
	RoomID    *int64     `json:"roomId,omitempty" validate:"omitempty,gt=0"`
	Capacity  *int       `json:"capacity,omitempty" validate:"omitempty,gte=1"`
}

// ClassResponse HTTP response model
type ClassResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	TrainerID     int64  `json:"trainerId"`
	RoomID        int64  `json:"roomId"`
	Start         string `json:"start"`
	End           string `json:"end"`
	Capacity      int    `json:"capacity"`
	Registrations int    `json:"registrations"`
	UpdatedAt     string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleClassRequest) ToUseCaseRequest(classID int64) *rescheduleClass.Request {
	return &rescheduleClass.Request{
		ClassID:      classID,
		Start:        r.Start,
		End:          r.End,
		NewTrainerID: r.TrainerID,
		NewRoomID:    r.RoomID,
		NewCapacity:  r.Capacity,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleClass.Response) *ClassResponse {
	return &ClassResponse{
		ID:            resp.ID,
		Name:          resp.Name,
		TrainerID:     resp.TrainerID,
		RoomID:        resp.RoomID,
		Start:         resp.Start.Format(time.RFC3339),
		End:           resp.End.Format(time.RFC3339),
		Capacity:      resp.Capacity,
		Registrations: resp.Registrations,
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
