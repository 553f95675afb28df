package create_class

import (
	"time"

	createClass "github.com/m04kA/SMC-GymService/internal/usecase/create_class"
)

// CreateClassRequest HTTP request model
type CreateClassRequest struct {
	Name      string    `json:"name" validate:"required,max=200"`
	TrainerID int64     `json:"trainerId" validate:"required,gt=0"`
	RoomID    int64     `json:"roomId" validate:"required,gt=0"`
	Start     time.Time `json:"start" validate:"required"`
	End       time.Time `json:"end" validate:"required"`
	Capacity  int       `json:"capacity" validate:"required,gte=1"`
}

// ClassResponse HTTP response model
type ClassResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	TrainerID int64  `json:"trainerId"`
	RoomID    int64  `json:"roomId"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Capacity  int    `json:"capacity"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateClassRequest) ToUseCaseRequest() *createClass.Request {
	return &createClass.Request{
		Name:      r.Name,
		TrainerID: r.TrainerID,
		RoomID:    r.RoomID,
		Start:     r.Start,
		End:       r.End,
		Capacity:  r.Capacity,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createClass.Response) *ClassResponse {
	return &ClassResponse{
		ID:        resp.ID,
		Name:      resp.Name,
		TrainerID: resp.TrainerID,
		RoomID:    resp.RoomID,
		Start:     resp.Start.Format(time.RFC3339),
		End:       resp.End.Format(time.RFC3339),
		Capacity:  resp.Capacity,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
