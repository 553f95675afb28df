package add_availability

import (
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
	addAvailability "github.com/m04kA/SMC-GymService/internal/usecase/add_availability"
	"github.com/m04kA/SMC-GymService/pkg/types"
)

// AddAvailabilityRequest HTTP request model
// WEEKLY: dayOfWeek, startTime, endTime ("HH:MM"); ONE_TIME: start, end
type AddAvailabilityRequest struct {
	Type      string     `json:"type" validate:"required,oneof=WEEKLY ONE_TIME"`
	DayOfWeek *int       `json:"dayOfWeek,omitempty" validate:"omitempty,gte=0,lte=6"`
	StartTime string     `json:"startTime,omitempty" validate:"omitempty,hhmm"`
	EndTime   string     `json:"endTime,omitempty" validate:"omitempty,hhmm"`
	Start     *time.Time `json:"start,omitempty"`
	End       *time.Time `json:"end,omitempty"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ID        int64   `json:"id"`
	TrainerID int64   `json:"trainerId"`
	Type      string  `json:"type"`
	DayOfWeek *int    `json:"dayOfWeek,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Start     *string `json:"start,omitempty"`
	End       *string `json:"end,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AddAvailabilityRequest) ToUseCaseRequest(trainerID int64) *addAvailability.Request {
	return &addAvailability.Request{
		TrainerID: trainerID,
		Type:      domain.AvailabilityType(r.Type),
		DayOfWeek: r.DayOfWeek,
		StartTime: types.TimeString(r.StartTime),
		EndTime:   types.TimeString(r.EndTime),
		Start:     r.Start,
		End:       r.End,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *addAvailability.Response) *AvailabilityResponse {
	result := &AvailabilityResponse{
		ID:        resp.ID,
		TrainerID: resp.TrainerID,
		Type:      string(resp.Type),
		DayOfWeek: resp.DayOfWeek,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
	if resp.StartTime != nil {
		s := resp.StartTime.String()
		result.StartTime = &s
	}
	if resp.EndTime != nil {
		s := resp.EndTime.String()
		result.EndTime = &s
	}
	if resp.Start != nil {
		s := resp.Start.Format(time.RFC3339)
		result.Start = &s
	}
	if resp.End != nil {
		s := resp.End.Format(time.RFC3339)
		result.End = &s
	}
	return result
}
