package models

import (
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/pkg/ptr"
	"github.com/m04kA/SMC-GymService/pkg/types"
)

// Response модели

// AvailabilityResponse запись доступности тренера
// Для WEEKLY заполнены dayOfWeek, startTime и endTime, для ONE_TIME - start и end
type AvailabilityResponse struct {
	ID        int64             `json:"id"`
	TrainerID int64             `json:"trainerId"`
	Type      string            `json:"type"`
	DayOfWeek *int              `json:"dayOfWeek,omitempty"`
	StartTime *types.TimeString `json:"startTime,omitempty"`
	EndTime   *types.TimeString `json:"endTime,omitempty"`
	Start     *time.Time        `json:"start,omitempty"`
	End       *time.Time        `json:"end,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

// AvailabilityListResponse список записей доступности тренера
type AvailabilityListResponse struct {
	TrainerID int64                  `json:"trainerId"`
	Entries   []AvailabilityResponse `json:"entries"`
}

// Методы конвертации

// FromDomainAvailability конвертирует запись доступности в ответ
func FromDomainAvailability(a *domain.Availability) AvailabilityResponse {
	resp := AvailabilityResponse{
		ID:        a.ID,
		TrainerID: a.TrainerID,
		Type:      string(a.Entry.Type()),
		CreatedAt: a.CreatedAt,
	}

	switch e := a.Entry.(type) {
	case domain.Weekly:
		resp.DayOfWeek = ptr.Ptr(int(e.DayOfWeek))
		resp.StartTime = ptr.Ptr(types.NewTimeString(e.StartTime.In(time.UTC)))
		resp.EndTime = ptr.Ptr(types.NewTimeString(e.EndTime.In(time.UTC)))
	case domain.OneTime:
		resp.Start = ptr.Ptr(e.Interval.Start)
		resp.End = ptr.Ptr(e.Interval.End)
	}

	return resp
}

// FromDomainAvailabilityList конвертирует список записей доступности
func FromDomainAvailabilityList(trainerID int64, list []*domain.Availability) *AvailabilityListResponse {
	entries := make([]AvailabilityResponse, 0, len(list))
	for _, a := range list {
		entries = append(entries, FromDomainAvailability(a))
	}
	return &AvailabilityListResponse{TrainerID: trainerID, Entries: entries}
}
