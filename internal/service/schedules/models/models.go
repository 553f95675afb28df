package models

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

// Response модели

// ScheduleEntry тренировка или занятие в расписании
type ScheduleEntry struct {
	Kind      string    `json:"kind"` // "session" или "class"
	ID        int64     `json:"id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	TrainerID int64     `json:"trainerId"`
	RoomID    *int64    `json:"roomId,omitempty"`
	MemberID  *int64    `json:"memberId,omitempty"`  // только для тренировок
	ClassName *string   `json:"className,omitempty"` // только для занятий
}

// ScheduleResponse расписание, отсортированное по началу
type ScheduleResponse struct {
	Entries []ScheduleEntry `json:"entries"`
}

// ClassResponse занятие с текущей заполненностью
type ClassResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	TrainerID      int64     `json:"trainerId"`
	RoomID         int64     `json:"roomId"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	Capacity       int       `json:"capacity"`
	Registrations  int       `json:"registrations"`
	RemainingSpots int       `json:"remainingSpots"`
}

// ClassOverviewResponse предстоящее занятие для выбора перед записью
type ClassOverviewResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	TrainerID      int64     `json:"trainerId"`
	TrainerName    string    `json:"trainerName"`
	RoomID         int64     `json:"roomId"`
	RoomName       string    `json:"roomName"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	Capacity       int       `json:"capacity"`
	Registrations  int       `json:"registrations"`
	RemainingSpots int       `json:"remainingSpots"`
	IsRegistered   bool      `json:"isRegistered"`
}

// ClassListResponse список предстоящих занятий
type ClassListResponse struct {
	Classes []ClassOverviewResponse `json:"classes"`
}

// Методы конвертации

// FromDomainSession конвертирует тренировку в элемент расписания
func FromDomainSession(s *domain.Session) ScheduleEntry {
	memberID := s.MemberID
	return ScheduleEntry{
		Kind:      string(domain.BookingSession),
		ID:        s.ID,
		Start:     s.Interval.Start,
		End:       s.Interval.End,
		TrainerID: s.TrainerID,
		RoomID:    s.RoomID,
		MemberID:  &memberID,
	}
}

// FromDomainClass конвертирует занятие в элемент расписания
func FromDomainClass(c *domain.FitnessClass) ScheduleEntry {
	roomID, name := c.RoomID, c.Name
	return ScheduleEntry{
		Kind:      string(domain.BookingClass),
		ID:        c.ID,
		Start:     c.Interval.Start,
		End:       c.Interval.End,
		TrainerID: c.TrainerID,
		RoomID:    &roomID,
		ClassName: &name,
	}
}

// NewSchedule собирает расписание из тренировок и занятий
// При равном начале тренировки идут раньше занятий
func NewSchedule(sessions []*domain.Session, classes []*domain.FitnessClass) *ScheduleResponse {
	entries := make([]ScheduleEntry, 0, len(sessions)+len(classes))
	for _, s := range sessions {
		entries = append(entries, FromDomainSession(s))
	}
	for _, c := range classes {
		entries = append(entries, FromDomainClass(c))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Start.Before(entries[j].Start)
	})

	return &ScheduleResponse{Entries: entries}
}

// FromDomainClassWithCount конвертирует занятие с числом записей
func FromDomainClassWithCount(c *domain.FitnessClass, registrations int) *ClassResponse {
	return &ClassResponse{
		ID:             c.ID,
		Name:           c.Name,
		TrainerID:      c.TrainerID,
		RoomID:         c.RoomID,
		Start:          c.Interval.Start,
		End:            c.Interval.End,
		Capacity:       c.Capacity,
		Registrations:  registrations,
		RemainingSpots: c.RemainingSpots(registrations),
	}
}

// FromDomainClassOverviews конвертирует список занятий с заполненностью
func FromDomainClassOverviews(overviews []*domain.ClassOverview) *ClassListResponse {
	classes := make([]ClassOverviewResponse, 0, len(overviews))
	for _, o := range overviews {
		classes = append(classes, ClassOverviewResponse{
			ID:             o.Class.ID,
			Name:           o.Class.Name,
			TrainerID:      o.Class.TrainerID,
			TrainerName:    o.TrainerName,
			RoomID:         o.Class.RoomID,
			RoomName:       o.RoomName,
			Start:          o.Class.Interval.Start,
			End:            o.Class.Interval.End,
			Capacity:       o.Class.Capacity,
			Registrations:  o.Registrations,
			RemainingSpots: o.Class.RemainingSpots(o.Registrations),
			IsRegistered:   o.IsRegistered,
		})
	}

	return &ClassListResponse{Classes: classes}
}
