package add_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

// buildEntry валидирует запрос и строит запись доступности нужного типа
func buildEntry(req *Request) (domain.AvailabilityEntry, error) {
	if req.TrainerID <= 0 {
		return nil, fmt.Errorf("%w: trainerID must be positive", ErrInvalidInput)
	}

	switch req.Type {
	case domain.AvailabilityWeekly:
		if req.DayOfWeek == nil {
			return nil, fmt.Errorf("%w: dayOfWeek is required for %s", ErrInvalidInput, req.Type)
		}
		if *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
			return nil, fmt.Errorf("%w: dayOfWeek %d out of range 0..6", ErrInvalidInput, *req.DayOfWeek)
		}
		weekly, err := domain.NewWeekly(time.Weekday(*req.DayOfWeek), req.StartTime, req.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return weekly, nil

	case domain.AvailabilityOneTime:
		if req.Start == nil || req.End == nil {
			return nil, fmt.Errorf("%w: start and end are required for %s", ErrInvalidInput, req.Type)
		}
		interval, err := domain.NewTimeInterval(*req.Start, *req.End)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return domain.OneTime{Interval: interval}, nil
	}

	return nil, fmt.Errorf("%w: unknown availability type %q", ErrInvalidInput, req.Type)
}

// overlapsExisting true, если запись пересекается с записью того же типа
// Записи разных типов друг с другом не сравниваются
func overlapsExisting(entry domain.AvailabilityEntry, existing []*domain.Availability, local *time.Location) (*domain.Availability, bool) {
	for _, a := range existing {
		switch e := entry.(type) {
		case domain.Weekly:
			if other, ok := a.Entry.(domain.Weekly); ok && e.Overlaps(other, local) {
				return a, true
			}
		case domain.OneTime:
			if other, ok := a.Entry.(domain.OneTime); ok && e.Overlaps(other) {
				return a, true
			}
		}
	}
	return nil, false
}
