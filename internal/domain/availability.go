package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-GymService/pkg/types"
)

// AvailabilityType тип записи доступности тренера
type AvailabilityType string

const (
	AvailabilityWeekly  AvailabilityType = "WEEKLY"
	AvailabilityOneTime AvailabilityType = "ONE_TIME"
)

// AvailabilityEntry запись доступности: Weekly или OneTime
// Набор вариантов закрыт неэкспортируемым методом
type AvailabilityEntry interface {
	// Covers true, если запись целиком покрывает кандидата
	// local - локация "настенных часов" зала
	Covers(candidate TimeInterval, local *time.Location) bool
	Type() AvailabilityType
	availabilityEntry()
}

// Availability сохраненная запись доступности тренера
type Availability struct {
	ID        int64
	TrainerID int64
	Entry     AvailabilityEntry
	CreatedAt time.Time
}

// Weekly еженедельная доступность
// StartTime и EndTime - значения времени суток без даты, читаются в UTC,
// тогда как день недели и время кандидата читаются в локальной локации
type Weekly struct {
	DayOfWeek time.Weekday
	StartTime time.Time
	EndTime   time.Time
}

// NewWeekly создает еженедельную запись из "HH:MM"
// Время сохраняется как UTC-значение на WeeklyAnchorDate
func NewWeekly(day time.Weekday, start, end types.TimeString) (Weekly, error) {
	if day < time.Sunday || day > time.Saturday {
		return Weekly{}, fmt.Errorf("%w: day of week %d out of range 0..6", ErrInvalidInput, day)
	}

	startAt, err := start.On(WeeklyAnchorDate, time.UTC)
	if err != nil {
		return Weekly{}, fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}
	endAt, err := end.On(WeeklyAnchorDate, time.UTC)
	if err != nil {
		return Weekly{}, fmt.Errorf("%w: end time: %v", ErrInvalidInput, err)
	}

	w := Weekly{DayOfWeek: day, StartTime: startAt, EndTime: endAt}
	if w.StartMinutes() >= w.EndMinutes() {
		return Weekly{}, fmt.Errorf("%w: weekly start %s must be before end %s", ErrInvalidInput, start, end)
	}
	return w, nil
}

func (Weekly) availabilityEntry() {}

// Type возвращает AvailabilityWeekly
func (Weekly) Type() AvailabilityType { return AvailabilityWeekly }

// StartMinutes минуты от полуночи начала окна (UTC)
func (w Weekly) StartMinutes() int { return MinutesOfDay(w.StartTime, time.UTC) }

// EndMinutes минуты от полуночи конца окна (UTC)
func (w Weekly) EndMinutes() int { return MinutesOfDay(w.EndTime, time.UTC) }

// Covers проверяет день недели и границы кандидата в локальном времени
// против окна записи в UTC; кандидат не должен пересекать границу суток
func (w Weekly) Covers(candidate TimeInterval, local *time.Location) bool {
	if candidate.Start.In(local).Weekday() != w.DayOfWeek {
		return false
	}
	if !SameLocalDate(candidate.Start, candidate.End, local) {
		return false
	}

	startMinutes := MinutesOfDay(candidate.Start, local)
	endMinutes := MinutesOfDay(candidate.End, local)

	return startMinutes >= w.StartMinutes() && startMinutes <= w.EndMinutes() &&
		endMinutes >= w.StartMinutes() && endMinutes <= w.EndMinutes()
}

// Overlaps true для записей одного дня недели с пересекающимися окнами
// Окна обеих записей читаются по часам local, как при добавлении доступности.
// Для local, отличной от UTC, окно, переходящее через полночь, сравнивается без переноса
func (w Weekly) Overlaps(other Weekly, local *time.Location) bool {
	if w.DayOfWeek != other.DayOfWeek {
		return false
	}
	start, end := MinutesOfDay(w.StartTime, local), MinutesOfDay(w.EndTime, local)
	otherStart, otherEnd := MinutesOfDay(other.StartTime, local), MinutesOfDay(other.EndTime, local)
	return start < otherEnd && end > otherStart
}

// OneTime разовая доступность на абсолютный интервал
type OneTime struct {
	Interval TimeInterval
}

func (OneTime) availabilityEntry() {}

// Type возвращает AvailabilityOneTime
func (OneTime) Type() AvailabilityType { return AvailabilityOneTime }

// Covers A.Start <= C.Start && A.End >= C.End
func (o OneTime) Covers(candidate TimeInterval, _ *time.Location) bool {
	return o.Interval.Contains(candidate)
}

// Overlaps true, если абсолютные интервалы пересекаются
func (o OneTime) Overlaps(other OneTime) bool {
	return o.Interval.Overlaps(other.Interval)
}

// IsCovered true, если хотя бы одна запись целиком покрывает кандидата
// Тренер без записей доступности не покрыт никогда
func IsCovered(candidate TimeInterval, entries []AvailabilityEntry, local *time.Location) bool {
	for _, entry := range entries {
		if entry.Covers(candidate, local) {
			return true
		}
	}
	return false
}

// EntriesOf извлекает записи из сохраненных доступностей
func EntriesOf(availabilities []*Availability) []AvailabilityEntry {
	entries := make([]AvailabilityEntry, 0, len(availabilities))
	for _, a := range availabilities {
		if a.Entry != nil {
			entries = append(entries, a.Entry)
		}
	}
	return entries
}
