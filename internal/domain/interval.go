package domain

import (
	"fmt"
	"time"
)

// TimeInterval полуоткрытый интервал [Start, End)
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// NewTimeInterval создает интервал, проверяя Start < End
func NewTimeInterval(start, end time.Time) (TimeInterval, error) {
	interval := TimeInterval{Start: start, End: end}
	if !interval.Valid() {
		return TimeInterval{}, fmt.Errorf("%w: start %s must be before end %s",
			ErrInvalidInput, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return interval, nil
}

// Valid true, если обе границы заданы и Start < End
func (i TimeInterval) Valid() bool {
	return !i.Start.IsZero() && !i.End.IsZero() && i.Start.Before(i.End)
}

// Overlaps true, если интервалы имеют пересечение положительной длины
// Интервалы, касающиеся границами, не пересекаются
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return Overlaps(i, other)
}

// Contains true, если other целиком лежит внутри i (границы включительно)
func (i TimeInterval) Contains(other TimeInterval) bool {
	return !other.Start.Before(i.Start) && !other.End.After(i.End)
}

// Duration длительность интервала
func (i TimeInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// String форматирует интервал для логов
func (i TimeInterval) String() string {
	return fmt.Sprintf("[%s, %s)", i.Start.Format(time.RFC3339), i.End.Format(time.RFC3339))
}

// Overlaps a.Start < b.End && a.End > b.Start
func Overlaps(a, b TimeInterval) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

// MinutesOfDay возвращает hour*60+minute момента t, прочитанные в локации loc
func MinutesOfDay(t time.Time, loc *time.Location) int {
	lt := t.In(loc)
	return lt.Hour()*60 + lt.Minute()
}

// SameLocalDate true, если a и b приходятся на одну календарную дату в локации loc
func SameLocalDate(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// DayBounds возвращает интервал календарных суток date в локации loc
func DayBounds(date time.Time, loc *time.Location) TimeInterval {
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return TimeInterval{Start: start, End: start.AddDate(0, 0, 1)}
}
