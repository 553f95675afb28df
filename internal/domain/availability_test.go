package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymService/pkg/types"
)

func mustWeekly(t *testing.T, day time.Weekday, start, end types.TimeString) Weekly {
	t.Helper()
	w, err := NewWeekly(day, start, end)
	require.NoError(t, err)
	return w
}

func localInterval(loc *time.Location, day, startH, startM, endH, endM int) TimeInterval {
	return TimeInterval{
		Start: time.Date(2025, time.March, day, startH, startM, 0, 0, loc),
		End:   time.Date(2025, time.March, day, endH, endM, 0, 0, loc),
	}
}

func TestWeekly_Covers(t *testing.T) {
	plus3 := time.FixedZone("UTC+3", 3*60*60)
	monday := mustWeekly(t, time.Monday, "09:00", "12:00")

	tests := []struct {
		name      string
		candidate TimeInterval
		want      bool
	}{
		// 2025-03-10 - понедельник
		{name: "inside window", candidate: localInterval(plus3, 10, 10, 0, 11, 0), want: true},
		{name: "exactly window", candidate: localInterval(plus3, 10, 9, 0, 12, 0), want: true},
		{name: "end exceeds window", candidate: localInterval(plus3, 10, 11, 30, 12, 30), want: false},
		{name: "starts before window", candidate: localInterval(plus3, 10, 8, 30, 9, 30), want: false},
		{name: "other weekday", candidate: localInterval(plus3, 11, 10, 0, 11, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, monday.Covers(tt.candidate, plus3))
		})
	}
}

func TestWeekly_DualClockReference(t *testing.T) {
	plus3 := time.FixedZone("UTC+3", 3*60*60)
	monday := mustWeekly(t, time.Monday, "09:00", "12:00")

	// 10:00-11:00 по местному времени = 07:00-08:00 UTC.
	// Окно записи читается в UTC, кандидат - в местном времени, поэтому слот покрыт.
	candidate := localInterval(plus3, 10, 10, 0, 11, 0)
	assert.True(t, monday.Covers(candidate, plus3))

	// Тот же момент, прочитанный в UTC, в окно не попадает
	assert.False(t, monday.Covers(candidate, time.UTC))
}

func TestWeekly_CrossingMidnightNotCovered(t *testing.T) {
	allDay := mustWeekly(t, time.Monday, "00:00", "23:59")

	candidate := TimeInterval{
		Start: time.Date(2025, time.March, 10, 23, 30, 0, 0, time.UTC),
		End:   time.Date(2025, time.March, 11, 0, 30, 0, 0, time.UTC),
	}
	assert.False(t, allDay.Covers(candidate, time.UTC))
}

func TestNewWeekly_Invalid(t *testing.T) {
	_, err := NewWeekly(time.Monday, "12:00", "09:00")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewWeekly(time.Weekday(7), "09:00", "12:00")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewWeekly(time.Monday, "9", "12:00")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestOneTime_Covers(t *testing.T) {
	entry := OneTime{Interval: TimeInterval{Start: at(9, 0), End: at(12, 0)}}

	assert.True(t, entry.Covers(TimeInterval{Start: at(9, 0), End: at(12, 0)}, time.UTC))
	assert.True(t, entry.Covers(TimeInterval{Start: at(10, 0), End: at(11, 0)}, time.UTC))
	assert.False(t, entry.Covers(TimeInterval{Start: at(8, 59), End: at(10, 0)}, time.UTC))
	assert.False(t, entry.Covers(TimeInterval{Start: at(11, 0), End: at(12, 1)}, time.UTC))
}

func TestIsCovered(t *testing.T) {
	candidate := TimeInterval{Start: at(10, 0), End: at(11, 0)}

	assert.False(t, IsCovered(candidate, nil, time.UTC))

	// Частичное пересечение двух записей не дает покрытия
	partial := []AvailabilityEntry{
		OneTime{Interval: TimeInterval{Start: at(9, 0), End: at(10, 30)}},
		OneTime{Interval: TimeInterval{Start: at(10, 30), End: at(12, 0)}},
	}
	assert.False(t, IsCovered(candidate, partial, time.UTC))

	mixed := append(partial, mustWeekly(t, time.Monday, "10:00", "11:00"))
	assert.True(t, IsCovered(candidate, mixed, time.UTC))
}

func TestWeekly_Overlaps(t *testing.T) {
	a := mustWeekly(t, time.Monday, "09:00", "12:00")

	assert.True(t, a.Overlaps(mustWeekly(t, time.Monday, "11:00", "13:00"), time.UTC))
	assert.False(t, a.Overlaps(mustWeekly(t, time.Monday, "12:00", "13:00"), time.UTC))
	assert.False(t, a.Overlaps(mustWeekly(t, time.Tuesday, "09:00", "12:00"), time.UTC))
}

func TestWeekly_OverlapsReadsLocalClock(t *testing.T) {
	moscow := time.FixedZone("UTC+3", 3*60*60)
	// По местным часам 23:00-01:00 и 00:30-02:00
	evening := mustWeekly(t, time.Friday, "20:00", "22:00")
	night := mustWeekly(t, time.Friday, "21:30", "23:00")

	assert.True(t, evening.Overlaps(night, time.UTC))
	assert.False(t, evening.Overlaps(night, moscow))

	// Без перехода через полночь сдвиг пояса результат не меняет
	morning := mustWeekly(t, time.Friday, "06:00", "09:00")
	late := mustWeekly(t, time.Friday, "08:00", "10:00")
	assert.True(t, morning.Overlaps(late, moscow))
	assert.False(t, morning.Overlaps(mustWeekly(t, time.Friday, "09:00", "10:00"), moscow))
}
