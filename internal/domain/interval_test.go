package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, time.March, 10, hour, minute, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	base := TimeInterval{Start: at(10, 0), End: at(11, 0)}

	tests := []struct {
		name  string
		other TimeInterval
		want  bool
	}{
		{name: "identical", other: base, want: true},
		{name: "partial start", other: TimeInterval{Start: at(9, 30), End: at(10, 30)}, want: true},
		{name: "inside", other: TimeInterval{Start: at(10, 15), End: at(10, 45)}, want: true},
		{name: "touching end", other: TimeInterval{Start: at(11, 0), End: at(12, 0)}, want: false},
		{name: "touching start", other: TimeInterval{Start: at(9, 0), End: at(10, 0)}, want: false},
		{name: "disjoint", other: TimeInterval{Start: at(14, 0), End: at(15, 0)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(base, tt.other))
			assert.Equal(t, tt.want, Overlaps(tt.other, base))
		})
	}
}

func TestNewTimeInterval(t *testing.T) {
	_, err := NewTimeInterval(at(10, 0), at(10, 0))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewTimeInterval(at(11, 0), at(10, 0))
	assert.ErrorIs(t, err, ErrInvalidInput)

	interval, err := NewTimeInterval(at(10, 0), at(11, 0))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, interval.Duration())
}

func TestMinutesOfDay(t *testing.T) {
	plus3 := time.FixedZone("UTC+3", 3*60*60)
	instant := at(7, 15)

	assert.Equal(t, 7*60+15, MinutesOfDay(instant, time.UTC))
	assert.Equal(t, 10*60+15, MinutesOfDay(instant, plus3))
}

func TestSameLocalDate(t *testing.T) {
	plus3 := time.FixedZone("UTC+3", 3*60*60)

	// 20:00 и 22:00 UTC - одна дата в UTC, но разные в UTC+3
	assert.True(t, SameLocalDate(at(20, 0), at(22, 0), time.UTC))
	assert.False(t, SameLocalDate(at(20, 0), at(22, 0), plus3))
}

func TestDayBounds(t *testing.T) {
	bounds := DayBounds(at(15, 0), time.UTC)
	assert.Equal(t, at(0, 0), bounds.Start)
	assert.Equal(t, 24*time.Hour, bounds.Duration())
}
