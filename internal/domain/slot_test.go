package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlotGrid(t *testing.T) {
	plus3 := time.FixedZone("UTC+3", 3*60*60)
	grid := SlotGrid(time.Date(2025, time.March, 10, 0, 0, 0, 0, plus3), plus3)

	assert.Len(t, grid, 15)
	assert.Equal(t, time.Date(2025, time.March, 10, 6, 0, 0, 0, plus3), grid[0].Start)
	assert.Equal(t, time.Date(2025, time.March, 10, 21, 0, 0, 0, plus3), grid[14].End)
	for _, slot := range grid {
		assert.Equal(t, time.Hour, slot.Duration())
	}
}

func TestSortSlots(t *testing.T) {
	slots := []AvailableSlot{
		{TrainerID: 1, TrainerName: "Zoe", StartTime: "09:00"},
		{TrainerID: 2, TrainerName: "Adam", StartTime: "10:00"},
		{TrainerID: 3, TrainerName: "Bob", StartTime: "09:00"},
		{TrainerID: 2, TrainerName: "Adam", StartTime: "09:00"},
	}

	SortSlots(slots)

	got := make([]int64, 0, len(slots))
	for _, s := range slots {
		got = append(got, s.TrainerID)
	}
	assert.Equal(t, []int64{2, 3, 1, 2}, got)
	assert.Equal(t, "10:00", slots[3].StartTime.String())
}
