package domain

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-GymService/pkg/types"
)

// AvailableSlot свободный слот тренера
type AvailableSlot struct {
	TrainerID   int64
	TrainerName string
	StartTime   types.TimeString
	EndTime     types.TimeString
	Interval    TimeInterval
}

// SlotGrid возвращает часовые слоты сетки на дату date в локации loc
// Первый слот 06:00-07:00, последний 20:00-21:00
func SlotGrid(date time.Time, loc *time.Location) []TimeInterval {
	y, m, d := date.Date()
	slots := make([]TimeInterval, 0, SlotLastHour-SlotFirstHour+1)
	for hour := SlotFirstHour; hour <= SlotLastHour; hour++ {
		start := time.Date(y, m, d, hour, 0, 0, 0, loc)
		slots = append(slots, TimeInterval{Start: start, End: start.Add(SlotDuration)})
	}
	return slots
}

// SortSlots сортирует по строке начала, затем по имени тренера
func SortSlots(slots []AvailableSlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].StartTime != slots[j].StartTime {
			return slots[i].StartTime < slots[j].StartTime
		}
		return slots[i].TrainerName < slots[j].TrainerName
	})
}
