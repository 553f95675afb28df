package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/pkg/types"
)

// trainerSlots возвращает слоты сетки, покрытые доступностью тренера и свободные от его бронирований
// Конфликты зала и членов клуба здесь не проверяются
func trainerSlots(
	trainer *domain.Trainer,
	grid []domain.TimeInterval,
	entries []domain.AvailabilityEntry,
	bookings []domain.Booking,
	local *time.Location,
) []domain.AvailableSlot {
	slots := make([]domain.AvailableSlot, 0)

	for _, slot := range grid {
		if !domain.IsCovered(slot, entries, local) {
			continue
		}

		if _, busy := domain.FirstConflict(slot, bookings, domain.Ignore{}); busy {
			continue
		}

		slots = append(slots, domain.AvailableSlot{
			TrainerID:   trainer.ID,
			TrainerName: trainer.Name,
			StartTime:   types.NewTimeString(slot.Start.In(local)),
			EndTime:     types.NewTimeString(slot.End.In(local)),
			Interval:    slot,
		})
	}

	return slots
}

func toSlots(available []domain.AvailableSlot) []Slot {
	result := make([]Slot, len(available))
	for i, s := range available {
		result[i] = Slot{
			TrainerID:   s.TrainerID,
			TrainerName: s.TrainerName,
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
			Start:       s.Interval.Start,
			End:         s.Interval.End,
		}
	}
	return result
}
