package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-GymService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date  string          `json:"date"`
	Slots []AvailableSlot `json:"slots"`
}

// AvailableSlot свободный часовой слот тренера
type AvailableSlot struct {
	TrainerID   int64  `json:"trainerId"`
	TrainerName string `json:"trainerName"`
	StartTime   string `json:"startTime"` // "HH:MM" по часам зала
	EndTime     string `json:"endTime"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			TrainerID:   slot.TrainerID,
			TrainerName: slot.TrainerName,
			StartTime:   slot.StartTime.String(),
			EndTime:     slot.EndTime.String(),
			Start:       slot.Start.Format(time.RFC3339),
			End:         slot.End.Format(time.RFC3339),
		}
	}

	return &AvailableSlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
