package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-GymService/pkg/types"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	Date string // Дата в формате YYYY-MM-DD, читается в локальной зоне зала
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date  time.Time // Полночь запрошенной даты в локальной зоне
	Slots []Slot    // Слоты, отсортированные по времени начала и имени тренера
}

// Slot свободный часовой слот тренера
type Slot struct {
	TrainerID   int64
	TrainerName string
	StartTime   types.TimeString // "HH:MM" в локальной зоне
	EndTime     types.TimeString // "HH:MM" в локальной зоне
	Start       time.Time
	End         time.Time
}
