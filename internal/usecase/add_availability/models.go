package add_availability

import (
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/pkg/types"
)

// Request модель запроса на добавление доступности тренера
// Для WEEKLY заполняются DayOfWeek, StartTime и EndTime, для ONE_TIME - Start и End
type Request struct {
	TrainerID int64
	Type      domain.AvailabilityType
	DayOfWeek *int             // 0 - воскресенье ... 6 - суббота
	StartTime types.TimeString // "HH:MM"
	EndTime   types.TimeString // "HH:MM"
	Start     *time.Time
	End       *time.Time
}

// Response модель ответа с созданной записью доступности
type Response struct {
	ID        int64
	TrainerID int64
	Type      domain.AvailabilityType
	DayOfWeek *int
	StartTime *types.TimeString
	EndTime   *types.TimeString
	Start     *time.Time
	End       *time.Time
	CreatedAt time.Time
}
