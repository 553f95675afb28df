package get_class

import (
	"context"

	"github.com/m04kA/SMC-GymService/internal/service/schedules/models"
)

type ScheduleService interface {
	GetClass(ctx context.Context, classID int64) (*models.ClassResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
