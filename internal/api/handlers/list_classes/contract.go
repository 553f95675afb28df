package list_classes

import (
	"context"

	"github.com/m04kA/SMC-GymService/internal/service/schedules/models"
)

type ClassService interface {
	ListUpcomingClasses(ctx context.Context, memberID *int64) (*models.ClassListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
