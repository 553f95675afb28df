package list_availability

import (
	"context"

	"github.com/m04kA/SMC-GymService/internal/service/availability/models"
)

type AvailabilityService interface {
	List(ctx context.Context, trainerID int64) (*models.AvailabilityListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
