package add_availability

import (
	"context"

	addAvailability "github.com/m04kA/SMC-GymService/internal/usecase/add_availability"
)

type AddAvailabilityUseCase interface {
	Execute(ctx context.Context, req *addAvailability.Request) (*addAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
