package cancel_registration

import (
	"context"

	cancelRegistration "github.com/m04kA/SMC-GymService/internal/usecase/cancel_registration"
)

type CancelRegistrationUseCase interface {
	Execute(ctx context.Context, req *cancelRegistration.Request) error
}

type DecisionRecorder interface {
	RecordDecision(operation, outcome string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
