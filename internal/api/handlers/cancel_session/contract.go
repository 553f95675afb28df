package cancel_session

import (
	"context"

	cancelSession "github.com/m04kA/SMC-GymService/internal/usecase/cancel_session"
)

type CancelSessionUseCase interface {
	Execute(ctx context.Context, req *cancelSession.Request) error
}

type DecisionRecorder interface {
	RecordDecision(operation, outcome string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
