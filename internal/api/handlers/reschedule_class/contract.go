package reschedule_class

import (
	"context"

	rescheduleClass "github.com/m04kA/SMC-GymService/internal/usecase/reschedule_class"
)

type RescheduleClassUseCase interface {
	Execute(ctx context.Context, req *rescheduleClass.Request) (*rescheduleClass.Response, error)
}

type DecisionRecorder interface {
	RecordDecision(operation, outcome string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
