package register_for_class

import (
	"context"

	registerForClass "github.com/m04kA/SMC-GymService/internal/usecase/register_for_class"
)

type RegisterForClassUseCase interface {
	Execute(ctx context.Context, req *registerForClass.Request) (*registerForClass.Response, error)
}

type DecisionRecorder interface {
	RecordDecision(operation, outcome string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
