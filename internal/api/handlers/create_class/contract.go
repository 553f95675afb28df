package create_class

import (
	"context"

	createClass "github.com/m04kA/SMC-GymService/internal/usecase/create_class"
)

type CreateClassUseCase interface {
	Execute(ctx context.Context, req *createClass.Request) (*createClass.Response, error)
}

type DecisionRecorder interface {
	RecordDecision(operation, outcome string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
