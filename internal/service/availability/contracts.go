package availability

import (
	"context"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

// DirectoryRepository интерфейс справочника тренеров
type DirectoryRepository interface {
	GetTrainer(ctx context.Context, id int64) (*domain.Trainer, error)
}

// AvailabilityRepository интерфейс репозитория доступности тренеров
type AvailabilityRepository interface {
	ListByTrainer(ctx context.Context, trainerID int64) ([]*domain.Availability, error)
	Delete(ctx context.Context, trainerID, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
