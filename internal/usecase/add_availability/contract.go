package add_availability

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
	Create(ctx context.Context, availability *domain.Availability) (*domain.Availability, error)
	ListByTrainer(ctx context.Context, trainerID int64) ([]*domain.Availability, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
