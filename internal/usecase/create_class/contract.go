package create_class

import (
	"context"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/internal/infra/locker"
)

// DirectoryRepository интерфейс справочника тренеров и залов
type DirectoryRepository interface {
	GetTrainer(ctx context.Context, id int64) (*domain.Trainer, error)
	GetRoom(ctx context.Context, id int64) (*domain.Room, error)
}

// AvailabilityRepository интерфейс репозитория доступности тренеров
type AvailabilityRepository interface {
	ListByTrainer(ctx context.Context, trainerID int64) ([]*domain.Availability, error)
}

// ClassRepository интерфейс репозитория групповых занятий
type ClassRepository interface {
	Create(ctx context.Context, class *domain.FitnessClass) (*domain.FitnessClass, error)
}

// ConflictDetector интерфейс детектора конфликтов
type ConflictDetector interface {
	FindConflict(ctx context.Context, ref domain.ResourceRef, candidate domain.TimeInterval, ignore domain.Ignore) (*domain.Booking, error)
}

// ResourceLocker интерфейс блокировки ресурсов
type ResourceLocker interface {
	Lock(ctx context.Context, keys ...string) (locker.Unlock, error)
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
