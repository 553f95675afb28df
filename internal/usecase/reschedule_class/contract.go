package reschedule_class

import (
	"context"
	"time"

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
	GetByID(ctx context.Context, id int64) (*domain.FitnessClass, error)
	Update(ctx context.Context, class *domain.FitnessClass) (*domain.FitnessClass, error)
}

// RegistrationRepository интерфейс репозитория записей на занятия
type RegistrationRepository interface {
	CountByClass(ctx context.Context, classID int64) (int, error)
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

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
