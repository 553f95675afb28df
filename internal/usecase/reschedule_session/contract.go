package reschedule_session

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

// SessionRepository интерфейс репозитория тренировок
type SessionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Session, error)
	Update(ctx context.Context, session *domain.Session) (*domain.Session, error)
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
