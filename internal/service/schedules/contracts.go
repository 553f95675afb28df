package schedules

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

// DirectoryRepository интерфейс справочника членов клуба и тренеров
type DirectoryRepository interface {
	GetMember(ctx context.Context, id int64) (*domain.Member, error)
	GetTrainer(ctx context.Context, id int64) (*domain.Trainer, error)
}

// SessionRepository интерфейс репозитория тренировок
type SessionRepository interface {
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Session, error)
}

// ClassRepository интерфейс репозитория групповых занятий
type ClassRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.FitnessClass, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.FitnessClass, error)
	ListForMember(ctx context.Context, memberID int64, window *domain.TimeInterval) ([]*domain.FitnessClass, error)
	ListUpcoming(ctx context.Context, after time.Time, memberID *int64) ([]*domain.ClassOverview, error)
}

// RegistrationRepository интерфейс репозитория записей на занятия
type RegistrationRepository interface {
	CountByClass(ctx context.Context, classID int64) (int, error)
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
