package conflicts

import (
	"context"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

// SessionRepository интерфейс репозитория персональных тренировок
type SessionRepository interface {
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Session, error)
}

// ClassRepository интерфейс репозитория групповых занятий
type ClassRepository interface {
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.FitnessClass, error)
	ListForMember(ctx context.Context, memberID int64, window *domain.TimeInterval) ([]*domain.FitnessClass, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
