package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

// DirectoryRepository интерфейс справочника тренеров
type DirectoryRepository interface {
	ListTrainers(ctx context.Context) ([]*domain.Trainer, error)
}

// AvailabilityRepository интерфейс репозитория доступности тренеров
type AvailabilityRepository interface {
	ListByTrainer(ctx context.Context, trainerID int64) ([]*domain.Availability, error)
}

// ConflictDetector интерфейс детектора конфликтов
type ConflictDetector interface {
	// Bookings возвращает тренировки и занятия ресурса, пересекающиеся с окном
	Bookings(ctx context.Context, ref domain.ResourceRef, window *domain.TimeInterval) ([]domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
