package availability

import (
	"context"
	"errors"
	"fmt"

	availabilityRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/availability"
	directoryRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/directory"
	"github.com/m04kA/SMC-GymService/internal/service/availability/models"
)

// Service сервис для просмотра и удаления доступности тренеров
// Добавление записей выполняет use case add_availability
type Service struct {
	directory        DirectoryRepository
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	directory DirectoryRepository,
	availabilityRepo AvailabilityRepository,
	logger Logger,
) *Service {
	return &Service{
		directory:        directory,
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// List возвращает все записи доступности тренера
func (s *Service) List(ctx context.Context, trainerID int64) (*models.AvailabilityListResponse, error) {
	s.logger.Info("List: fetching availability for trainer=%d", trainerID)

	if err := s.checkTrainer(ctx, "List", trainerID); err != nil {
		return nil, err
	}

	list, err := s.availabilityRepo.ListByTrainer(ctx, trainerID)
	if err != nil {
		s.logger.Error("List: repository error for trainer=%d: %v", trainerID, err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d entries for trainer=%d", len(list), trainerID)
	return models.FromDomainAvailabilityList(trainerID, list), nil
}

// Delete удаляет запись доступности тренера
// Уже забронированные тренировки и занятия не затрагиваются
func (s *Service) Delete(ctx context.Context, trainerID, id int64) error {
	s.logger.Info("Delete: deleting availability id=%d of trainer=%d", id, trainerID)

	// 1. Проверяем существование тренера
	if err := s.checkTrainer(ctx, "Delete", trainerID); err != nil {
		return err
	}

	// 2. Удаляем запись (только принадлежащую этому тренеру)
	if err := s.availabilityRepo.Delete(ctx, trainerID, id); err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			s.logger.Warn("Delete: availability id=%d of trainer=%d not found", id, trainerID)
			return ErrAvailabilityNotFound
		}
		s.logger.Error("Delete: repository error for availability id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted availability id=%d", id)
	return nil
}

// checkTrainer проверяет существование тренера
func (s *Service) checkTrainer(ctx context.Context, op string, trainerID int64) error {
	if _, err := s.directory.GetTrainer(ctx, trainerID); err != nil {
		if errors.Is(err, directoryRepo.ErrTrainerNotFound) {
			s.logger.Warn("%s: trainer id=%d not found", op, trainerID)
			return ErrTrainerNotFound
		}
		s.logger.Error("%s: failed to get trainer id=%d: %v", op, trainerID, err)
		return fmt.Errorf("%w: failed to get trainer: %w", ErrInternal, err)
	}
	return nil
}
