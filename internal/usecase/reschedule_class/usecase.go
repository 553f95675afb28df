package reschedule_class

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/internal/infra/locker"
	directoryRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/directory"
	classRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/fitnessclass"
	"github.com/m04kA/SMC-GymService/pkg/txmanager"
)

// UseCase use case переноса или изменения группового занятия
type UseCase struct {
	directory        DirectoryRepository
	availabilityRepo AvailabilityRepository
	classRepo        ClassRepository
	registrationRepo RegistrationRepository
	conflicts        ConflictDetector
	locker           ResourceLocker
	txManager        TransactionManager
	timeProvider     TimeProvider
	local            *time.Location
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	directory DirectoryRepository,
	availabilityRepo AvailabilityRepository,
	classRepo ClassRepository,
	registrationRepo RegistrationRepository,
	conflicts ConflictDetector,
	locker ResourceLocker,
	txManager TransactionManager,
	local *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		directory:        directory,
		availabilityRepo: availabilityRepo,
		classRepo:        classRepo,
		registrationRepo: registrationRepo,
		conflicts:        conflicts,
		locker:           locker,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		local:            local,
		logger:           logger,
	}
}

// Execute выполняет use case изменения занятия
// Проверки конфликтов исключают само занятие
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleClass: class=%d", req.ClassID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleClass: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем занятие, чтобы знать, какие ресурсы блокировать
	current, err := uc.getClass(ctx, req.ClassID)
	if err != nil {
		return nil, err
	}

	target, err := applyChanges(req, current)
	if err != nil {
		uc.logger.Warn("RescheduleClass: validation failed: %v", err)
		return nil, err
	}

	// 3. Блокируем тренера и зал после изменения
	unlock, err := uc.locker.Lock(ctx, domain.TrainerRef(target.TrainerID).String(), domain.RoomRef(target.RoomID).String())
	if err != nil {
		if errors.Is(err, locker.ErrLockNotAcquired) {
			uc.logger.Warn("RescheduleClass: resources are busy: %v", err)
			return nil, ErrConcurrentBooking
		}
		uc.logger.Error("RescheduleClass: failed to lock resources: %v", err)
		return nil, fmt.Errorf("%w: failed to lock resources: %w", ErrInternal, err)
	}
	defer unlock()

	var (
		result        *domain.FitnessClass
		registrations int
	)

	// 4. Проверки и обновление в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Перечитываем занятие под блокировкой строки
		class, err := uc.getClass(txCtx, req.ClassID)
		if err != nil {
			return err
		}

		// 4.2. Начавшееся занятие менять нельзя
		if class.HasStarted(uc.timeProvider.Now()) {
			uc.logger.Warn("RescheduleClass: class id=%d has already started", class.ID)
			return ErrAlreadyStarted
		}

		target, err := applyChanges(req, class)
		if err != nil {
			return err
		}

		// 4.3. Проверяем тренера
		if _, err := uc.directory.GetTrainer(txCtx, target.TrainerID); err != nil {
			if errors.Is(err, directoryRepo.ErrTrainerNotFound) {
				uc.logger.Warn("RescheduleClass: trainer id=%d not found", target.TrainerID)
				return ErrTrainerNotFound
			}
			uc.logger.Error("RescheduleClass: failed to get trainer id=%d: %v", target.TrainerID, err)
			return fmt.Errorf("%w: failed to get trainer: %w", ErrInternal, err)
		}

		// 4.4. Проверяем зал и его вместимость
		room, err := uc.directory.GetRoom(txCtx, target.RoomID)
		if err != nil {
			if errors.Is(err, directoryRepo.ErrRoomNotFound) {
				uc.logger.Warn("RescheduleClass: room id=%d not found", target.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("RescheduleClass: failed to get room id=%d: %v", target.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %w", ErrInternal, err)
		}

		if target.Capacity > room.Capacity {
			uc.logger.Warn("RescheduleClass: capacity %d exceeds room id=%d capacity %d", target.Capacity, room.ID, room.Capacity)
			return ErrRoomCapacityExceeded
		}

		// 4.5. Вместимость не может быть меньше числа записей
		registrations, err = uc.registrationRepo.CountByClass(txCtx, class.ID)
		if err != nil {
			uc.logger.Error("RescheduleClass: failed to count registrations of class id=%d: %v", class.ID, err)
			return fmt.Errorf("%w: failed to count registrations: %w", ErrInternal, err)
		}

		if target.Capacity < registrations {
			uc.logger.Warn("RescheduleClass: capacity %d is below %d registrations of class id=%d", target.Capacity, registrations, class.ID)
			return ErrBelowRegistrations
		}

		// 4.6. Проверяем доступность тренера
		availabilities, err := uc.availabilityRepo.ListByTrainer(txCtx, target.TrainerID)
		if err != nil {
			uc.logger.Error("RescheduleClass: failed to get availability of trainer id=%d: %v", target.TrainerID, err)
			return fmt.Errorf("%w: failed to get availability: %w", ErrInternal, err)
		}

		if !domain.IsCovered(target.Interval, domain.EntriesOf(availabilities), uc.local) {
			uc.logger.Warn("RescheduleClass: trainer id=%d is not available at %s", target.TrainerID, target.Interval)
			return ErrTrainerNotAvailable
		}

		// 4.7. Проверяем конфликты тренера и зала, исключая само занятие
		ignore := domain.IgnoreClass(class.ID)
		if err := uc.checkConflict(txCtx, domain.TrainerRef(target.TrainerID), target.Interval, ignore, ErrTrainerConflict); err != nil {
			return err
		}
		if err := uc.checkConflict(txCtx, domain.RoomRef(target.RoomID), target.Interval, ignore, ErrRoomConflict); err != nil {
			return err
		}

		// 4.8. Сохраняем изменения
		updated, err := uc.classRepo.Update(txCtx, target)
		if err != nil {
			switch {
			case errors.Is(err, classRepo.ErrTrainerOverlap):
				return ErrTrainerConflict
			case errors.Is(err, classRepo.ErrRoomOverlap):
				return ErrRoomConflict
			case errors.Is(err, classRepo.ErrClassNotFound):
				return ErrClassNotFound
			}
			uc.logger.Error("RescheduleClass: failed to update class id=%d: %v", class.ID, err)
			return fmt.Errorf("%w: failed to update class: %w", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("RescheduleClass: concurrent booking detected: %v", err)
			return nil, ErrConcurrentBooking
		}
		return nil, err
	}

	uc.logger.Info("RescheduleClass: successfully updated class id=%d", result.ID)

	return &Response{
		ID:            result.ID,
		Name:          result.Name,
		TrainerID:     result.TrainerID,
		RoomID:        result.RoomID,
		Start:         result.Interval.Start,
		End:           result.Interval.End,
		Capacity:      result.Capacity,
		Registrations: registrations,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

func (uc *UseCase) getClass(ctx context.Context, id int64) (*domain.FitnessClass, error) {
	class, err := uc.classRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, classRepo.ErrClassNotFound) {
			uc.logger.Warn("RescheduleClass: class id=%d not found", id)
			return nil, ErrClassNotFound
		}
		uc.logger.Error("RescheduleClass: failed to get class id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get class: %w", ErrInternal, err)
	}
	return class, nil
}

func (uc *UseCase) checkConflict(
	ctx context.Context,
	ref domain.ResourceRef,
	interval domain.TimeInterval,
	ignore domain.Ignore,
	conflictErr error,
) error {
	conflict, err := uc.conflicts.FindConflict(ctx, ref, interval, ignore)
	if err != nil {
		uc.logger.Error("RescheduleClass: failed to check conflicts of %s: %v", ref, err)
		return fmt.Errorf("%w: failed to check conflicts: %w", ErrInternal, err)
	}
	if conflict != nil {
		uc.logger.Warn("RescheduleClass: %s conflicts with %s id=%d", ref, conflict.Kind, conflict.ID)
		return conflictErr
	}
	return nil
}
