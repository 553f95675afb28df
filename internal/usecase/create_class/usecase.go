package create_class

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/internal/infra/locker"
	directoryRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/directory"
	classRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/fitnessclass"
	"github.com/m04kA/SMC-GymService/pkg/txmanager"
)

// UseCase use case создания группового занятия
type UseCase struct {
	directory        DirectoryRepository
	availabilityRepo AvailabilityRepository
	classRepo        ClassRepository
	conflicts        ConflictDetector
	locker           ResourceLocker
	txManager        TransactionManager
	local            *time.Location
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	directory DirectoryRepository,
	availabilityRepo AvailabilityRepository,
	classRepo ClassRepository,
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
		conflicts:        conflicts,
		locker:           locker,
		txManager:        txManager,
		local:            local,
		logger:           logger,
	}
}

// Execute выполняет use case создания занятия
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateClass: name=%q, trainer=%d, room=%d, capacity=%d, start=%s, end=%s",
		req.Name, req.TrainerID, req.RoomID, req.Capacity, req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339))

	// 1. Валидация входных данных
	interval, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateClass: validation failed: %v", err)
		return nil, err
	}

	// 2. Блокируем тренера и зал
	unlock, err := uc.locker.Lock(ctx, domain.TrainerRef(req.TrainerID).String(), domain.RoomRef(req.RoomID).String())
	if err != nil {
		if errors.Is(err, locker.ErrLockNotAcquired) {
			uc.logger.Warn("CreateClass: resources are busy: %v", err)
			return nil, ErrConcurrentBooking
		}
		uc.logger.Error("CreateClass: failed to lock resources: %v", err)
		return nil, fmt.Errorf("%w: failed to lock resources: %w", ErrInternal, err)
	}
	defer unlock()

	var result *domain.FitnessClass

	// 3. Проверки и создание в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Проверяем тренера
		if _, err := uc.directory.GetTrainer(txCtx, req.TrainerID); err != nil {
			if errors.Is(err, directoryRepo.ErrTrainerNotFound) {
				uc.logger.Warn("CreateClass: trainer id=%d not found", req.TrainerID)
				return ErrTrainerNotFound
			}
			uc.logger.Error("CreateClass: failed to get trainer id=%d: %v", req.TrainerID, err)
			return fmt.Errorf("%w: failed to get trainer: %w", ErrInternal, err)
		}

		// 3.2. Проверяем зал и его вместимость
		room, err := uc.directory.GetRoom(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, directoryRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateClass: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateClass: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %w", ErrInternal, err)
		}

		if req.Capacity > room.Capacity {
			uc.logger.Warn("CreateClass: capacity %d exceeds room id=%d capacity %d", req.Capacity, room.ID, room.Capacity)
			return ErrRoomCapacityExceeded
		}

		// 3.3. Проверяем доступность тренера
		availabilities, err := uc.availabilityRepo.ListByTrainer(txCtx, req.TrainerID)
		if err != nil {
			uc.logger.Error("CreateClass: failed to get availability of trainer id=%d: %v", req.TrainerID, err)
			return fmt.Errorf("%w: failed to get availability: %w", ErrInternal, err)
		}

		if !domain.IsCovered(interval, domain.EntriesOf(availabilities), uc.local) {
			uc.logger.Warn("CreateClass: trainer id=%d is not available at %s", req.TrainerID, interval)
			return ErrTrainerNotAvailable
		}

		// 3.4. Проверяем конфликты тренера и зала
		if err := uc.checkConflict(txCtx, domain.TrainerRef(req.TrainerID), interval, ErrTrainerConflict); err != nil {
			return err
		}
		if err := uc.checkConflict(txCtx, domain.RoomRef(req.RoomID), interval, ErrRoomConflict); err != nil {
			return err
		}

		// 3.5. Создаем занятие
		created, err := uc.classRepo.Create(txCtx, &domain.FitnessClass{
			Name:      strings.TrimSpace(req.Name),
			TrainerID: req.TrainerID,
			RoomID:    req.RoomID,
			Interval:  interval,
			Capacity:  req.Capacity,
		})
		if err != nil {
			switch {
			case errors.Is(err, classRepo.ErrTrainerOverlap):
				return ErrTrainerConflict
			case errors.Is(err, classRepo.ErrRoomOverlap):
				return ErrRoomConflict
			}
			uc.logger.Error("CreateClass: failed to create class: %v", err)
			return fmt.Errorf("%w: failed to create class: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("CreateClass: concurrent booking detected: %v", err)
			return nil, ErrConcurrentBooking
		}
		return nil, err
	}

	uc.logger.Info("CreateClass: successfully created class id=%d", result.ID)

	return &Response{
		ID:        result.ID,
		Name:      result.Name,
		TrainerID: result.TrainerID,
		RoomID:    result.RoomID,
		Start:     result.Interval.Start,
		End:       result.Interval.End,
		Capacity:  result.Capacity,
		CreatedAt: result.CreatedAt,
	}, nil
}

func (uc *UseCase) checkConflict(ctx context.Context, ref domain.ResourceRef, interval domain.TimeInterval, conflictErr error) error {
	conflict, err := uc.conflicts.FindConflict(ctx, ref, interval, domain.Ignore{})
	if err != nil {
		uc.logger.Error("CreateClass: failed to check conflicts of %s: %v", ref, err)
		return fmt.Errorf("%w: failed to check conflicts: %w", ErrInternal, err)
	}
	if conflict != nil {
		uc.logger.Warn("CreateClass: %s conflicts with %s id=%d", ref, conflict.Kind, conflict.ID)
		return conflictErr
	}
	return nil
}
