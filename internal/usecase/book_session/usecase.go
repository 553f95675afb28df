package book_session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/internal/infra/locker"
	directoryRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/directory"
	sessionRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/session"
	"github.com/m04kA/SMC-GymService/pkg/ptr"
	"github.com/m04kA/SMC-GymService/pkg/txmanager"
)

// UseCase use case бронирования персональной тренировки
type UseCase struct {
	directory        DirectoryRepository
	availabilityRepo AvailabilityRepository
	sessionRepo      SessionRepository
	conflicts        ConflictDetector
	locker           ResourceLocker
	txManager        TransactionManager
	local            *time.Location
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
// local - локация "настенных часов" зала, в которой читается еженедельная доступность
func NewUseCase(
	directory DirectoryRepository,
	availabilityRepo AvailabilityRepository,
	sessionRepo SessionRepository,
	conflicts ConflictDetector,
	locker ResourceLocker,
	txManager TransactionManager,
	local *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		directory:        directory,
		availabilityRepo: availabilityRepo,
		sessionRepo:      sessionRepo,
		conflicts:        conflicts,
		locker:           locker,
		txManager:        txManager,
		local:            local,
		logger:           logger,
	}
}

// Execute выполняет use case бронирования тренировки
// Проверки останавливаются на первом нарушенном правиле, запись делается только после всех проверок.
// Проверка конфликтов и запись выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSession: member=%d, trainer=%d, room=%d, start=%s, end=%s",
		req.MemberID, req.TrainerID, req.RoomID, req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339))

	// 1. Валидация входных данных и интервала
	interval, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("BookSession: validation failed: %v", err)
		return nil, err
	}

	// 2. Блокируем тренера, члена клуба и зал
	unlock, err := uc.locker.Lock(ctx, lockKeys(req)...)
	if err != nil {
		if errors.Is(err, locker.ErrLockNotAcquired) {
			uc.logger.Warn("BookSession: resources are busy: %v", err)
			return nil, ErrConcurrentBooking
		}
		uc.logger.Error("BookSession: failed to lock resources: %v", err)
		return nil, fmt.Errorf("%w: failed to lock resources: %w", ErrInternal, err)
	}
	defer unlock()

	var result *domain.Session

	// 3. Проверки и создание в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Проверяем существование члена клуба, тренера и зала
		if err := uc.checkParticipants(txCtx, req); err != nil {
			return err
		}

		// 3.2. Проверяем, что интервал покрыт доступностью тренера
		availabilities, err := uc.availabilityRepo.ListByTrainer(txCtx, req.TrainerID)
		if err != nil {
			uc.logger.Error("BookSession: failed to get availability of trainer id=%d: %v", req.TrainerID, err)
			return fmt.Errorf("%w: failed to get availability: %w", ErrInternal, err)
		}

		if !domain.IsCovered(interval, domain.EntriesOf(availabilities), uc.local) {
			uc.logger.Warn("BookSession: trainer id=%d is not available at %s", req.TrainerID, interval)
			return ErrTrainerNotAvailable
		}

		// 3.3. Проверяем конфликты: тренер, член клуба, зал
		checks := []struct {
			ref         domain.ResourceRef
			conflictErr error
		}{
			{domain.TrainerRef(req.TrainerID), ErrTrainerConflict},
			{domain.MemberRef(req.MemberID), ErrMemberConflict},
			{domain.RoomRef(req.RoomID), ErrRoomConflict},
		}

		for _, check := range checks {
			conflict, err := uc.conflicts.FindConflict(txCtx, check.ref, interval, domain.Ignore{})
			if err != nil {
				uc.logger.Error("BookSession: failed to check conflicts of %s: %v", check.ref, err)
				return fmt.Errorf("%w: failed to check conflicts: %w", ErrInternal, err)
			}
			if conflict != nil {
				uc.logger.Warn("BookSession: %s conflicts with %s id=%d", check.ref, conflict.Kind, conflict.ID)
				return check.conflictErr
			}
		}

		// 3.4. Создаем тренировку
		created, err := uc.sessionRepo.Create(txCtx, &domain.Session{
			MemberID:  req.MemberID,
			TrainerID: req.TrainerID,
			RoomID:    ptr.Ptr(req.RoomID),
			Interval:  interval,
		})
		if err != nil {
			if mapped := mapOverlapError(err); mapped != nil {
				uc.logger.Warn("BookSession: storage rejected overlapping session: %v", err)
				return mapped
			}
			uc.logger.Error("BookSession: failed to create session: %v", err)
			return fmt.Errorf("%w: failed to create session: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("BookSession: concurrent booking detected: %v", err)
			return nil, ErrConcurrentBooking
		}
		return nil, err
	}

	uc.logger.Info("BookSession: successfully created session id=%d", result.ID)

	return &Response{
		ID:        result.ID,
		MemberID:  result.MemberID,
		TrainerID: result.TrainerID,
		RoomID:    req.RoomID,
		Start:     result.Interval.Start,
		End:       result.Interval.End,
		CreatedAt: result.CreatedAt,
	}, nil
}

// checkParticipants проверяет существование члена клуба, тренера и зала по порядку
func (uc *UseCase) checkParticipants(ctx context.Context, req *Request) error {
	if _, err := uc.directory.GetMember(ctx, req.MemberID); err != nil {
		if errors.Is(err, directoryRepo.ErrMemberNotFound) {
			uc.logger.Warn("BookSession: member id=%d not found", req.MemberID)
			return ErrMemberNotFound
		}
		uc.logger.Error("BookSession: failed to get member id=%d: %v", req.MemberID, err)
		return fmt.Errorf("%w: failed to get member: %w", ErrInternal, err)
	}

	if _, err := uc.directory.GetTrainer(ctx, req.TrainerID); err != nil {
		if errors.Is(err, directoryRepo.ErrTrainerNotFound) {
			uc.logger.Warn("BookSession: trainer id=%d not found", req.TrainerID)
			return ErrTrainerNotFound
		}
		uc.logger.Error("BookSession: failed to get trainer id=%d: %v", req.TrainerID, err)
		return fmt.Errorf("%w: failed to get trainer: %w", ErrInternal, err)
	}

	if _, err := uc.directory.GetRoom(ctx, req.RoomID); err != nil {
		if errors.Is(err, directoryRepo.ErrRoomNotFound) {
			uc.logger.Warn("BookSession: room id=%d not found", req.RoomID)
			return ErrRoomNotFound
		}
		uc.logger.Error("BookSession: failed to get room id=%d: %v", req.RoomID, err)
		return fmt.Errorf("%w: failed to get room: %w", ErrInternal, err)
	}

	return nil
}

// mapOverlapError переводит нарушение ограничения исключения в ошибку конфликта
func mapOverlapError(err error) error {
	switch {
	case errors.Is(err, sessionRepo.ErrTrainerOverlap):
		return ErrTrainerConflict
	case errors.Is(err, sessionRepo.ErrMemberOverlap):
		return ErrMemberConflict
	case errors.Is(err, sessionRepo.ErrRoomOverlap):
		return ErrRoomConflict
	}
	return nil
}
