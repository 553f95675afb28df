package reschedule_session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/internal/infra/locker"
	directoryRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/directory"
	sessionRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/session"
	"github.com/m04kA/SMC-GymService/pkg/txmanager"
)

// UseCase use case переноса персональной тренировки
type UseCase struct {
	directory        DirectoryRepository
	availabilityRepo AvailabilityRepository
	sessionRepo      SessionRepository
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
		timeProvider:     &RealTimeProvider{},
		local:            local,
		logger:           logger,
	}
}

// Execute выполняет use case переноса тренировки
// Все проверки конфликтов исключают саму переносимую тренировку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleSession: session=%d, start=%s, end=%s",
		req.SessionID, req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339))

	// 1. Валидация входных данных
	interval, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("RescheduleSession: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем тренировку, чтобы знать, какие ресурсы блокировать
	current, err := uc.getSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	// 3. Блокируем тренера, члена клуба и зал после переноса
	trainerID, roomID := resolveAssignment(req, current)
	keys := []string{domain.TrainerRef(trainerID).String(), domain.MemberRef(current.MemberID).String()}
	if roomID != nil {
		keys = append(keys, domain.RoomRef(*roomID).String())
	}

	unlock, err := uc.locker.Lock(ctx, keys...)
	if err != nil {
		if errors.Is(err, locker.ErrLockNotAcquired) {
			uc.logger.Warn("RescheduleSession: resources are busy: %v", err)
			return nil, ErrConcurrentBooking
		}
		uc.logger.Error("RescheduleSession: failed to lock resources: %v", err)
		return nil, fmt.Errorf("%w: failed to lock resources: %w", ErrInternal, err)
	}
	defer unlock()

	var result *domain.Session

	// 4. Проверки и обновление в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Перечитываем тренировку под блокировкой строки
		session, err := uc.getSession(txCtx, req.SessionID)
		if err != nil {
			return err
		}

		// 4.2. Проверяем владельца
		if req.RequesterID != nil && *req.RequesterID != session.MemberID {
			uc.logger.Warn("RescheduleSession: session id=%d does not belong to member id=%d", session.ID, *req.RequesterID)
			return ErrNotOwner
		}

		// 4.3. Начавшуюся тренировку переносить нельзя
		if session.HasStarted(uc.timeProvider.Now()) {
			uc.logger.Warn("RescheduleSession: session id=%d has already started", session.ID)
			return ErrAlreadyStarted
		}

		trainerID, roomID := resolveAssignment(req, session)

		// 4.4. Зал обязателен: у тренировки, чей зал удален, нужно указать новый
		if roomID == nil {
			uc.logger.Warn("RescheduleSession: session id=%d has no room and no new room given", session.ID)
			return ErrRoomRequired
		}

		// 4.5. Проверяем существование тренера и зала
		if err := uc.checkAssignment(txCtx, trainerID, *roomID); err != nil {
			return err
		}

		// 4.6. Проверяем доступность тренера
		availabilities, err := uc.availabilityRepo.ListByTrainer(txCtx, trainerID)
		if err != nil {
			uc.logger.Error("RescheduleSession: failed to get availability of trainer id=%d: %v", trainerID, err)
			return fmt.Errorf("%w: failed to get availability: %w", ErrInternal, err)
		}

		if !domain.IsCovered(interval, domain.EntriesOf(availabilities), uc.local) {
			uc.logger.Warn("RescheduleSession: trainer id=%d is not available at %s", trainerID, interval)
			return ErrTrainerNotAvailable
		}

		// 4.7. Проверяем конфликты, исключая саму тренировку
		ignore := domain.IgnoreSession(session.ID)
		checks := []conflictCheck{
			{domain.TrainerRef(trainerID), ErrTrainerConflict},
			{domain.MemberRef(session.MemberID), ErrMemberConflict},
			{domain.RoomRef(*roomID), ErrRoomConflict},
		}

		for _, check := range checks {
			conflict, err := uc.conflicts.FindConflict(txCtx, check.ref, interval, ignore)
			if err != nil {
				uc.logger.Error("RescheduleSession: failed to check conflicts of %s: %v", check.ref, err)
				return fmt.Errorf("%w: failed to check conflicts: %w", ErrInternal, err)
			}
			if conflict != nil {
				uc.logger.Warn("RescheduleSession: %s conflicts with %s id=%d", check.ref, conflict.Kind, conflict.ID)
				return check.conflictErr
			}
		}

		// 4.8. Обновляем тренировку на месте, ID не меняется
		session.TrainerID = trainerID
		session.RoomID = roomID
		session.Interval = interval

		updated, err := uc.sessionRepo.Update(txCtx, session)
		if err != nil {
			switch {
			case errors.Is(err, sessionRepo.ErrTrainerOverlap):
				return ErrTrainerConflict
			case errors.Is(err, sessionRepo.ErrMemberOverlap):
				return ErrMemberConflict
			case errors.Is(err, sessionRepo.ErrRoomOverlap):
				return ErrRoomConflict
			case errors.Is(err, sessionRepo.ErrSessionNotFound):
				return ErrSessionNotFound
			}
			uc.logger.Error("RescheduleSession: failed to update session id=%d: %v", session.ID, err)
			return fmt.Errorf("%w: failed to update session: %w", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("RescheduleSession: concurrent booking detected: %v", err)
			return nil, ErrConcurrentBooking
		}
		return nil, err
	}

	uc.logger.Info("RescheduleSession: successfully rescheduled session id=%d", result.ID)

	return &Response{
		ID:        result.ID,
		MemberID:  result.MemberID,
		TrainerID: result.TrainerID,
		RoomID:    result.RoomID,
		Start:     result.Interval.Start,
		End:       result.Interval.End,
		UpdatedAt: result.UpdatedAt,
	}, nil
}

// conflictCheck ресурс и ошибка, возвращаемая при его конфликте
type conflictCheck struct {
	ref         domain.ResourceRef
	conflictErr error
}

func (uc *UseCase) getSession(ctx context.Context, id int64) (*domain.Session, error) {
	session, err := uc.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			uc.logger.Warn("RescheduleSession: session id=%d not found", id)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("RescheduleSession: failed to get session id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get session: %w", ErrInternal, err)
	}
	return session, nil
}

func (uc *UseCase) checkAssignment(ctx context.Context, trainerID, roomID int64) error {
	if _, err := uc.directory.GetTrainer(ctx, trainerID); err != nil {
		if errors.Is(err, directoryRepo.ErrTrainerNotFound) {
			uc.logger.Warn("RescheduleSession: trainer id=%d not found", trainerID)
			return ErrTrainerNotFound
		}
		uc.logger.Error("RescheduleSession: failed to get trainer id=%d: %v", trainerID, err)
		return fmt.Errorf("%w: failed to get trainer: %w", ErrInternal, err)
	}

	if _, err := uc.directory.GetRoom(ctx, roomID); err != nil {
		if errors.Is(err, directoryRepo.ErrRoomNotFound) {
			uc.logger.Warn("RescheduleSession: room id=%d not found", roomID)
			return ErrRoomNotFound
		}
		uc.logger.Error("RescheduleSession: failed to get room id=%d: %v", roomID, err)
		return fmt.Errorf("%w: failed to get room: %w", ErrInternal, err)
	}

	return nil
}
