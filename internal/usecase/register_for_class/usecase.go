package register_for_class

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/internal/infra/locker"
	directoryRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/directory"
	classRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/fitnessclass"
	registrationRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/registration"
	"github.com/m04kA/SMC-GymService/pkg/txmanager"
)

// UseCase use case записи члена клуба на групповое занятие
type UseCase struct {
	directory        DirectoryRepository
	classRepo        ClassRepository
	registrationRepo RegistrationRepository
	conflicts        ConflictDetector
	locker           ResourceLocker
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	directory DirectoryRepository,
	classRepo ClassRepository,
	registrationRepo RegistrationRepository,
	conflicts ConflictDetector,
	locker ResourceLocker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		directory:        directory,
		classRepo:        classRepo,
		registrationRepo: registrationRepo,
		conflicts:        conflicts,
		locker:           locker,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case записи на занятие
// Повторная запись на то же занятие - ошибка, а не пустая операция
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RegisterForClass: member=%d, class=%d", req.MemberID, req.ClassID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RegisterForClass: validation failed: %v", err)
		return nil, err
	}

	// 2. Блокируем члена клуба и места занятия
	unlock, err := uc.locker.Lock(ctx, lockKeys(req)...)
	if err != nil {
		if errors.Is(err, locker.ErrLockNotAcquired) {
			uc.logger.Warn("RegisterForClass: resources are busy: %v", err)
			return nil, ErrConcurrentBooking
		}
		uc.logger.Error("RegisterForClass: failed to lock resources: %v", err)
		return nil, fmt.Errorf("%w: failed to lock resources: %w", ErrInternal, err)
	}
	defer unlock()

	var (
		result    *domain.ClassRegistration
		remaining int
	)

	// 3. Проверки и создание записи в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Проверяем члена клуба
		if _, err := uc.directory.GetMember(txCtx, req.MemberID); err != nil {
			if errors.Is(err, directoryRepo.ErrMemberNotFound) {
				uc.logger.Warn("RegisterForClass: member id=%d not found", req.MemberID)
				return ErrMemberNotFound
			}
			uc.logger.Error("RegisterForClass: failed to get member id=%d: %v", req.MemberID, err)
			return fmt.Errorf("%w: failed to get member: %w", ErrInternal, err)
		}

		// 3.2. Получаем занятие
		class, err := uc.classRepo.GetByID(txCtx, req.ClassID)
		if err != nil {
			if errors.Is(err, classRepo.ErrClassNotFound) {
				uc.logger.Warn("RegisterForClass: class id=%d not found", req.ClassID)
				return ErrClassNotFound
			}
			uc.logger.Error("RegisterForClass: failed to get class id=%d: %v", req.ClassID, err)
			return fmt.Errorf("%w: failed to get class: %w", ErrInternal, err)
		}

		// 3.3. Занятие должно начинаться строго в будущем
		if class.HasStarted(uc.timeProvider.Now()) {
			uc.logger.Warn("RegisterForClass: class id=%d has already started", class.ID)
			return ErrAlreadyStarted
		}

		// 3.4. Повторная запись запрещена
		exists, err := uc.registrationRepo.Exists(txCtx, req.MemberID, class.ID)
		if err != nil {
			uc.logger.Error("RegisterForClass: failed to check registration: %v", err)
			return fmt.Errorf("%w: failed to check registration: %w", ErrInternal, err)
		}
		if exists {
			uc.logger.Warn("RegisterForClass: member id=%d already registered for class id=%d", req.MemberID, class.ID)
			return ErrAlreadyRegistered
		}

		// 3.5. Проверяем свободные места
		count, err := uc.registrationRepo.CountByClass(txCtx, class.ID)
		if err != nil {
			uc.logger.Error("RegisterForClass: failed to count registrations of class id=%d: %v", class.ID, err)
			return fmt.Errorf("%w: failed to count registrations: %w", ErrInternal, err)
		}
		if count >= class.Capacity {
			uc.logger.Warn("RegisterForClass: class id=%d is full (%d/%d)", class.ID, count, class.Capacity)
			return ErrClassFull
		}

		// 3.6. Проверяем конфликты члена клуба с тренировками и другими занятиями
		conflict, err := uc.conflicts.FindConflict(txCtx, domain.MemberRef(req.MemberID), class.Interval, domain.IgnoreClass(class.ID))
		if err != nil {
			uc.logger.Error("RegisterForClass: failed to check conflicts of member id=%d: %v", req.MemberID, err)
			return fmt.Errorf("%w: failed to check conflicts: %w", ErrInternal, err)
		}
		if conflict != nil {
			uc.logger.Warn("RegisterForClass: member id=%d conflicts with %s id=%d", req.MemberID, conflict.Kind, conflict.ID)
			return ErrMemberConflict
		}

		// 3.7. Создаем запись
		created, err := uc.registrationRepo.Create(txCtx, &domain.ClassRegistration{
			MemberID:       req.MemberID,
			FitnessClassID: class.ID,
			ClassStart:     class.Interval.Start,
		})
		if err != nil {
			if errors.Is(err, registrationRepo.ErrAlreadyRegistered) {
				uc.logger.Warn("RegisterForClass: storage rejected duplicate registration: %v", err)
				return ErrAlreadyRegistered
			}
			if errors.Is(err, registrationRepo.ErrReferenceNotFound) {
				uc.logger.Warn("RegisterForClass: member id=%d or class id=%d removed concurrently", req.MemberID, class.ID)
				return ErrReferenceNotFound
			}
			uc.logger.Error("RegisterForClass: failed to create registration: %v", err)
			return fmt.Errorf("%w: failed to create registration: %w", ErrInternal, err)
		}

		created.ClassStart = class.Interval.Start
		result = created
		remaining = class.RemainingSpots(count + 1)
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("RegisterForClass: concurrent registration detected: %v", err)
			return nil, ErrConcurrentBooking
		}
		return nil, err
	}

	uc.logger.Info("RegisterForClass: successfully created registration id=%d", result.ID)

	return &Response{
		ID:             result.ID,
		MemberID:       result.MemberID,
		ClassID:        result.FitnessClassID,
		ClassStart:     result.ClassStart,
		RemainingSpots: remaining,
		CreatedAt:      result.CreatedAt,
	}, nil
}
