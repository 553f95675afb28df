package cancel_registration

import (
	"context"
	"errors"
	"fmt"

	registrationRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/registration"
	"github.com/m04kA/SMC-GymService/pkg/txmanager"
)

// UseCase use case отмены записи на занятие
type UseCase struct {
	registrationRepo RegistrationRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(registrationRepo RegistrationRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		registrationRepo: registrationRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case отмены записи
// Отменить может только владелец записи и только до начала занятия
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("CancelRegistration: registration=%d, member=%d", req.RegistrationID, req.MemberID)

	// 1. Валидация входных данных
	if req.RegistrationID <= 0 || req.MemberID <= 0 {
		uc.logger.Warn("CancelRegistration: validation failed: registration=%d, member=%d", req.RegistrationID, req.MemberID)
		return fmt.Errorf("%w: registrationID and memberID must be positive", ErrInvalidInput)
	}

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Получаем запись вместе с началом занятия
		registration, err := uc.registrationRepo.GetByID(txCtx, req.RegistrationID)
		if err != nil {
			if errors.Is(err, registrationRepo.ErrRegistrationNotFound) {
				uc.logger.Warn("CancelRegistration: registration id=%d not found", req.RegistrationID)
				return ErrRegistrationNotFound
			}
			uc.logger.Error("CancelRegistration: failed to get registration id=%d: %v", req.RegistrationID, err)
			return fmt.Errorf("%w: failed to get registration: %w", ErrInternal, err)
		}

		// 3. Проверяем владельца
		if registration.MemberID != req.MemberID {
			uc.logger.Warn("CancelRegistration: registration id=%d does not belong to member id=%d", registration.ID, req.MemberID)
			return ErrNotOwner
		}

		// 4. Проверяем, что занятие еще не началось
		if !uc.timeProvider.Now().Before(registration.ClassStart) {
			uc.logger.Warn("CancelRegistration: class id=%d has already started", registration.FitnessClassID)
			return ErrAlreadyStarted
		}

		// 5. Удаляем запись
		if err := uc.registrationRepo.Delete(txCtx, registration.ID); err != nil {
			if errors.Is(err, registrationRepo.ErrRegistrationNotFound) {
				return ErrRegistrationNotFound
			}
			uc.logger.Error("CancelRegistration: failed to delete registration id=%d: %v", registration.ID, err)
			return fmt.Errorf("%w: failed to delete registration: %w", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("CancelRegistration: concurrent update detected: %v", err)
			return ErrConcurrentUpdate
		}
		return err
	}

	uc.logger.Info("CancelRegistration: successfully cancelled registration id=%d", req.RegistrationID)
	return nil
}
