package cancel_session

import (
	"context"
	"errors"
	"fmt"

	sessionRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/session"
	"github.com/m04kA/SMC-GymService/pkg/txmanager"
)

// UseCase use case отмены персональной тренировки
type UseCase struct {
	sessionRepo  SessionRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessionRepo SessionRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		sessionRepo:  sessionRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case отмены тренировки
// Отменить можно только еще не начавшуюся тренировку
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("CancelSession: session=%d", req.SessionID)

	// 1. Валидация входных данных
	if req.SessionID <= 0 {
		uc.logger.Warn("CancelSession: validation failed: sessionID=%d", req.SessionID)
		return fmt.Errorf("%w: sessionID must be positive", ErrInvalidInput)
	}

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Получаем тренировку
		session, err := uc.sessionRepo.GetByID(txCtx, req.SessionID)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				uc.logger.Warn("CancelSession: session id=%d not found", req.SessionID)
				return ErrSessionNotFound
			}
			uc.logger.Error("CancelSession: failed to get session id=%d: %v", req.SessionID, err)
			return fmt.Errorf("%w: failed to get session: %w", ErrInternal, err)
		}

		// 3. Проверяем владельца
		if req.RequesterID != nil && *req.RequesterID != session.MemberID {
			uc.logger.Warn("CancelSession: session id=%d does not belong to member id=%d", session.ID, *req.RequesterID)
			return ErrNotOwner
		}

		// 4. Проверяем, что тренировка еще не началась
		if session.HasStarted(uc.timeProvider.Now()) {
			uc.logger.Warn("CancelSession: session id=%d has already started", session.ID)
			return ErrAlreadyStarted
		}

		// 5. Удаляем тренировку
		if err := uc.sessionRepo.Delete(txCtx, session.ID); err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				return ErrSessionNotFound
			}
			uc.logger.Error("CancelSession: failed to delete session id=%d: %v", session.ID, err)
			return fmt.Errorf("%w: failed to delete session: %w", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("CancelSession: concurrent update detected: %v", err)
			return ErrConcurrentUpdate
		}
		return err
	}

	uc.logger.Info("CancelSession: successfully cancelled session id=%d", req.SessionID)
	return nil
}
