package add_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
	directoryRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/directory"
	"github.com/m04kA/SMC-GymService/pkg/ptr"
	"github.com/m04kA/SMC-GymService/pkg/txmanager"
	"github.com/m04kA/SMC-GymService/pkg/types"
)

// UseCase use case добавления доступности тренера
type UseCase struct {
	directory        DirectoryRepository
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	local            *time.Location
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	directory DirectoryRepository,
	availabilityRepo AvailabilityRepository,
	txManager TransactionManager,
	local *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		directory:        directory,
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		local:            local,
		logger:           logger,
	}
}

// Execute выполняет use case добавления доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddAvailability: trainer=%d, type=%s", req.TrainerID, req.Type)

	// 1. Валидация и построение записи
	entry, err := buildEntry(req)
	if err != nil {
		uc.logger.Warn("AddAvailability: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Availability

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Проверяем тренера
		if _, err := uc.directory.GetTrainer(txCtx, req.TrainerID); err != nil {
			if errors.Is(err, directoryRepo.ErrTrainerNotFound) {
				uc.logger.Warn("AddAvailability: trainer id=%d not found", req.TrainerID)
				return ErrTrainerNotFound
			}
			uc.logger.Error("AddAvailability: failed to get trainer id=%d: %v", req.TrainerID, err)
			return fmt.Errorf("%w: failed to get trainer: %w", ErrInternal, err)
		}

		// 3. Проверяем пересечение с записями того же типа
		existing, err := uc.availabilityRepo.ListByTrainer(txCtx, req.TrainerID)
		if err != nil {
			uc.logger.Error("AddAvailability: failed to get availability of trainer id=%d: %v", req.TrainerID, err)
			return fmt.Errorf("%w: failed to get availability: %w", ErrInternal, err)
		}

		if other, ok := overlapsExisting(entry, existing, uc.local); ok {
			uc.logger.Warn("AddAvailability: overlaps availability id=%d of trainer id=%d", other.ID, req.TrainerID)
			return ErrOverlap
		}

		// 4. Создаем запись
		created, err := uc.availabilityRepo.Create(txCtx, &domain.Availability{
			TrainerID: req.TrainerID,
			Entry:     entry,
		})
		if err != nil {
			uc.logger.Error("AddAvailability: failed to create availability: %v", err)
			return fmt.Errorf("%w: failed to create availability: %w", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("AddAvailability: concurrent update detected: %v", err)
			return nil, ErrConcurrentUpdate
		}
		return nil, err
	}

	uc.logger.Info("AddAvailability: successfully created availability id=%d", result.ID)

	return toResponse(result), nil
}

func toResponse(a *domain.Availability) *Response {
	resp := &Response{
		ID:        a.ID,
		TrainerID: a.TrainerID,
		Type:      a.Entry.Type(),
		CreatedAt: a.CreatedAt,
	}

	switch e := a.Entry.(type) {
	case domain.Weekly:
		resp.DayOfWeek = ptr.Ptr(int(e.DayOfWeek))
		resp.StartTime = ptr.Ptr(types.NewTimeString(e.StartTime.In(time.UTC)))
		resp.EndTime = ptr.Ptr(types.NewTimeString(e.EndTime.In(time.UTC)))
	case domain.OneTime:
		resp.Start = ptr.Ptr(e.Interval.Start)
		resp.End = ptr.Ptr(e.Interval.End)
	}

	return resp
}
