package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

// UseCase use case получения свободных слотов всех тренеров на дату
type UseCase struct {
	directory        DirectoryRepository
	availabilityRepo AvailabilityRepository
	conflicts        ConflictDetector
	local            *time.Location
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	directory DirectoryRepository,
	availabilityRepo AvailabilityRepository,
	conflicts ConflictDetector,
	local *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		directory:        directory,
		availabilityRepo: availabilityRepo,
		conflicts:        conflicts,
		local:            local,
		logger:           logger,
	}
}

// Execute выполняет use case получения свободных слотов
// Операция только читает данные, повторный вызов без записей между ними дает тот же результат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date)

	// 1. Парсим дату в локальной зоне
	date, err := parseDate(req.Date, uc.local)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Строим сетку слотов и окно суток
	grid := domain.SlotGrid(date, uc.local)
	day := domain.DayBounds(date, uc.local)

	// 3. Получаем всех тренеров
	trainers, err := uc.directory.ListTrainers(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list trainers: %v", err)
		return nil, fmt.Errorf("%w: failed to list trainers: %w", ErrInternal, err)
	}

	// 4. Для каждого тренера отбираем покрытые и свободные слоты
	available := make([]domain.AvailableSlot, 0)
	for _, trainer := range trainers {
		availabilities, err := uc.availabilityRepo.ListByTrainer(ctx, trainer.ID)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get availability of trainer id=%d: %v", trainer.ID, err)
			return nil, fmt.Errorf("%w: failed to get availability: %w", ErrInternal, err)
		}

		entries := domain.EntriesOf(availabilities)
		if len(entries) == 0 {
			continue
		}

		bookings, err := uc.conflicts.Bookings(ctx, domain.TrainerRef(trainer.ID), &day)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get bookings of trainer id=%d: %v", trainer.ID, err)
			return nil, fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		available = append(available, trainerSlots(trainer, grid, entries, bookings, uc.local)...)
	}

	// 5. Сортируем по времени начала, затем по имени тренера
	domain.SortSlots(available)

	uc.logger.Info("GetAvailableSlots: found %d slots for %d trainers on %s",
		len(available), len(trainers), date.Format(domain.DateFormat))

	return &Response{
		Date:  date,
		Slots: toSlots(available),
	}, nil
}
