package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GymService/pkg/psqlbuilder"
)

const tableName = "trainer_availabilities"

var columns = []string{
	"id",
	"trainer_id",
	"type",
	"day_of_week",
	"start_time",
	"end_time",
	"created_at",
}

// Repository репозиторий доступности тренеров
//
// Обе разновидности хранятся в одной таблице:
// - WEEKLY: day_of_week 0..6, start_time/end_time - время суток на 1970-01-01 UTC
// - ONE_TIME: day_of_week NULL, start_time/end_time - абсолютный интервал
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет запись доступности
func (r *Repository) Create(ctx context.Context, a *domain.Availability) (*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var (
		dayOfWeek  sql.NullInt16
		start, end time.Time
	)

	switch entry := a.Entry.(type) {
	case domain.Weekly:
		dayOfWeek = sql.NullInt16{Int16: int16(entry.DayOfWeek), Valid: true}
		start, end = entry.StartTime, entry.EndTime
	case domain.OneTime:
		start, end = entry.Interval.Start, entry.Interval.End
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownType, a.Entry)
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("trainer_id", "type", "day_of_week", "start_time", "end_time").
		Values(a.TrainerID, string(a.Entry.Type()), dayOfWeek, start, end).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return a, nil
}

// ListByTrainer получает все записи доступности тренера
func (r *Repository) ListByTrainer(ctx context.Context, trainerID int64) ([]*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"trainer_id": trainerID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTrainer - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTrainer - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Availability, 0)
	for rows.Next() {
		var (
			a          domain.Availability
			entryType  string
			dayOfWeek  sql.NullInt16
			start, end time.Time
		)

		if err := rows.Scan(&a.ID, &a.TrainerID, &entryType, &dayOfWeek, &start, &end, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListByTrainer - scan availability: %w", ErrScanRow, err)
		}

		entry, err := toEntry(domain.AvailabilityType(entryType), dayOfWeek, start, end)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByTrainer - availability id=%d", err, a.ID)
		}
		a.Entry = entry

		result = append(result, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByTrainer - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

// Delete удаляет запись доступности тренера
func (r *Repository) Delete(ctx context.Context, trainerID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id, "trainer_id": trainerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAvailabilityNotFound
	}

	return nil
}

func toEntry(entryType domain.AvailabilityType, dayOfWeek sql.NullInt16, start, end time.Time) (domain.AvailabilityEntry, error) {
	switch entryType {
	case domain.AvailabilityWeekly:
		if !dayOfWeek.Valid {
			return nil, fmt.Errorf("%w: weekly entry without day_of_week", ErrScanRow)
		}
		return domain.Weekly{
			DayOfWeek: time.Weekday(dayOfWeek.Int16),
			StartTime: start,
			EndTime:   end,
		}, nil
	case domain.AvailabilityOneTime:
		return domain.OneTime{Interval: domain.TimeInterval{Start: start, End: end}}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, entryType)
	}
}
