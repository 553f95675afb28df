package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GymService/pkg/psqlbuilder"
)

// Repository справочник членов клуба, тренеров и залов (только чтение)
// Профили ведутся другими частями системы, движку нужны только идентичность,
// имя тренера и вместимость зала
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр справочника
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetMember получает члена клуба по ID
func (r *Repository) GetMember(ctx context.Context, id int64) (*domain.Member, error) {
	var m domain.Member
	err := r.getOne(ctx, "GetMember", "members", id, []string{"id", "name"}, &m.ID, &m.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetTrainer получает тренера по ID
func (r *Repository) GetTrainer(ctx context.Context, id int64) (*domain.Trainer, error) {
	var t domain.Trainer
	err := r.getOne(ctx, "GetTrainer", "trainers", id, []string{"id", "name"}, &t.ID, &t.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTrainerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetRoom получает зал по ID
func (r *Repository) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	err := r.getOne(ctx, "GetRoom", "rooms", id, []string{"id", "name", "capacity"}, &room.ID, &room.Name, &room.Capacity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// ListTrainers получает всех тренеров
func (r *Repository) ListTrainers(ctx context.Context) ([]*domain.Trainer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("trainers").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListTrainers - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListTrainers - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	trainers := make([]*domain.Trainer, 0)
	for rows.Next() {
		var t domain.Trainer
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("%w: ListTrainers - scan trainer: %w", ErrScanRow, err)
		}
		trainers = append(trainers, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListTrainers - rows error: %w", ErrScanRow, err)
	}

	return trainers, nil
}

// getOne выбирает одну строку по id; sql.ErrNoRows возвращается как есть
func (r *Repository) getOne(ctx context.Context, op, table string, id int64, cols []string, dest ...interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(cols...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if err != nil {
		return fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
	}

	return nil
}
