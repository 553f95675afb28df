package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/internal/infra/storage/pgerrors"
	"github.com/m04kA/SMC-GymService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GymService/pkg/psqlbuilder"
)

const tableName = "sessions"

var columns = []string{
	"id",
	"member_id",
	"trainer_id",
	"room_id",
	"start_time",
	"end_time",
	"created_at",
	"updated_at",
}

// Ограничения исключения из миграций
var overlapConstraints = map[string]error{
	"sessions_trainer_no_overlap": ErrTrainerOverlap,
	"sessions_room_no_overlap":    ErrRoomOverlap,
	"sessions_member_no_overlap":  ErrMemberOverlap,
}

// Repository репозиторий персональных тренировок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тренировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает тренировку
// Пересечение по тренеру, залу или члену клуба, пойманное ограничением БД,
// возвращается как ErrTrainerOverlap / ErrRoomOverlap / ErrMemberOverlap
func (r *Repository) Create(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("member_id", "trainer_id", "room_id", "start_time", "end_time").
		Values(s.MemberID, s.TrainerID, s.RoomID, s.Interval.Start, s.Interval.End).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if overlapErr := overlapError(err); overlapErr != nil {
			return nil, overlapErr
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return s, nil
}

// GetByID получает тренировку по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	s, err := scanSession(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan session: %w", ErrScanRow, err)
	}

	return s, nil
}

// List получает тренировки по фильтру, отсортированные по началу
// Поддерживает фильтрацию по:
// - тренеру, залу, члену клуба (условия объединяются через AND)
// - окну Window: только тренировки, пересекающиеся с ним (start < window.end AND end > window.start)
// - StartsFrom: только тренировки, начинающиеся не раньше указанного момента
//
// Внутри транзакции найденные строки блокируются (FOR UPDATE),
// чтобы проверка конфликтов и запись шли по одному снимку
func (r *Repository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("start_time ASC", "id ASC")

	if filter.TrainerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"trainer_id": *filter.TrainerID})
	}
	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}
	if filter.MemberID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"member_id": *filter.MemberID})
	}
	if filter.Window != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.Lt{"start_time": filter.Window.End}).
			Where(squirrel.Gt{"end_time": filter.Window.Start})
	}
	if filter.StartsFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_time": *filter.StartsFrom})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	sessions := make([]*domain.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan session: %w", ErrScanRow, err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return sessions, nil
}

// Update переносит тренировку: меняет интервал, тренера и зал
// Идентификатор и член клуба не меняются
func (r *Repository) Update(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("trainer_id", s.TrainerID).
		Set("room_id", s.RoomID).
		Set("start_time", s.Interval.Start).
		Set("end_time", s.Interval.End).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		if overlapErr := overlapError(err); overlapErr != nil {
			return nil, overlapErr
		}
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return s, nil
}

// Delete удаляет тренировку (отмена)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
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
		return ErrSessionNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSession(row rowScanner) (*domain.Session, error) {
	var s domain.Session
	err := row.Scan(
		&s.ID,
		&s.MemberID,
		&s.TrainerID,
		&s.RoomID,
		&s.Interval.Start,
		&s.Interval.End,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func overlapError(err error) error {
	constraint, ok := pgerrors.Constraint(err, pgerrors.CodeExclusionViolation)
	if !ok {
		return nil
	}
	if mapped, known := overlapConstraints[constraint]; known {
		return fmt.Errorf("%w: %w", mapped, err)
	}
	return nil
}
