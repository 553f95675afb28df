package fitnessclass

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/internal/infra/storage/pgerrors"
	"github.com/m04kA/SMC-GymService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GymService/pkg/psqlbuilder"
)

const tableName = "fitness_classes"

var columns = []string{
	"id",
	"name",
	"trainer_id",
	"room_id",
	"start_time",
	"end_time",
	"capacity",
	"created_at",
	"updated_at",
}

var overlapConstraints = map[string]error{
	"fitness_classes_trainer_no_overlap": ErrTrainerOverlap,
	"fitness_classes_room_no_overlap":    ErrRoomOverlap,
}

// Repository репозиторий групповых занятий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория занятий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает занятие
func (r *Repository) Create(ctx context.Context, c *domain.FitnessClass) (*domain.FitnessClass, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("name", "trainer_id", "room_id", "start_time", "end_time", "capacity").
		Values(c.Name, c.TrainerID, c.RoomID, c.Interval.Start, c.Interval.End, c.Capacity).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if overlapErr := overlapError(err); overlapErr != nil {
			return nil, overlapErr
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return c, nil
}

// GetByID получает занятие по ID
// Внутри транзакции строка блокируется (FOR UPDATE), что сериализует
// запись на занятие и изменение его вместимости
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.FitnessClass, error) {
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

	c, err := scanClass(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClassNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan class: %w", ErrScanRow, err)
	}

	return c, nil
}

// List получает занятия по фильтру (тренер, зал, окно, начало не раньше)
// MemberID фильтра не используется - для занятий члена клуба есть ListForMember
func (r *Repository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.FitnessClass, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("start_time ASC", "id ASC")

	if filter.TrainerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"trainer_id": *filter.TrainerID})
	}
	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *filter.RoomID})
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

	return r.queryClasses(ctx, "List", selectBuilder)
}

// ListForMember получает занятия, на которые записан член клуба
// window == nil - все занятия
func (r *Repository) ListForMember(ctx context.Context, memberID int64, window *domain.TimeInterval) ([]*domain.FitnessClass, error) {
	selectBuilder := psqlbuilder.Select(qualifiedColumns("fc")...).
		From(tableName + " fc").
		Join("class_registrations cr ON cr.fitness_class_id = fc.id").
		Where(squirrel.Eq{"cr.member_id": memberID}).
		OrderBy("fc.start_time ASC", "fc.id ASC")

	if window != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.Lt{"fc.start_time": window.End}).
			Where(squirrel.Gt{"fc.end_time": window.Start})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF fc")
	}

	return r.queryClasses(ctx, "ListForMember", selectBuilder)
}

// ListUpcoming получает занятия, начинающиеся строго после after, с именами тренера и зала
// и числом записей. IsRegistered заполняется для memberID, при nil всегда false
func (r *Repository) ListUpcoming(ctx context.Context, after time.Time, memberID *int64) ([]*domain.ClassOverview, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(qualifiedColumns("fc")...).
		Column("t.name AS trainer_name").
		Column("r.name AS room_name").
		Column("COUNT(cr.id) AS registrations")

	if memberID != nil {
		selectBuilder = selectBuilder.Column("COALESCE(BOOL_OR(cr.member_id = ?), FALSE) AS is_registered", *memberID)
	} else {
		selectBuilder = selectBuilder.Column("FALSE AS is_registered")
	}

	query, args, err := selectBuilder.
		From(tableName + " fc").
		Join("trainers t ON t.id = fc.trainer_id").
		Join("rooms r ON r.id = fc.room_id").
		LeftJoin("class_registrations cr ON cr.fitness_class_id = fc.id").
		Where(squirrel.Gt{"fc.start_time": after}).
		GroupBy("fc.id", "t.name", "r.name").
		OrderBy("fc.start_time ASC", "fc.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcoming - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcoming - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	overviews := make([]*domain.ClassOverview, 0)
	for rows.Next() {
		var (
			c        domain.FitnessClass
			overview domain.ClassOverview
		)
		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.TrainerID,
			&c.RoomID,
			&c.Interval.Start,
			&c.Interval.End,
			&c.Capacity,
			&c.CreatedAt,
			&c.UpdatedAt,
			&overview.TrainerName,
			&overview.RoomName,
			&overview.Registrations,
			&overview.IsRegistered,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListUpcoming - scan class: %w", ErrScanRow, err)
		}
		overview.Class = &c
		overviews = append(overviews, &overview)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListUpcoming - rows error: %w", ErrScanRow, err)
	}

	return overviews, nil
}

// Update переносит занятие: интервал, тренер, зал и вместимость
func (r *Repository) Update(ctx context.Context, c *domain.FitnessClass) (*domain.FitnessClass, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("name", c.Name).
		Set("trainer_id", c.TrainerID).
		Set("room_id", c.RoomID).
		Set("start_time", c.Interval.Start).
		Set("end_time", c.Interval.End).
		Set("capacity", c.Capacity).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": c.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClassNotFound
	}
	if err != nil {
		if overlapErr := overlapError(err); overlapErr != nil {
			return nil, overlapErr
		}
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return c, nil
}

func (r *Repository) queryClasses(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) ([]*domain.FitnessClass, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	classes := make([]*domain.FitnessClass, 0)
	for rows.Next() {
		c, err := scanClass(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan class: %w", ErrScanRow, op, err)
		}
		classes = append(classes, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return classes, nil
}

func qualifiedColumns(alias string) []string {
	qualified := make([]string, len(columns))
	for i, column := range columns {
		qualified[i] = alias + "." + column
	}
	return qualified
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanClass(row rowScanner) (*domain.FitnessClass, error) {
	var c domain.FitnessClass
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.TrainerID,
		&c.RoomID,
		&c.Interval.Start,
		&c.Interval.End,
		&c.Capacity,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
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
