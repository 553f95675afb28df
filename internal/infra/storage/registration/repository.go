package registration

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

const tableName = "class_registrations"

// Repository репозиторий записей на групповые занятия
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись на занятие
// Повторная запись того же члена клуба возвращает ErrAlreadyRegistered,
// удаленные член клуба или занятие - ErrReferenceNotFound
func (r *Repository) Create(ctx context.Context, reg *domain.ClassRegistration) (*domain.ClassRegistration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("member_id", "fitness_class_id").
		Values(reg.MemberID, reg.FitnessClassID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&reg.ID, &reg.CreatedAt)
	if err != nil {
		if pgerrors.IsUniqueViolation(err) {
			return nil, ErrAlreadyRegistered
		}
		if pgerrors.IsForeignKeyViolation(err) {
			return nil, ErrReferenceNotFound
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return reg, nil
}

// GetByID получает запись вместе с началом занятия
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ClassRegistration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"cr.id",
		"cr.member_id",
		"cr.fitness_class_id",
		"fc.start_time",
		"cr.created_at",
	).
		From(tableName + " cr").
		Join("fitness_classes fc ON fc.id = cr.fitness_class_id").
		Where(squirrel.Eq{"cr.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	var reg domain.ClassRegistration
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reg.ID,
		&reg.MemberID,
		&reg.FitnessClassID,
		&reg.ClassStart,
		&reg.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRegistrationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan registration: %w", ErrScanRow, err)
	}

	return &reg, nil
}

// CountByClass возвращает количество записей на занятие
func (r *Repository) CountByClass(ctx context.Context, classID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(tableName).
		Where(squirrel.Eq{"fitness_class_id": classID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByClass - build select query: %w", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByClass - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// Exists проверяет, записан ли член клуба на занятие
func (r *Repository) Exists(ctx context.Context, memberID, classID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(tableName).
		Where(squirrel.Eq{"member_id": memberID, "fitness_class_id": classID}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %w", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: Exists - scan result: %w", ErrScanRow, err)
	}

	return exists, nil
}

// Delete удаляет запись (отмена)
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
		return ErrRegistrationNotFound
	}

	return nil
}
