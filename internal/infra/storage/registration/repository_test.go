package registration

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/pkg/dbmetrics"
)

func setupMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return NewRepository(dbmetrics.Wrap(sqlDB, nil, "test")), mock
}

func TestCreate_Duplicate(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO class_registrations")).
		WithArgs(int64(1), int64(2)).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "class_registrations_member_class_key"})

	_, err := repo.Create(context.Background(), &domain.ClassRegistration{MemberID: 1, FitnessClassID: 2})
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ReferenceGone(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO class_registrations")).
		WithArgs(int64(1), int64(2)).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "class_registrations_fitness_class_id_fkey"})

	_, err := repo.Create(context.Background(), &domain.ClassRegistration{MemberID: 1, FitnessClassID: 2})
	assert.ErrorIs(t, err, ErrReferenceNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByClass(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM class_registrations WHERE fitness_class_id = $1")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountByClass(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 7, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExists(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM class_registrations WHERE fitness_class_id = $1 AND member_id = $2")).
		WithArgs(int64(2), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock := setupMock(t)
	start := time.Date(2025, time.March, 10, 18, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM class_registrations cr JOIN fitness_classes fc ON fc.id = cr.fitness_class_id WHERE cr.id = $1")).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "member_id", "fitness_class_id", "start_time", "created_at"}).
			AddRow(int64(9), int64(1), int64(2), start, now))

	reg, err := repo.GetByID(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, start, reg.ClassStart)
	require.NoError(t, mock.ExpectationsWereMet())
}
