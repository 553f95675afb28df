package session

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GymService/pkg/ptr"
)

func setupMock(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db := dbmetrics.Wrap(sqlDB, nil, "test")
	return NewRepository(db), db, mock
}

func sampleInterval() domain.TimeInterval {
	start := time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC)
	return domain.TimeInterval{Start: start, End: start.Add(time.Hour)}
}

func TestCreate(t *testing.T) {
	repo, _, mock := setupMock(t)
	interval := sampleInterval()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO sessions")).
		WithArgs(int64(1), int64(2), int64(3), interval.Start, interval.End).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(10), now, now))

	created, err := repo.Create(context.Background(), &domain.Session{
		MemberID:  1,
		TrainerID: 2,
		RoomID:    ptr.Ptr(int64(3)),
		Interval:  interval,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ExclusionViolation(t *testing.T) {
	repo, _, mock := setupMock(t)
	interval := sampleInterval()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO sessions")).
		WillReturnError(&pq.Error{Code: "23P01", Constraint: "sessions_room_no_overlap"})

	_, err := repo.Create(context.Background(), &domain.Session{
		MemberID:  1,
		TrainerID: 2,
		RoomID:    ptr.Ptr(int64(3)),
		Interval:  interval,
	})

	assert.ErrorIs(t, err, ErrRoomOverlap)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, _, mock := setupMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM sessions WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_WindowInTransaction(t *testing.T) {
	repo, db, mock := setupMock(t)
	interval := sampleInterval()
	now := time.Now()

	mock.ExpectBegin()
	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	mock.ExpectQuery(regexp.QuoteMeta("FROM sessions WHERE trainer_id = $1 AND start_time < $2 AND end_time > $3 ORDER BY start_time ASC, id ASC FOR UPDATE")).
		WithArgs(int64(2), interval.End, interval.Start).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(10), int64(1), int64(2), nil, interval.Start, interval.End, now, now))

	sessions, err := repo.List(ctx, domain.BookingFilter{TrainerID: ptr.Ptr(int64(2)), Window: &interval})
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Nil(t, sessions[0].RoomID)
	assert.Equal(t, interval.Start, sessions[0].Interval.Start)

	mock.ExpectRollback()
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	repo, _, mock := setupMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 5)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
