package book_session

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/internal/infra/locker"
	directoryRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/directory"
	sessionRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/session"
	"github.com/m04kA/SMC-GymService/internal/usecase/mocks"
	"github.com/m04kA/SMC-GymService/pkg/txmanager"
	"github.com/m04kA/SMC-GymService/pkg/types"
)

// 2025-03-10 - понедельник
func at(h, m int) time.Time {
	return time.Date(2025, 3, 10, h, m, 0, 0, time.UTC)
}

type fixture struct {
	directory    *mocks.Directory
	availability *mocks.AvailabilityRepo
	sessions     *mocks.SessionRepo
	conflicts    *mocks.ConflictDetector
	tx           *mocks.TxManager
	locker       ResourceLocker
}

func newFixture() *fixture {
	return &fixture{
		directory:    &mocks.Directory{},
		availability: &mocks.AvailabilityRepo{},
		sessions:     &mocks.SessionRepo{},
		conflicts:    &mocks.ConflictDetector{},
		tx:           &mocks.TxManager{},
		locker:       locker.NoopLocker{},
	}
}

func (f *fixture) useCase() *UseCase {
	return NewUseCase(f.directory, f.availability, f.sessions, f.conflicts, f.locker, f.tx, time.UTC, mocks.Logger{})
}

func (f *fixture) participantsExist() {
	f.directory.On("GetMember", mock.Anything, int64(1)).Return(&domain.Member{ID: 1}, nil)
	f.directory.On("GetTrainer", mock.Anything, int64(2)).Return(&domain.Trainer{ID: 2, Name: "Anna"}, nil)
	f.directory.On("GetRoom", mock.Anything, int64(3)).Return(&domain.Room{ID: 3, Capacity: 10}, nil)
}

func (f *fixture) mondayMorning(t *testing.T) {
	weekly, err := domain.NewWeekly(time.Monday, types.TimeString("09:00"), types.TimeString("12:00"))
	require.NoError(t, err)
	f.availability.On("ListByTrainer", mock.Anything, int64(2)).
		Return([]*domain.Availability{{ID: 1, TrainerID: 2, Entry: weekly}}, nil)
}

func (f *fixture) noConflicts() {
	f.conflicts.On("FindConflict", mock.Anything, mock.Anything, mock.Anything, domain.Ignore{}).
		Return((*domain.Booking)(nil), nil)
}

func request(start, end time.Time) *Request {
	return &Request{MemberID: 1, TrainerID: 2, RoomID: 3, Start: start, End: end}
}

type busyLocker struct{}

func (busyLocker) Lock(context.Context, ...string) (locker.Unlock, error) {
	return nil, locker.ErrLockNotAcquired
}

func TestUseCase_Execute_Success(t *testing.T) {
	f := newFixture()
	f.participantsExist()
	f.mondayMorning(t)
	f.noConflicts()

	created := at(8, 0)
	f.sessions.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Session) bool {
		return s.MemberID == 1 && s.TrainerID == 2 && *s.RoomID == 3 &&
			s.Interval.Start.Equal(at(10, 0)) && s.Interval.End.Equal(at(11, 0))
	})).Return(&domain.Session{
		ID:        10,
		MemberID:  1,
		TrainerID: 2,
		Interval:  domain.TimeInterval{Start: at(10, 0), End: at(11, 0)},
		CreatedAt: created,
	}, nil)

	resp, err := f.useCase().Execute(context.Background(), request(at(10, 0), at(11, 0)))

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, int64(3), resp.RoomID)
	assert.True(t, resp.Start.Equal(at(10, 0)))
	assert.True(t, resp.End.Equal(at(11, 0)))
	assert.Equal(t, created, resp.CreatedAt)
	f.conflicts.AssertNumberOfCalls(t, "FindConflict", 3)
}

func TestUseCase_Execute_InvalidInterval(t *testing.T) {
	f := newFixture()

	_, err := f.useCase().Execute(context.Background(), request(at(11, 0), at(10, 0)))

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	f.directory.AssertNotCalled(t, "GetMember", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_MemberNotFound(t *testing.T) {
	f := newFixture()
	f.directory.On("GetMember", mock.Anything, int64(1)).Return(nil, directoryRepo.ErrMemberNotFound)

	_, err := f.useCase().Execute(context.Background(), request(at(10, 0), at(11, 0)))

	assert.ErrorIs(t, err, ErrMemberNotFound)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	f.directory.AssertNotCalled(t, "GetTrainer", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_NotCovered(t *testing.T) {
	f := newFixture()
	f.participantsExist()
	f.mondayMorning(t)

	_, err := f.useCase().Execute(context.Background(), request(at(11, 30), at(12, 30)))

	assert.ErrorIs(t, err, ErrTrainerNotAvailable)
	assert.ErrorIs(t, err, domain.ErrNotAvailable)
	f.conflicts.AssertNotCalled(t, "FindConflict", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Execute_TrainerConflict(t *testing.T) {
	f := newFixture()
	f.participantsExist()
	f.mondayMorning(t)
	f.conflicts.On("FindConflict", mock.Anything, domain.TrainerRef(2), mock.Anything, domain.Ignore{}).
		Return(&domain.Booking{Kind: domain.BookingClass, ID: 7}, nil)

	_, err := f.useCase().Execute(context.Background(), request(at(10, 0), at(11, 0)))

	assert.ErrorIs(t, err, ErrTrainerConflict)
	assert.Equal(t, "book_session: trainer conflict", err.Error())
	f.sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_RoomConflict(t *testing.T) {
	f := newFixture()
	f.participantsExist()
	f.mondayMorning(t)
	f.conflicts.On("FindConflict", mock.Anything, domain.TrainerRef(2), mock.Anything, domain.Ignore{}).
		Return((*domain.Booking)(nil), nil)
	f.conflicts.On("FindConflict", mock.Anything, domain.MemberRef(1), mock.Anything, domain.Ignore{}).
		Return((*domain.Booking)(nil), nil)
	f.conflicts.On("FindConflict", mock.Anything, domain.RoomRef(3), mock.Anything, domain.Ignore{}).
		Return(&domain.Booking{Kind: domain.BookingSession, ID: 4}, nil)

	_, err := f.useCase().Execute(context.Background(), request(at(10, 0), at(11, 0)))

	assert.ErrorIs(t, err, ErrRoomConflict)
}

func TestUseCase_Execute_StorageOverlap(t *testing.T) {
	f := newFixture()
	f.participantsExist()
	f.mondayMorning(t)
	f.noConflicts()
	f.sessions.On("Create", mock.Anything, mock.Anything).Return(nil, sessionRepo.ErrMemberOverlap)

	_, err := f.useCase().Execute(context.Background(), request(at(10, 0), at(11, 0)))

	assert.ErrorIs(t, err, ErrMemberConflict)
}

func TestUseCase_Execute_SerializationFailure(t *testing.T) {
	f := newFixture()
	f.participantsExist()
	f.mondayMorning(t)
	f.noConflicts()
	f.sessions.On("Create", mock.Anything, mock.Anything).
		Return(&domain.Session{ID: 10, Interval: domain.TimeInterval{Start: at(10, 0), End: at(11, 0)}}, nil)
	f.tx.Err = txmanager.ErrSerializationFailure

	_, err := f.useCase().Execute(context.Background(), request(at(10, 0), at(11, 0)))

	assert.ErrorIs(t, err, ErrConcurrentBooking)
	assert.ErrorIs(t, err, domain.ErrResourceConflict)
}

func TestUseCase_Execute_SerializationFailureFromInsert(t *testing.T) {
	f := newFixture()
	f.participantsExist()
	f.mondayMorning(t)
	f.noConflicts()
	insertErr := fmt.Errorf("%w: Create - execute insert: %w", sessionRepo.ErrExecQuery, &pq.Error{Code: "40001"})
	f.sessions.On("Create", mock.Anything, mock.Anything).Return(nil, insertErr)

	_, err := f.useCase().Execute(context.Background(), request(at(10, 0), at(11, 0)))

	assert.ErrorIs(t, err, ErrConcurrentBooking)
	assert.Equal(t, domain.KindResourceConflict, domain.KindOf(err))
}

func TestUseCase_Execute_LockNotAcquired(t *testing.T) {
	f := newFixture()
	f.locker = busyLocker{}

	_, err := f.useCase().Execute(context.Background(), request(at(10, 0), at(11, 0)))

	assert.ErrorIs(t, err, ErrConcurrentBooking)
	f.directory.AssertNotCalled(t, "GetMember", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_RepositoryError(t *testing.T) {
	f := newFixture()
	f.participantsExist()
	f.availability.On("ListByTrainer", mock.Anything, int64(2)).Return(nil, errors.New("connection reset"))

	_, err := f.useCase().Execute(context.Background(), request(at(10, 0), at(11, 0)))

	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
}
