package register_for_class

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/internal/infra/locker"
	registrationRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/registration"
	"github.com/m04kA/SMC-GymService/internal/usecase/mocks"
)

var (
	now       = time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC)
	classFrom = now.Add(time.Hour)
)

type fixture struct {
	directory     *mocks.Directory
	classes       *mocks.ClassRepo
	registrations *mocks.RegistrationRepo
	conflicts     *mocks.ConflictDetector
}

func newFixture(class *domain.FitnessClass) *fixture {
	f := &fixture{
		directory:     &mocks.Directory{},
		classes:       &mocks.ClassRepo{},
		registrations: &mocks.RegistrationRepo{},
		conflicts:     &mocks.ConflictDetector{},
	}
	f.directory.On("GetMember", mock.Anything, int64(1)).Return(&domain.Member{ID: 1}, nil)
	f.classes.On("GetByID", mock.Anything, class.ID).Return(class, nil)
	return f
}

func (f *fixture) useCase() *UseCase {
	uc := NewUseCase(f.directory, f.classes, f.registrations, f.conflicts, locker.NoopLocker{}, &mocks.TxManager{}, mocks.Logger{})
	uc.timeProvider = mocks.Clock{At: now}
	return uc
}

func class(start time.Time, capacity int) *domain.FitnessClass {
	return &domain.FitnessClass{
		ID:        11,
		TrainerID: 2,
		RoomID:    3,
		Capacity:  capacity,
		Interval:  domain.TimeInterval{Start: start, End: start.Add(time.Hour)},
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	f := newFixture(class(classFrom, 10))
	f.registrations.On("Exists", mock.Anything, int64(1), int64(11)).Return(false, nil)
	f.registrations.On("CountByClass", mock.Anything, int64(11)).Return(3, nil)
	f.conflicts.On("FindConflict", mock.Anything, domain.MemberRef(1), mock.Anything, domain.IgnoreClass(11)).
		Return((*domain.Booking)(nil), nil)
	f.registrations.On("Create", mock.Anything, mock.Anything).
		Return(&domain.ClassRegistration{ID: 100, MemberID: 1, FitnessClassID: 11, CreatedAt: now}, nil)

	resp, err := f.useCase().Execute(context.Background(), &Request{MemberID: 1, ClassID: 11})

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, 6, resp.RemainingSpots)
	assert.True(t, resp.ClassStart.Equal(classFrom))
}

func TestUseCase_Execute_ClassFull(t *testing.T) {
	f := newFixture(class(classFrom, 10))
	f.registrations.On("Exists", mock.Anything, int64(1), int64(11)).Return(false, nil)
	f.registrations.On("CountByClass", mock.Anything, int64(11)).Return(10, nil)

	_, err := f.useCase().Execute(context.Background(), &Request{MemberID: 1, ClassID: 11})

	assert.ErrorIs(t, err, ErrClassFull)
	assert.Equal(t, domain.KindCapacityExceeded, domain.KindOf(err))
	f.registrations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_ClassInPast(t *testing.T) {
	f := newFixture(class(now.Add(-time.Hour), 10))

	_, err := f.useCase().Execute(context.Background(), &Request{MemberID: 1, ClassID: 11})

	assert.ErrorIs(t, err, ErrAlreadyStarted)
	assert.Equal(t, domain.KindAlreadyStarted, domain.KindOf(err))
}

func TestUseCase_Execute_AlreadyRegistered(t *testing.T) {
	f := newFixture(class(classFrom, 10))
	f.registrations.On("Exists", mock.Anything, int64(1), int64(11)).Return(true, nil)

	_, err := f.useCase().Execute(context.Background(), &Request{MemberID: 1, ClassID: 11})

	assert.ErrorIs(t, err, ErrAlreadyRegistered)
	f.registrations.AssertNotCalled(t, "CountByClass", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_MemberHasSession(t *testing.T) {
	// Тренировка 14:00-15:00, занятие 14:30-15:30
	f := newFixture(class(now.Add(90*time.Minute), 10))
	f.registrations.On("Exists", mock.Anything, int64(1), int64(11)).Return(false, nil)
	f.registrations.On("CountByClass", mock.Anything, int64(11)).Return(0, nil)
	f.conflicts.On("FindConflict", mock.Anything, domain.MemberRef(1), mock.Anything, domain.IgnoreClass(11)).
		Return(&domain.Booking{Kind: domain.BookingSession, ID: 5}, nil)

	_, err := f.useCase().Execute(context.Background(), &Request{MemberID: 1, ClassID: 11})

	assert.ErrorIs(t, err, ErrMemberConflict)
	assert.Equal(t, domain.KindResourceConflict, domain.KindOf(err))
}

func TestUseCase_Execute_DuplicateFromStorage(t *testing.T) {
	f := newFixture(class(classFrom, 10))
	f.registrations.On("Exists", mock.Anything, int64(1), int64(11)).Return(false, nil)
	f.registrations.On("CountByClass", mock.Anything, int64(11)).Return(0, nil)
	f.conflicts.On("FindConflict", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return((*domain.Booking)(nil), nil)
	f.registrations.On("Create", mock.Anything, mock.Anything).Return(nil, registrationRepo.ErrAlreadyRegistered)

	_, err := f.useCase().Execute(context.Background(), &Request{MemberID: 1, ClassID: 11})

	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestUseCase_Execute_ClassRemovedBeforeInsert(t *testing.T) {
	f := newFixture(class(classFrom, 10))
	f.registrations.On("Exists", mock.Anything, int64(1), int64(11)).Return(false, nil)
	f.registrations.On("CountByClass", mock.Anything, int64(11)).Return(0, nil)
	f.conflicts.On("FindConflict", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return((*domain.Booking)(nil), nil)
	f.registrations.On("Create", mock.Anything, mock.Anything).Return(nil, registrationRepo.ErrReferenceNotFound)

	_, err := f.useCase().Execute(context.Background(), &Request{MemberID: 1, ClassID: 11})

	assert.ErrorIs(t, err, ErrReferenceNotFound)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	f := newFixture(class(classFrom, 10))

	_, err := f.useCase().Execute(context.Background(), &Request{MemberID: 0, ClassID: 11})

	assert.ErrorIs(t, err, ErrInvalidInput)
	f.directory.AssertNotCalled(t, "GetMember", mock.Anything, mock.Anything)
}
