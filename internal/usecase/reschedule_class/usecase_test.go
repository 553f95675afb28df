package reschedule_class

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/internal/infra/locker"
	classRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/fitnessclass"
	"github.com/m04kA/SMC-GymService/internal/usecase/mocks"
	"github.com/m04kA/SMC-GymService/pkg/ptr"
)

var start = time.Date(2025, 3, 12, 18, 0, 0, 0, time.UTC)

type fixture struct {
	directory     *mocks.Directory
	availability  *mocks.AvailabilityRepo
	classes       *mocks.ClassRepo
	registrations *mocks.RegistrationRepo
	conflicts     *mocks.ConflictDetector
}

func newFixture(registered int) *fixture {
	f := &fixture{
		directory:     &mocks.Directory{},
		availability:  &mocks.AvailabilityRepo{},
		classes:       &mocks.ClassRepo{},
		registrations: &mocks.RegistrationRepo{},
		conflicts:     &mocks.ConflictDetector{},
	}
	f.classes.On("GetByID", mock.Anything, int64(11)).Return(existingClass(), nil)
	f.directory.On("GetTrainer", mock.Anything, int64(2)).Return(&domain.Trainer{ID: 2}, nil)
	f.directory.On("GetRoom", mock.Anything, int64(3)).Return(&domain.Room{ID: 3, Capacity: 10}, nil)
	f.registrations.On("CountByClass", mock.Anything, int64(11)).Return(registered, nil)
	f.availability.On("ListByTrainer", mock.Anything, int64(2)).Return([]*domain.Availability{
		{ID: 1, TrainerID: 2, Entry: domain.OneTime{Interval: domain.TimeInterval{Start: start.Add(-3 * time.Hour), End: start.Add(3 * time.Hour)}}},
	}, nil)
	return f
}

func existingClass() *domain.FitnessClass {
	return &domain.FitnessClass{
		ID:        11,
		Name:      "Yoga",
		TrainerID: 2,
		RoomID:    3,
		Capacity:  8,
		Interval:  domain.TimeInterval{Start: start, End: start.Add(time.Hour)},
	}
}

func (f *fixture) useCase(now time.Time) *UseCase {
	uc := NewUseCase(f.directory, f.availability, f.classes, f.registrations, f.conflicts,
		locker.NoopLocker{}, &mocks.TxManager{}, time.UTC, mocks.Logger{})
	uc.timeProvider = mocks.Clock{At: now}
	return uc
}

func TestUseCase_Execute_MovesClassIgnoringItself(t *testing.T) {
	f := newFixture(4)
	f.conflicts.On("FindConflict", mock.Anything, mock.Anything, mock.Anything, domain.IgnoreClass(11)).
		Return((*domain.Booking)(nil), nil)
	f.classes.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.FitnessClass) bool {
		return c.ID == 11 && c.Interval.Start.Equal(start.Add(30*time.Minute)) && c.Capacity == 8
	})).Return(&domain.FitnessClass{
		ID: 11, Name: "Yoga", TrainerID: 2, RoomID: 3, Capacity: 8,
		Interval: domain.TimeInterval{Start: start.Add(30 * time.Minute), End: start.Add(90 * time.Minute)},
	}, nil)

	resp, err := f.useCase(start.Add(-time.Hour)).Execute(context.Background(), &Request{
		ClassID: 11,
		Start:   ptr.Ptr(start.Add(30 * time.Minute)),
		End:     ptr.Ptr(start.Add(90 * time.Minute)),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, 4, resp.Registrations)
	f.conflicts.AssertNumberOfCalls(t, "FindConflict", 2)
}

func TestUseCase_Execute_CapacityBelowRegistrations(t *testing.T) {
	f := newFixture(6)

	_, err := f.useCase(start.Add(-time.Hour)).Execute(context.Background(), &Request{
		ClassID:     11,
		NewCapacity: ptr.Ptr(5),
	})

	assert.ErrorIs(t, err, ErrBelowRegistrations)
	assert.Equal(t, domain.KindCapacityExceeded, domain.KindOf(err))
}

func TestUseCase_Execute_CapacityAboveRoom(t *testing.T) {
	f := newFixture(0)

	_, err := f.useCase(start.Add(-time.Hour)).Execute(context.Background(), &Request{
		ClassID:     11,
		NewCapacity: ptr.Ptr(11),
	})

	assert.ErrorIs(t, err, ErrRoomCapacityExceeded)
}

func TestUseCase_Execute_AlreadyStarted(t *testing.T) {
	f := newFixture(0)

	_, err := f.useCase(start.Add(time.Minute)).Execute(context.Background(), &Request{
		ClassID:     11,
		NewCapacity: ptr.Ptr(9),
	})

	assert.ErrorIs(t, err, ErrAlreadyStarted)
	f.classes.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_InvertedInterval(t *testing.T) {
	f := newFixture(0)

	_, err := f.useCase(start.Add(-time.Hour)).Execute(context.Background(), &Request{
		ClassID: 11,
		End:     ptr.Ptr(start.Add(-time.Minute)),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_ZeroCapacity(t *testing.T) {
	f := newFixture(0)

	_, err := f.useCase(start.Add(-time.Hour)).Execute(context.Background(), &Request{
		ClassID:     11,
		NewCapacity: ptr.Ptr(0),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	f.classes.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	f := &fixture{classes: &mocks.ClassRepo{}}
	f.classes.On("GetByID", mock.Anything, int64(12)).Return(nil, classRepo.ErrClassNotFound)

	_, err := f.useCase(start).Execute(context.Background(), &Request{ClassID: 12})

	assert.ErrorIs(t, err, ErrClassNotFound)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestUseCase_Execute_TrainerConflict(t *testing.T) {
	f := newFixture(0)
	f.conflicts.On("FindConflict", mock.Anything, domain.TrainerRef(2), mock.Anything, domain.IgnoreClass(11)).
		Return(&domain.Booking{Kind: domain.BookingSession, ID: 3}, nil)

	_, err := f.useCase(start.Add(-time.Hour)).Execute(context.Background(), &Request{
		ClassID: 11,
		Start:   ptr.Ptr(start.Add(time.Hour)),
		End:     ptr.Ptr(start.Add(2 * time.Hour)),
	})

	assert.ErrorIs(t, err, ErrTrainerConflict)
}
