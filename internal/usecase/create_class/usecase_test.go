package create_class

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/internal/infra/locker"
	directoryRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/directory"
	classRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/fitnessclass"
	"github.com/m04kA/SMC-GymService/internal/usecase/mocks"
)

var (
	start = time.Date(2025, 3, 12, 18, 0, 0, 0, time.UTC)
	end   = start.Add(time.Hour)
)

type fixture struct {
	directory    *mocks.Directory
	availability *mocks.AvailabilityRepo
	classes      *mocks.ClassRepo
	conflicts    *mocks.ConflictDetector
}

func newFixture(roomCapacity int) *fixture {
	f := &fixture{
		directory:    &mocks.Directory{},
		availability: &mocks.AvailabilityRepo{},
		classes:      &mocks.ClassRepo{},
		conflicts:    &mocks.ConflictDetector{},
	}
	f.directory.On("GetTrainer", mock.Anything, int64(2)).Return(&domain.Trainer{ID: 2}, nil)
	f.directory.On("GetRoom", mock.Anything, int64(3)).Return(&domain.Room{ID: 3, Capacity: roomCapacity}, nil)
	f.availability.On("ListByTrainer", mock.Anything, int64(2)).Return([]*domain.Availability{
		{ID: 1, TrainerID: 2, Entry: domain.OneTime{Interval: domain.TimeInterval{Start: start.Add(-time.Hour), End: end.Add(time.Hour)}}},
	}, nil)
	return f
}

func (f *fixture) useCase() *UseCase {
	return NewUseCase(f.directory, f.availability, f.classes, f.conflicts, locker.NoopLocker{}, &mocks.TxManager{}, time.UTC, mocks.Logger{})
}

func request(capacity int) *Request {
	return &Request{Name: " Yoga ", TrainerID: 2, RoomID: 3, Start: start, End: end, Capacity: capacity}
}

func TestUseCase_Execute_Success(t *testing.T) {
	f := newFixture(20)
	f.conflicts.On("FindConflict", mock.Anything, mock.Anything, mock.Anything, domain.Ignore{}).
		Return((*domain.Booking)(nil), nil)
	f.classes.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.FitnessClass) bool {
		return c.Name == "Yoga" && c.Capacity == 12 && c.RoomID == 3
	})).Return(&domain.FitnessClass{
		ID: 11, Name: "Yoga", TrainerID: 2, RoomID: 3, Capacity: 12,
		Interval: domain.TimeInterval{Start: start, End: end},
	}, nil)

	resp, err := f.useCase().Execute(context.Background(), request(12))

	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, "Yoga", resp.Name)
	assert.Equal(t, 12, resp.Capacity)
	f.conflicts.AssertNumberOfCalls(t, "FindConflict", 2)
}

func TestUseCase_Execute_CapacityAboveRoom(t *testing.T) {
	f := newFixture(2)

	_, err := f.useCase().Execute(context.Background(), request(3))

	assert.ErrorIs(t, err, ErrRoomCapacityExceeded)
	assert.Equal(t, domain.KindCapacityExceeded, domain.KindOf(err))
	f.classes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_InvalidRequests(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{"zero capacity", request(0)},
		{"negative capacity", request(-1)},
		{"empty name", &Request{Name: "  ", TrainerID: 2, RoomID: 3, Start: start, End: end, Capacity: 1}},
		{"long name", &Request{Name: strings.Repeat("a", domain.MaxClassNameLen+1), TrainerID: 2, RoomID: 3, Start: start, End: end, Capacity: 1}},
		{"inverted interval", &Request{Name: "Yoga", TrainerID: 2, RoomID: 3, Start: end, End: start, Capacity: 1}},
		{"missing room", &Request{Name: "Yoga", TrainerID: 2, Start: start, End: end, Capacity: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(20)

			_, err := f.useCase().Execute(context.Background(), tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			f.directory.AssertNotCalled(t, "GetTrainer", mock.Anything, mock.Anything)
		})
	}
}

func TestUseCase_Execute_RoomNotFound(t *testing.T) {
	f := &fixture{
		directory:    &mocks.Directory{},
		availability: &mocks.AvailabilityRepo{},
		classes:      &mocks.ClassRepo{},
		conflicts:    &mocks.ConflictDetector{},
	}
	f.directory.On("GetTrainer", mock.Anything, int64(2)).Return(&domain.Trainer{ID: 2}, nil)
	f.directory.On("GetRoom", mock.Anything, int64(3)).Return(nil, directoryRepo.ErrRoomNotFound)

	_, err := f.useCase().Execute(context.Background(), request(5))

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestUseCase_Execute_NotCovered(t *testing.T) {
	f := newFixture(20)

	req := request(5)
	req.Start = end
	req.End = end.Add(2 * time.Hour)

	_, err := f.useCase().Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrTrainerNotAvailable)
}

func TestUseCase_Execute_RoomConflict(t *testing.T) {
	f := newFixture(20)
	f.conflicts.On("FindConflict", mock.Anything, domain.TrainerRef(2), mock.Anything, domain.Ignore{}).
		Return((*domain.Booking)(nil), nil)
	f.conflicts.On("FindConflict", mock.Anything, domain.RoomRef(3), mock.Anything, domain.Ignore{}).
		Return(&domain.Booking{Kind: domain.BookingSession, ID: 1}, nil)

	_, err := f.useCase().Execute(context.Background(), request(5))

	assert.ErrorIs(t, err, ErrRoomConflict)
	assert.Equal(t, domain.KindResourceConflict, domain.KindOf(err))
}

func TestUseCase_Execute_StorageOverlap(t *testing.T) {
	f := newFixture(20)
	f.conflicts.On("FindConflict", mock.Anything, mock.Anything, mock.Anything, domain.Ignore{}).
		Return((*domain.Booking)(nil), nil)
	f.classes.On("Create", mock.Anything, mock.Anything).Return(nil, classRepo.ErrTrainerOverlap)

	_, err := f.useCase().Execute(context.Background(), request(5))

	assert.ErrorIs(t, err, ErrTrainerConflict)
}
