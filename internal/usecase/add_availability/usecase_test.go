package add_availability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/availability"
	directoryRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/directory"
	"github.com/m04kA/SMC-GymService/internal/usecase/mocks"
	"github.com/m04kA/SMC-GymService/pkg/ptr"
	"github.com/m04kA/SMC-GymService/pkg/types"
)

func weekly(t *testing.T, day time.Weekday, start, end string) domain.Weekly {
	w, err := domain.NewWeekly(day, types.TimeString(start), types.TimeString(end))
	require.NoError(t, err)
	return w
}

func newUseCase(directory *mocks.Directory, repo *mocks.AvailabilityRepo) *UseCase {
	return NewUseCase(directory, repo, &mocks.TxManager{}, time.UTC, mocks.Logger{})
}

func TestUseCase_Execute_Weekly(t *testing.T) {
	directory := &mocks.Directory{}
	directory.On("GetTrainer", mock.Anything, int64(2)).Return(&domain.Trainer{ID: 2}, nil)

	repo := &mocks.AvailabilityRepo{}
	repo.On("ListByTrainer", mock.Anything, int64(2)).Return([]*domain.Availability{
		{ID: 1, TrainerID: 2, Entry: weekly(t, time.Tuesday, "09:00", "12:00")},
	}, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Availability) bool {
		w, ok := a.Entry.(domain.Weekly)
		return ok && w.DayOfWeek == time.Monday && w.StartMinutes() == 9*60 && w.EndMinutes() == 12*60
	})).Return(&domain.Availability{ID: 7, TrainerID: 2, Entry: weekly(t, time.Monday, "09:00", "12:00")}, nil)

	resp, err := newUseCase(directory, repo).Execute(context.Background(), &Request{
		TrainerID: 2,
		Type:      domain.AvailabilityWeekly,
		DayOfWeek: ptr.Ptr(1),
		StartTime: "09:00",
		EndTime:   "12:00",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, domain.AvailabilityWeekly, resp.Type)
	assert.Equal(t, 1, *resp.DayOfWeek)
	assert.Equal(t, types.TimeString("09:00"), *resp.StartTime)
	assert.Equal(t, types.TimeString("12:00"), *resp.EndTime)
	assert.Nil(t, resp.Start)
}

func TestUseCase_Execute_OneTime(t *testing.T) {
	start := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)

	directory := &mocks.Directory{}
	directory.On("GetTrainer", mock.Anything, int64(2)).Return(&domain.Trainer{ID: 2}, nil)

	repo := &mocks.AvailabilityRepo{}
	repo.On("ListByTrainer", mock.Anything, int64(2)).Return([]*domain.Availability{
		// Еженедельные записи с разовыми не сравниваются
		{ID: 1, TrainerID: 2, Entry: weekly(t, time.Saturday, "09:00", "18:00")},
	}, nil)
	repo.On("Create", mock.Anything, mock.Anything).
		Return(&domain.Availability{ID: 8, TrainerID: 2, Entry: domain.OneTime{Interval: domain.TimeInterval{Start: start, End: end}}}, nil)

	resp, err := newUseCase(directory, repo).Execute(context.Background(), &Request{
		TrainerID: 2,
		Type:      domain.AvailabilityOneTime,
		Start:     &start,
		End:       &end,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.AvailabilityOneTime, resp.Type)
	assert.True(t, resp.Start.Equal(start))
	assert.Nil(t, resp.DayOfWeek)
}

func TestUseCase_Execute_WeeklyOverlap(t *testing.T) {
	directory := &mocks.Directory{}
	directory.On("GetTrainer", mock.Anything, int64(2)).Return(&domain.Trainer{ID: 2}, nil)

	repo := &mocks.AvailabilityRepo{}
	repo.On("ListByTrainer", mock.Anything, int64(2)).Return([]*domain.Availability{
		{ID: 1, TrainerID: 2, Entry: weekly(t, time.Monday, "09:00", "12:00")},
	}, nil)

	_, err := newUseCase(directory, repo).Execute(context.Background(), &Request{
		TrainerID: 2,
		Type:      domain.AvailabilityWeekly,
		DayOfWeek: ptr.Ptr(1),
		StartTime: "11:00",
		EndTime:   "13:00",
	})

	assert.ErrorIs(t, err, ErrOverlap)
	assert.Equal(t, domain.KindResourceConflict, domain.KindOf(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_SerializationFailure(t *testing.T) {
	directory := &mocks.Directory{}
	directory.On("GetTrainer", mock.Anything, int64(2)).Return(&domain.Trainer{ID: 2}, nil)

	repo := &mocks.AvailabilityRepo{}
	repo.On("ListByTrainer", mock.Anything, int64(2)).Return([]*domain.Availability{}, nil)
	repo.On("Create", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: Create - execute insert: %w", availabilityRepo.ErrExecQuery, &pq.Error{Code: "40001"}))

	_, err := newUseCase(directory, repo).Execute(context.Background(), &Request{
		TrainerID: 2,
		Type:      domain.AvailabilityWeekly,
		DayOfWeek: ptr.Ptr(1),
		StartTime: "09:00",
		EndTime:   "10:00",
	})

	assert.ErrorIs(t, err, ErrConcurrentUpdate)
	assert.Equal(t, domain.KindResourceConflict, domain.KindOf(err))
}

func TestUseCase_Execute_TrainerNotFound(t *testing.T) {
	directory := &mocks.Directory{}
	directory.On("GetTrainer", mock.Anything, int64(2)).Return(nil, directoryRepo.ErrTrainerNotFound)

	_, err := newUseCase(directory, &mocks.AvailabilityRepo{}).Execute(context.Background(), &Request{
		TrainerID: 2,
		Type:      domain.AvailabilityWeekly,
		DayOfWeek: ptr.Ptr(1),
		StartTime: "09:00",
		EndTime:   "10:00",
	})

	assert.ErrorIs(t, err, ErrTrainerNotFound)
}

func TestUseCase_Execute_InvalidRequests(t *testing.T) {
	start := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  *Request
	}{
		{"unknown type", &Request{TrainerID: 2, Type: "MONTHLY"}},
		{"day out of range", &Request{TrainerID: 2, Type: domain.AvailabilityWeekly, DayOfWeek: ptr.Ptr(7), StartTime: "09:00", EndTime: "10:00"}},
		{"missing day", &Request{TrainerID: 2, Type: domain.AvailabilityWeekly, StartTime: "09:00", EndTime: "10:00"}},
		{"inverted weekly", &Request{TrainerID: 2, Type: domain.AvailabilityWeekly, DayOfWeek: ptr.Ptr(1), StartTime: "10:00", EndTime: "09:00"}},
		{"bad time", &Request{TrainerID: 2, Type: domain.AvailabilityWeekly, DayOfWeek: ptr.Ptr(1), StartTime: "9am", EndTime: "10:00"}},
		{"missing end", &Request{TrainerID: 2, Type: domain.AvailabilityOneTime, Start: &start}},
		{"empty one time", &Request{TrainerID: 2, Type: domain.AvailabilityOneTime, Start: &start, End: &start}},
		{"no trainer", &Request{Type: domain.AvailabilityOneTime}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directory := &mocks.Directory{}

			_, err := newUseCase(directory, &mocks.AvailabilityRepo{}).Execute(context.Background(), tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			directory.AssertNotCalled(t, "GetTrainer", mock.Anything, mock.Anything)
		})
	}
}
