package conflicts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

type MockSessionRepo struct{ mock.Mock }

func (m *MockSessionRepo) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Session, error) {
	args := m.Called(ctx, filter)
	sessions, _ := args.Get(0).([]*domain.Session)
	return sessions, args.Error(1)
}

type MockClassRepo struct{ mock.Mock }

func (m *MockClassRepo) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.FitnessClass, error) {
	args := m.Called(ctx, filter)
	classes, _ := args.Get(0).([]*domain.FitnessClass)
	return classes, args.Error(1)
}

func (m *MockClassRepo) ListForMember(ctx context.Context, memberID int64, window *domain.TimeInterval) ([]*domain.FitnessClass, error) {
	args := m.Called(ctx, memberID, window)
	classes, _ := args.Get(0).([]*domain.FitnessClass)
	return classes, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func interval(startHour, endHour int) domain.TimeInterval {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	return domain.TimeInterval{
		Start: day.Add(time.Duration(startHour) * time.Hour),
		End:   day.Add(time.Duration(endHour) * time.Hour),
	}
}

func trainerFilter(id int64) interface{} {
	return mock.MatchedBy(func(f domain.BookingFilter) bool {
		return f.TrainerID != nil && *f.TrainerID == id && f.RoomID == nil && f.MemberID == nil
	})
}

func TestHasConflict_TrainerClass(t *testing.T) {
	sessions := new(MockSessionRepo)
	classes := new(MockClassRepo)
	svc := NewService(sessions, classes, nopLogger{})

	sessions.On("List", mock.Anything, trainerFilter(3)).Return([]*domain.Session{}, nil)
	classes.On("List", mock.Anything, trainerFilter(3)).
		Return([]*domain.FitnessClass{{ID: 11, TrainerID: 3, Interval: interval(10, 11)}}, nil)

	conflict, err := svc.HasConflict(context.Background(), domain.TrainerRef(3), interval(10, 11), domain.Ignore{})
	require.NoError(t, err)
	assert.True(t, conflict)

	// Перенос занятия 11 на месте не конфликтует сам с собой
	conflict, err = svc.HasConflict(context.Background(), domain.TrainerRef(3), interval(10, 11), domain.IgnoreClass(11))
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestHasConflict_MemberRegisteredClass(t *testing.T) {
	sessions := new(MockSessionRepo)
	classes := new(MockClassRepo)
	svc := NewService(sessions, classes, nopLogger{})

	candidate := interval(14, 15)

	sessions.On("List", mock.Anything, mock.MatchedBy(func(f domain.BookingFilter) bool {
		return f.MemberID != nil && *f.MemberID == 5
	})).Return([]*domain.Session{}, nil)
	classes.On("ListForMember", mock.Anything, int64(5), &candidate).
		Return([]*domain.FitnessClass{{ID: 2, Interval: interval(13, 15)}}, nil)

	found, err := svc.FindConflict(context.Background(), domain.MemberRef(5), candidate, domain.Ignore{})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, domain.BookingClass, found.Kind)
	assert.Equal(t, int64(2), found.ID)

	classes.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestHasConflict_AdjacentSessionIsFree(t *testing.T) {
	sessions := new(MockSessionRepo)
	classes := new(MockClassRepo)
	svc := NewService(sessions, classes, nopLogger{})

	sessions.On("List", mock.Anything, mock.Anything).
		Return([]*domain.Session{{ID: 1, Interval: interval(9, 10)}}, nil)
	classes.On("List", mock.Anything, mock.Anything).Return([]*domain.FitnessClass{}, nil)

	conflict, err := svc.HasConflict(context.Background(), domain.RoomRef(4), interval(10, 11), domain.Ignore{})
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestHasConflict_RepositoryError(t *testing.T) {
	sessions := new(MockSessionRepo)
	classes := new(MockClassRepo)
	svc := NewService(sessions, classes, nopLogger{})

	sessions.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := svc.HasConflict(context.Background(), domain.RoomRef(4), interval(10, 11), domain.Ignore{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestBookings_UnknownResource(t *testing.T) {
	svc := NewService(new(MockSessionRepo), new(MockClassRepo), nopLogger{})

	_, err := svc.Bookings(context.Background(), domain.ResourceRef{Kind: "locker", ID: 1}, nil)
	assert.ErrorIs(t, err, ErrUnknownResource)
}
