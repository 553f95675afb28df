// Package mocks содержит testify-моки репозиториев и сервисов для тестов use case
package mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/pkg/txmanager"
)

// Directory мок справочника членов клуба, тренеров и залов
type Directory struct{ mock.Mock }

func (m *Directory) GetMember(ctx context.Context, id int64) (*domain.Member, error) {
	args := m.Called(ctx, id)
	member, _ := args.Get(0).(*domain.Member)
	return member, args.Error(1)
}

func (m *Directory) GetTrainer(ctx context.Context, id int64) (*domain.Trainer, error) {
	args := m.Called(ctx, id)
	trainer, _ := args.Get(0).(*domain.Trainer)
	return trainer, args.Error(1)
}

func (m *Directory) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	room, _ := args.Get(0).(*domain.Room)
	return room, args.Error(1)
}

func (m *Directory) ListTrainers(ctx context.Context) ([]*domain.Trainer, error) {
	args := m.Called(ctx)
	trainers, _ := args.Get(0).([]*domain.Trainer)
	return trainers, args.Error(1)
}

// AvailabilityRepo мок репозитория доступности
type AvailabilityRepo struct{ mock.Mock }

func (m *AvailabilityRepo) Create(ctx context.Context, a *domain.Availability) (*domain.Availability, error) {
	args := m.Called(ctx, a)
	created, _ := args.Get(0).(*domain.Availability)
	return created, args.Error(1)
}

func (m *AvailabilityRepo) ListByTrainer(ctx context.Context, trainerID int64) ([]*domain.Availability, error) {
	args := m.Called(ctx, trainerID)
	list, _ := args.Get(0).([]*domain.Availability)
	return list, args.Error(1)
}

func (m *AvailabilityRepo) Delete(ctx context.Context, trainerID, id int64) error {
	return m.Called(ctx, trainerID, id).Error(0)
}

// SessionRepo мок репозитория тренировок
type SessionRepo struct{ mock.Mock }

func (m *SessionRepo) Create(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	args := m.Called(ctx, s)
	created, _ := args.Get(0).(*domain.Session)
	return created, args.Error(1)
}

func (m *SessionRepo) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*domain.Session)
	return s, args.Error(1)
}

func (m *SessionRepo) Update(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	args := m.Called(ctx, s)
	updated, _ := args.Get(0).(*domain.Session)
	return updated, args.Error(1)
}

func (m *SessionRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *SessionRepo) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Session, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]*domain.Session)
	return list, args.Error(1)
}

// ClassRepo мок репозитория занятий
type ClassRepo struct{ mock.Mock }

func (m *ClassRepo) Create(ctx context.Context, c *domain.FitnessClass) (*domain.FitnessClass, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(*domain.FitnessClass)
	return created, args.Error(1)
}

func (m *ClassRepo) GetByID(ctx context.Context, id int64) (*domain.FitnessClass, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*domain.FitnessClass)
	return c, args.Error(1)
}

func (m *ClassRepo) Update(ctx context.Context, c *domain.FitnessClass) (*domain.FitnessClass, error) {
	args := m.Called(ctx, c)
	updated, _ := args.Get(0).(*domain.FitnessClass)
	return updated, args.Error(1)
}

func (m *ClassRepo) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.FitnessClass, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]*domain.FitnessClass)
	return list, args.Error(1)
}

func (m *ClassRepo) ListForMember(ctx context.Context, memberID int64, window *domain.TimeInterval) ([]*domain.FitnessClass, error) {
	args := m.Called(ctx, memberID, window)
	list, _ := args.Get(0).([]*domain.FitnessClass)
	return list, args.Error(1)
}

func (m *ClassRepo) ListUpcoming(ctx context.Context, after time.Time, memberID *int64) ([]*domain.ClassOverview, error) {
	args := m.Called(ctx, after, memberID)
	list, _ := args.Get(0).([]*domain.ClassOverview)
	return list, args.Error(1)
}

// RegistrationRepo мок репозитория записей на занятия
type RegistrationRepo struct{ mock.Mock }

func (m *RegistrationRepo) Create(ctx context.Context, r *domain.ClassRegistration) (*domain.ClassRegistration, error) {
	args := m.Called(ctx, r)
	created, _ := args.Get(0).(*domain.ClassRegistration)
	return created, args.Error(1)
}

func (m *RegistrationRepo) GetByID(ctx context.Context, id int64) (*domain.ClassRegistration, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*domain.ClassRegistration)
	return r, args.Error(1)
}

func (m *RegistrationRepo) CountByClass(ctx context.Context, classID int64) (int, error) {
	args := m.Called(ctx, classID)
	return args.Int(0), args.Error(1)
}

func (m *RegistrationRepo) Exists(ctx context.Context, memberID, classID int64) (bool, error) {
	args := m.Called(ctx, memberID, classID)
	return args.Bool(0), args.Error(1)
}

func (m *RegistrationRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// ConflictDetector мок детектора конфликтов
type ConflictDetector struct{ mock.Mock }

func (m *ConflictDetector) FindConflict(
	ctx context.Context,
	ref domain.ResourceRef,
	candidate domain.TimeInterval,
	ignore domain.Ignore,
) (*domain.Booking, error) {
	args := m.Called(ctx, ref, candidate, ignore)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

func (m *ConflictDetector) Bookings(ctx context.Context, ref domain.ResourceRef, window *domain.TimeInterval) ([]domain.Booking, error) {
	args := m.Called(ctx, ref, window)
	list, _ := args.Get(0).([]domain.Booking)
	return list, args.Error(1)
}

// TxManager выполняет fn без реальной транзакции
// Ошибку драйвера 40001 из fn классифицирует так же, как txmanager
type TxManager struct {
	// Err, если задан, возвращается вместо результата fn (например, конфликт сериализации)
	Err error
}

func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		if txmanager.IsSerializationFailure(err) {
			return fmt.Errorf("%w: %w", txmanager.ErrSerializationFailure, err)
		}
		return err
	}
	return m.Err
}

// Clock фиксированное время
type Clock struct {
	At time.Time
}

func (c Clock) Now() time.Time { return c.At }

// Logger логгер, ничего не пишущий
type Logger struct{}

func (Logger) Info(string, ...interface{})  {}
func (Logger) Warn(string, ...interface{})  {}
func (Logger) Error(string, ...interface{}) {}
