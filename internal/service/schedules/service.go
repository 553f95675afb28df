package schedules

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GymService/internal/domain"
	directoryRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/directory"
	classRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/fitnessclass"
	"github.com/m04kA/SMC-GymService/internal/service/schedules/models"
	"github.com/m04kA/SMC-GymService/pkg/ptr"
)

// Service сервис расписаний тренеров и членов клуба
type Service struct {
	directory        DirectoryRepository
	sessionRepo      SessionRepository
	classRepo        ClassRepository
	registrationRepo RegistrationRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	directory DirectoryRepository,
	sessionRepo SessionRepository,
	classRepo ClassRepository,
	registrationRepo RegistrationRepository,
	logger Logger,
) *Service {
	return &Service{
		directory:        directory,
		sessionRepo:      sessionRepo,
		classRepo:        classRepo,
		registrationRepo: registrationRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// TrainerSchedule возвращает предстоящие (начало не раньше текущего момента) тренировки и занятия тренера
func (s *Service) TrainerSchedule(ctx context.Context, trainerID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("TrainerSchedule: fetching schedule for trainer=%d", trainerID)

	if _, err := s.directory.GetTrainer(ctx, trainerID); err != nil {
		if errors.Is(err, directoryRepo.ErrTrainerNotFound) {
			s.logger.Warn("TrainerSchedule: trainer id=%d not found", trainerID)
			return nil, ErrTrainerNotFound
		}
		s.logger.Error("TrainerSchedule: repository error for trainer id=%d: %v", trainerID, err)
		return nil, fmt.Errorf("%w: TrainerSchedule - repository error: %w", ErrInternal, err)
	}

	filter := domain.BookingFilter{
		TrainerID:  ptr.Ptr(trainerID),
		StartsFrom: ptr.Ptr(s.timeProvider.Now()),
	}

	sessions, err := s.sessionRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("TrainerSchedule: failed to list sessions of trainer id=%d: %v", trainerID, err)
		return nil, fmt.Errorf("%w: TrainerSchedule - list sessions: %w", ErrInternal, err)
	}

	classes, err := s.classRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("TrainerSchedule: failed to list classes of trainer id=%d: %v", trainerID, err)
		return nil, fmt.Errorf("%w: TrainerSchedule - list classes: %w", ErrInternal, err)
	}

	s.logger.Info("TrainerSchedule: found %d sessions and %d classes for trainer=%d", len(sessions), len(classes), trainerID)
	return models.NewSchedule(sessions, classes), nil
}

// MemberSchedule возвращает предстоящие тренировки члена клуба и занятия, на которые он записан
func (s *Service) MemberSchedule(ctx context.Context, memberID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("MemberSchedule: fetching schedule for member=%d", memberID)

	if _, err := s.directory.GetMember(ctx, memberID); err != nil {
		if errors.Is(err, directoryRepo.ErrMemberNotFound) {
			s.logger.Warn("MemberSchedule: member id=%d not found", memberID)
			return nil, ErrMemberNotFound
		}
		s.logger.Error("MemberSchedule: repository error for member id=%d: %v", memberID, err)
		return nil, fmt.Errorf("%w: MemberSchedule - repository error: %w", ErrInternal, err)
	}

	now := s.timeProvider.Now()

	sessions, err := s.sessionRepo.List(ctx, domain.BookingFilter{
		MemberID:   ptr.Ptr(memberID),
		StartsFrom: ptr.Ptr(now),
	})
	if err != nil {
		s.logger.Error("MemberSchedule: failed to list sessions of member id=%d: %v", memberID, err)
		return nil, fmt.Errorf("%w: MemberSchedule - list sessions: %w", ErrInternal, err)
	}

	registered, err := s.classRepo.ListForMember(ctx, memberID, nil)
	if err != nil {
		s.logger.Error("MemberSchedule: failed to list classes of member id=%d: %v", memberID, err)
		return nil, fmt.Errorf("%w: MemberSchedule - list classes: %w", ErrInternal, err)
	}

	classes := make([]*domain.FitnessClass, 0, len(registered))
	for _, class := range registered {
		if !class.Interval.Start.Before(now) {
			classes = append(classes, class)
		}
	}

	s.logger.Info("MemberSchedule: found %d sessions and %d classes for member=%d", len(sessions), len(classes), memberID)
	return models.NewSchedule(sessions, classes), nil
}

// GetClass возвращает занятие с числом записей и свободными местами
func (s *Service) GetClass(ctx context.Context, classID int64) (*models.ClassResponse, error) {
	s.logger.Info("GetClass: fetching class id=%d", classID)

	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, classRepo.ErrClassNotFound) {
			s.logger.Warn("GetClass: class id=%d not found", classID)
			return nil, ErrClassNotFound
		}
		s.logger.Error("GetClass: repository error for class id=%d: %v", classID, err)
		return nil, fmt.Errorf("%w: GetClass - repository error: %w", ErrInternal, err)
	}

	count, err := s.registrationRepo.CountByClass(ctx, classID)
	if err != nil {
		s.logger.Error("GetClass: failed to count registrations of class id=%d: %v", classID, err)
		return nil, fmt.Errorf("%w: GetClass - count registrations: %w", ErrInternal, err)
	}

	return models.FromDomainClassWithCount(class, count), nil
}

// ListUpcomingClasses возвращает предстоящие занятия с заполненностью.
// memberID != nil - отмечаются занятия, на которые член клуба уже записан
func (s *Service) ListUpcomingClasses(ctx context.Context, memberID *int64) (*models.ClassListResponse, error) {
	if memberID != nil {
		s.logger.Info("ListUpcomingClasses: fetching classes for member=%d", *memberID)

		if _, err := s.directory.GetMember(ctx, *memberID); err != nil {
			if errors.Is(err, directoryRepo.ErrMemberNotFound) {
				s.logger.Warn("ListUpcomingClasses: member id=%d not found", *memberID)
				return nil, ErrMemberNotFound
			}
			s.logger.Error("ListUpcomingClasses: repository error for member id=%d: %v", *memberID, err)
			return nil, fmt.Errorf("%w: ListUpcomingClasses - repository error: %w", ErrInternal, err)
		}
	}

	overviews, err := s.classRepo.ListUpcoming(ctx, s.timeProvider.Now(), memberID)
	if err != nil {
		s.logger.Error("ListUpcomingClasses: failed to list classes: %v", err)
		return nil, fmt.Errorf("%w: ListUpcomingClasses - list classes: %w", ErrInternal, err)
	}

	return models.FromDomainClassOverviews(overviews), nil
}
