package conflicts

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/pkg/ptr"
)

// Service детектор конфликтов бронирований тренеров, залов и членов клуба
// Сессии и занятия рассматриваются вместе: ресурс занят, если занят любым из них
type Service struct {
	sessionRepo SessionRepository
	classRepo   ClassRepository
	logger      Logger
}

// NewService создает детектор конфликтов
func NewService(sessionRepo SessionRepository, classRepo ClassRepository, logger Logger) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		classRepo:   classRepo,
		logger:      logger,
	}
}

// Bookings возвращает все бронирования ресурса, пересекающиеся с window
// Для члена клуба занятия берутся через его записи
// window == nil означает все бронирования ресурса
func (s *Service) Bookings(ctx context.Context, ref domain.ResourceRef, window *domain.TimeInterval) ([]domain.Booking, error) {
	filter := domain.BookingFilter{Window: window}

	switch ref.Kind {
	case domain.ResourceTrainer:
		filter.TrainerID = ptr.Ptr(ref.ID)
	case domain.ResourceRoom:
		filter.RoomID = ptr.Ptr(ref.ID)
	case domain.ResourceMember:
		filter.MemberID = ptr.Ptr(ref.ID)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownResource, ref.Kind)
	}

	sessions, err := s.sessionRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Bookings: failed to list sessions for %s: %v", ref, err)
		return nil, fmt.Errorf("%w: list sessions: %w", ErrInternal, err)
	}

	var classes []*domain.FitnessClass
	if ref.Kind == domain.ResourceMember {
		classes, err = s.classRepo.ListForMember(ctx, ref.ID, window)
	} else {
		classes, err = s.classRepo.List(ctx, domain.BookingFilter{
			TrainerID: filter.TrainerID,
			RoomID:    filter.RoomID,
			Window:    window,
		})
	}
	if err != nil {
		s.logger.Error("Bookings: failed to list classes for %s: %v", ref, err)
		return nil, fmt.Errorf("%w: list classes: %w", ErrInternal, err)
	}

	bookings := make([]domain.Booking, 0, len(sessions)+len(classes))
	for _, session := range sessions {
		bookings = append(bookings, domain.SessionBooking(session))
	}
	for _, class := range classes {
		bookings = append(bookings, domain.ClassBooking(class))
	}

	return bookings, nil
}

// FindConflict возвращает бронирование ресурса, пересекающееся с candidate,
// пропуская бронирования из ignore; nil - конфликта нет
func (s *Service) FindConflict(
	ctx context.Context,
	ref domain.ResourceRef,
	candidate domain.TimeInterval,
	ignore domain.Ignore,
) (*domain.Booking, error) {
	bookings, err := s.Bookings(ctx, ref, &candidate)
	if err != nil {
		return nil, err
	}

	conflict, found := domain.FirstConflict(candidate, bookings, ignore)
	if !found {
		return nil, nil
	}

	s.logger.Info("FindConflict: %s is busy at %s by %s id=%d", ref, candidate, conflict.Kind, conflict.ID)
	return &conflict, nil
}

// HasConflict true, если ресурс занят в интервале candidate
func (s *Service) HasConflict(
	ctx context.Context,
	ref domain.ResourceRef,
	candidate domain.TimeInterval,
	ignore domain.Ignore,
) (bool, error) {
	conflict, err := s.FindConflict(ctx, ref, candidate, ignore)
	if err != nil {
		return false, err
	}
	return conflict != nil, nil
}
