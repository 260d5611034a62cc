package service

import (
	"context"
	"time"

	"anoa.com/usherhire/internal/entity"
	bookingRepo "anoa.com/usherhire/internal/modules/booking/repository"
	eventRepo "anoa.com/usherhire/internal/modules/event/repository"
	profileRepo "anoa.com/usherhire/internal/modules/profile/repository"
	"anoa.com/usherhire/pkg/apperror"
)

type Diagnostics struct {
	EventsByStatus map[entity.EventStatus]int64 `json:"events_by_status"`
	OpenEvents     int64                        `json:"open_events"`
	TotalBookings  int64                        `json:"total_bookings"`
	ProfilesByType map[entity.UserType]int64    `json:"profiles_by_type"`
	GeneratedAt    time.Time                    `json:"generated_at"`
}

type StatService interface {
	GetDiagnostics(ctx context.Context) (*Diagnostics, error)
}

type statService struct {
	eventRepo   eventRepo.EventRepository
	bookingRepo bookingRepo.BookingRepository
	profileRepo profileRepo.ProfileRepository
	now         func() time.Time
}

func NewStatService(eventRepo eventRepo.EventRepository, bookingRepo bookingRepo.BookingRepository, profileRepo profileRepo.ProfileRepository) StatService {
	return &statService{
		eventRepo:   eventRepo,
		bookingRepo: bookingRepo,
		profileRepo: profileRepo,
		now:         time.Now,
	}
}

func (s *statService) GetDiagnostics(ctx context.Context) (*Diagnostics, error) {
	now := s.now()

	byStatus, err := s.eventRepo.CountByStatus(ctx)
	if err != nil {
		return nil, apperror.Upstream(err)
	}

	open, err := s.eventRepo.CountOpen(ctx, entity.DateOf(now))
	if err != nil {
		return nil, apperror.Upstream(err)
	}

	bookings, err := s.bookingRepo.Count(ctx)
	if err != nil {
		return nil, apperror.Upstream(err)
	}

	byType, err := s.profileRepo.CountByType(ctx)
	if err != nil {
		return nil, apperror.Upstream(err)
	}

	return &Diagnostics{
		EventsByStatus: byStatus,
		OpenEvents:     open,
		TotalBookings:  bookings,
		ProfilesByType: byType,
		GeneratedAt:    now.UTC(),
	}, nil
}
