package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"anoa.com/usherhire/internal/entity"
	bookingRepo "anoa.com/usherhire/internal/modules/booking/repository"
	"anoa.com/usherhire/internal/modules/dashboard/aggregate"
	"anoa.com/usherhire/internal/modules/dashboard/dto"
	eventRepo "anoa.com/usherhire/internal/modules/event/repository"
	profileRepo "anoa.com/usherhire/internal/modules/profile/repository"
	"anoa.com/usherhire/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const availableEventsLimit = 5

type DashboardService interface {
	PlannerDashboard(ctx context.Context, plannerID uuid.UUID, filter string) (*dto.PlannerDashboard, error)
	UsherDashboard(ctx context.Context, usherID uuid.UUID) (*dto.UsherDashboard, error)
}

type dashboardService struct {
	profileRepo profileRepo.ProfileRepository
	eventRepo   eventRepo.EventRepository
	bookingRepo bookingRepo.BookingRepository
	now         func() time.Time
}

func NewDashboardService(profileRepo profileRepo.ProfileRepository, eventRepo eventRepo.EventRepository, bookingRepo bookingRepo.BookingRepository) DashboardService {
	return &dashboardService{
		profileRepo: profileRepo,
		eventRepo:   eventRepo,
		bookingRepo: bookingRepo,
		now:         time.Now,
	}
}

func (s *dashboardService) PlannerDashboard(ctx context.Context, plannerID uuid.UUID, filter string) (*dto.PlannerDashboard, error) {
	f, err := aggregate.ParseEventFilter(filter)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileOf(ctx, plannerID, entity.UserTypePlanner)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.ListByPlanner(ctx, plannerID)
	if err != nil {
		return nil, apperror.Upstream(err)
	}

	ids := make([]uuid.UUID, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}

	var bookings []entity.Booking
	if len(ids) > 0 {
		bookings, err = s.bookingRepo.ListByEvents(ctx, ids)
		if err != nil {
			return nil, apperror.Upstream(err)
		}
	}

	today := s.now()
	counts := aggregate.CountsByEvent(bookings)
	filtered := aggregate.FilterEvents(events, f, today)

	items := make([]dto.PlannerEventItem, 0, len(filtered))
	for _, e := range filtered {
		items = append(items, dto.PlannerEventItem{Event: e, Applications: counts[e.ID]})
	}

	return &dto.PlannerDashboard{
		Profile: profile,
		Stats:   aggregate.Planner(events, bookings, today),
		Filter:  f,
		Events:  items,
	}, nil
}

func (s *dashboardService) UsherDashboard(ctx context.Context, usherID uuid.UUID) (*dto.UsherDashboard, error) {
	profile, err := s.profileOf(ctx, usherID, entity.UserTypeUsher)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByUsher(ctx, usherID, nil)
	if err != nil {
		return nil, apperror.Upstream(err)
	}

	open, err := s.eventRepo.ListOpen(ctx, entity.DateOf(s.now()), availableEventsLimit)
	if err != nil {
		return nil, apperror.Upstream(err)
	}

	return &dto.UsherDashboard{
		Profile:          profile,
		Stats:            aggregate.Usher(profile.UsherProfile, bookings),
		Completeness:     aggregate.ProfileCompleteness(profile, profile.UsherProfile),
		UpcomingBookings: aggregate.UpcomingBookings(bookings),
		AvailableEvents:  open,
	}, nil
}

func (s *dashboardService) profileOf(ctx context.Context, userID uuid.UUID, want entity.UserType) (*entity.Profile, error) {
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("profile not found: %w", apperror.ErrNotFound)
		}
		return nil, apperror.Upstream(err)
	}
	if profile.UserType != want {
		return nil, fmt.Errorf("this dashboard is for %ss: %w", want, apperror.ErrForbidden)
	}
	return profile, nil
}
