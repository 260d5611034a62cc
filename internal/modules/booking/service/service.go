package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"anoa.com/usherhire/internal/entity"
	"anoa.com/usherhire/internal/modules/booking/dto"
	"anoa.com/usherhire/internal/modules/booking/lifecycle"
	bookingRepo "anoa.com/usherhire/internal/modules/booking/repository"
	eventRepo "anoa.com/usherhire/internal/modules/event/repository"
	profileRepo "anoa.com/usherhire/internal/modules/profile/repository"
	"anoa.com/usherhire/pkg/apperror"
	"anoa.com/usherhire/pkg/mq"
	"anoa.com/usherhire/pkg/ratelimiter"
	"anoa.com/usherhire/pkg/sanitize"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingService interface {
	Apply(ctx context.Context, usherID, eventID uuid.UUID, req dto.ApplyRequest) (*entity.Booking, error)
	Transition(ctx context.Context, actorID, bookingID uuid.UUID, status entity.BookingStatus) (*entity.Booking, error)
	GetBooking(ctx context.Context, actorID, bookingID uuid.UUID) (*dto.BookingDetail, error)
	ListMyBookings(ctx context.Context, usherID uuid.UUID, status string) ([]entity.Booking, error)
	ListEventApplications(ctx context.Context, plannerID, eventID uuid.UUID) (*dto.ApplicationsResponse, error)
}

type bookingService struct {
	bookingRepo bookingRepo.BookingRepository
	eventRepo   eventRepo.EventRepository
	profileRepo profileRepo.ProfileRepository
	limiter     ratelimiter.Limiter
	publisher   mq.Publisher
	applyWindow time.Duration
	now         func() time.Time
}

func NewBookingService(
	bookingRepo bookingRepo.BookingRepository,
	eventRepo eventRepo.EventRepository,
	profileRepo profileRepo.ProfileRepository,
	limiter ratelimiter.Limiter,
	publisher mq.Publisher,
	applyWindow time.Duration,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		profileRepo: profileRepo,
		limiter:     limiter,
		publisher:   publisher,
		applyWindow: applyWindow,
		now:         time.Now,
	}
}

func (s *bookingService) Apply(ctx context.Context, usherID, eventID uuid.UUID, req dto.ApplyRequest) (*entity.Booking, error) {
	profile, err := s.profileRepo.FindByID(ctx, usherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("profile not found: %w", apperror.ErrForbidden)
		}
		return nil, apperror.Upstream(err)
	}
	if !profile.IsUsher() {
		return nil, fmt.Errorf("only ushers can apply for events: %w", apperror.ErrForbidden)
	}

	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("event not found: %w", apperror.ErrNotFound)
		}
		return nil, apperror.Upstream(err)
	}
	if event.Status != entity.EventPublished {
		return nil, fmt.Errorf("event is not open for applications: %w", apperror.ErrConflict)
	}

	if _, err := s.bookingRepo.FindByEventAndUsher(ctx, eventID, usherID); err == nil {
		return nil, fmt.Errorf("you have already applied for this event: %w", apperror.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Upstream(err)
	}

	if err := s.limiter.Acquire(ctx, usherID, ratelimiter.ScopeApply, eventID, s.applyWindow); err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		EventID:   eventID,
		UsherID:   usherID,
		Status:    lifecycle.Initial(),
		Notes:     sanitize.Optional(req.Notes),
		AppliedAt: s.now().UTC(),
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		_ = s.limiter.Release(ctx, usherID, ratelimiter.ScopeApply, eventID)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("you have already applied for this event: %w", apperror.ErrConflict)
		}
		return nil, apperror.Upstream(err)
	}
	booking.Event = event

	mq.PublishBestEffort(ctx, s.publisher, mq.KeyBookingApplied, dto.BookingMessage{
		BookingID:  booking.ID,
		EventID:    eventID,
		UsherID:    usherID,
		ActorID:    usherID,
		Status:     booking.Status,
		OccurredAt: booking.AppliedAt,
	})

	return booking, nil
}

func (s *bookingService) Transition(ctx context.Context, actorID, bookingID uuid.UUID, status entity.BookingStatus) (*entity.Booking, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown booking status %q: %w", status, apperror.ErrInvalidInput)
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	role, err := roleOf(booking, actorID)
	if err != nil {
		return nil, err
	}

	if err := lifecycle.Check(booking.Status, status, role); err != nil {
		return nil, err
	}

	if status == entity.BookingCompleted {
		err = s.bookingRepo.Complete(ctx, booking.ID, booking.UsherID)
	} else {
		err = s.bookingRepo.UpdateStatus(ctx, booking.ID, booking.Status, status)
	}
	if err != nil {
		if errors.Is(err, bookingRepo.ErrStatusChanged) {
			return nil, fmt.Errorf("booking was changed by someone else, reload and try again: %w", apperror.ErrConflict)
		}
		return nil, apperror.Upstream(err)
	}

	previous := booking.Status
	booking.Status = status
	booking.UpdatedAt = s.now().UTC()

	mq.PublishBestEffort(ctx, s.publisher, mq.BookingStatusKey(string(status)), dto.BookingMessage{
		BookingID:      booking.ID,
		EventID:        booking.EventID,
		UsherID:        booking.UsherID,
		ActorID:        actorID,
		Status:         status,
		PreviousStatus: previous,
		OccurredAt:     booking.UpdatedAt,
	})

	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, actorID, bookingID uuid.UUID) (*dto.BookingDetail, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	role, err := roleOf(booking, actorID)
	if err != nil {
		return nil, err
	}

	allowed := lifecycle.Allowed(booking.Status, role)
	if allowed == nil {
		allowed = []entity.BookingStatus{}
	}

	return &dto.BookingDetail{
		Booking:            booking,
		Role:               string(role),
		AllowedTransitions: allowed,
	}, nil
}

func (s *bookingService) ListMyBookings(ctx context.Context, usherID uuid.UUID, status string) ([]entity.Booking, error) {
	var filter *entity.BookingStatus
	if status != "" && status != "all" {
		st := entity.BookingStatus(status)
		if !st.Valid() {
			return nil, fmt.Errorf("unknown booking status %q: %w", status, apperror.ErrInvalidInput)
		}
		filter = &st
	}

	bookings, err := s.bookingRepo.ListByUsher(ctx, usherID, filter)
	if err != nil {
		return nil, apperror.Upstream(err)
	}
	return bookings, nil
}

func (s *bookingService) ListEventApplications(ctx context.Context, plannerID, eventID uuid.UUID) (*dto.ApplicationsResponse, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("event not found: %w", apperror.ErrNotFound)
		}
		return nil, apperror.Upstream(err)
	}
	if event.PlannerID != plannerID {
		return nil, fmt.Errorf("only the event planner can view applications: %w", apperror.ErrForbidden)
	}

	bookings, err := s.bookingRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, apperror.Upstream(err)
	}

	return &dto.ApplicationsResponse{
		Event:        event,
		Applications: bookings,
		Counts:       CountByStatus(bookings),
	}, nil
}

func (s *bookingService) findBooking(ctx context.Context, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking not found: %w", apperror.ErrNotFound)
		}
		return nil, apperror.Upstream(err)
	}

	if booking.Event == nil {
		event, err := s.eventRepo.FindByID(ctx, booking.EventID)
		if err != nil {
			return nil, apperror.Upstream(err)
		}
		booking.Event = event
	}
	return booking, nil
}

// roleOf resolves the actor's side of the booking.
func roleOf(booking *entity.Booking, actorID uuid.UUID) (lifecycle.Role, error) {
	switch actorID {
	case booking.Event.PlannerID:
		return lifecycle.RolePlanner, nil
	case booking.UsherID:
		return lifecycle.RoleUsher, nil
	}
	return "", fmt.Errorf("you are not a party to this booking: %w", apperror.ErrForbidden)
}

// CountByStatus tallies bookings per status, with every status present.
func CountByStatus(bookings []entity.Booking) map[entity.BookingStatus]int64 {
	counts := make(map[entity.BookingStatus]int64, len(entity.BookingStatuses))
	for _, status := range entity.BookingStatuses {
		counts[status] = 0
	}
	for _, b := range bookings {
		counts[b.Status]++
	}
	return counts
}
