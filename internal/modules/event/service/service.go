package event

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"anoa.com/usherhire/internal/entity"
	"anoa.com/usherhire/internal/modules/dashboard/aggregate"
	"anoa.com/usherhire/internal/modules/event/dto"
	eventRepo "anoa.com/usherhire/internal/modules/event/repository"
	profileRepo "anoa.com/usherhire/internal/modules/profile/repository"
	"anoa.com/usherhire/pkg/apperror"
	"anoa.com/usherhire/pkg/sanitize"
	"anoa.com/usherhire/pkg/validator"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultOpenLimit = 20
	maxOpenLimit     = 100
)

type EventService interface {
	CreateEvent(ctx context.Context, plannerID uuid.UUID, req dto.CreateEventRequest) (*entity.Event, error)
	UpdateEvent(ctx context.Context, plannerID, eventID uuid.UUID, req dto.UpdateEventRequest) (*entity.Event, error)
	ChangeEventStatus(ctx context.Context, plannerID, eventID uuid.UUID, status entity.EventStatus) (*entity.Event, error)
	GetEvent(ctx context.Context, viewerID, eventID uuid.UUID) (*entity.Event, error)
	ListOpenEvents(ctx context.Context, limit int) ([]entity.Event, error)
	ListMyEvents(ctx context.Context, plannerID uuid.UUID, filter string) ([]entity.Event, error)
	SweepPastEvents(ctx context.Context) (int64, error)
}

type eventService struct {
	repo        eventRepo.EventRepository
	profileRepo profileRepo.ProfileRepository
	now         func() time.Time
}

func NewEventService(repo eventRepo.EventRepository, profileRepo profileRepo.ProfileRepository) EventService {
	return &eventService{
		repo:        repo,
		profileRepo: profileRepo,
		now:         time.Now,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, plannerID uuid.UUID, req dto.CreateEventRequest) (*entity.Event, error) {
	planner, err := s.profileRepo.FindByID(ctx, plannerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("profile not found: %w", apperror.ErrForbidden)
		}
		return nil, apperror.Upstream(err)
	}
	if !planner.IsPlanner() {
		return nil, fmt.Errorf("only planners can create events: %w", apperror.ErrForbidden)
	}

	title, err := requiredText("title", req.Title)
	if err != nil {
		return nil, err
	}
	venue, err := requiredText("venue address", req.VenueAddress)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(req.EventDate)
	if err != nil {
		return nil, err
	}
	if err := checkTime("start time", req.StartTime); err != nil {
		return nil, err
	}
	if err := checkTime("end time", req.EndTime); err != nil {
		return nil, err
	}
	if req.UshersNeeded < 1 {
		return nil, fmt.Errorf("at least one usher is needed: %w", apperror.ErrInvalidInput)
	}
	if req.PayRate < 0 {
		return nil, fmt.Errorf("pay rate cannot be negative: %w", apperror.ErrInvalidInput)
	}

	status := entity.EventDraft
	if req.Publish {
		status = entity.EventPublished
	}

	event := &entity.Event{
		PlannerID:    plannerID,
		Title:        title,
		Description:  sanitize.Optional(req.Description),
		VenueAddress: venue,
		EventDate:    date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		UshersNeeded: req.UshersNeeded,
		PayRate:      req.PayRate,
		Status:       status,
		Requirements: sanitize.Optional(req.Requirements),
		DressCode:    sanitize.Optional(req.DressCode),
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, apperror.Upstream(err)
	}
	event.Planner = planner

	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, plannerID, eventID uuid.UUID, req dto.UpdateEventRequest) (*entity.Event, error) {
	event, err := s.ownedEvent(ctx, plannerID, eventID)
	if err != nil {
		return nil, err
	}
	if !event.Status.IsEditable() {
		return nil, fmt.Errorf("a %s event can no longer be edited: %w", event.Status, apperror.ErrConflict)
	}

	updates := map[string]any{}

	if req.Title != nil {
		title, err := requiredText("title", *req.Title)
		if err != nil {
			return nil, err
		}
		updates["title"] = title
	}
	if req.VenueAddress != nil {
		venue, err := requiredText("venue address", *req.VenueAddress)
		if err != nil {
			return nil, err
		}
		updates["venue_address"] = venue
	}
	if req.EventDate != nil {
		date, err := parseDate(*req.EventDate)
		if err != nil {
			return nil, err
		}
		updates["event_date"] = date
	}
	if req.StartTime != nil {
		if err := checkTime("start time", *req.StartTime); err != nil {
			return nil, err
		}
		updates["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		if err := checkTime("end time", *req.EndTime); err != nil {
			return nil, err
		}
		updates["end_time"] = *req.EndTime
	}
	if req.UshersNeeded != nil {
		if *req.UshersNeeded < 1 {
			return nil, fmt.Errorf("at least one usher is needed: %w", apperror.ErrInvalidInput)
		}
		updates["ushers_needed"] = *req.UshersNeeded
	}
	if req.PayRate != nil {
		if *req.PayRate < 0 {
			return nil, fmt.Errorf("pay rate cannot be negative: %w", apperror.ErrInvalidInput)
		}
		updates["pay_rate"] = *req.PayRate
	}
	if req.Description != nil {
		updates["description"] = sanitize.Optional(req.Description)
	}
	if req.Requirements != nil {
		updates["requirements"] = sanitize.Optional(req.Requirements)
	}
	if req.DressCode != nil {
		updates["dress_code"] = sanitize.Optional(req.DressCode)
	}

	if len(updates) == 0 {
		return event, nil
	}

	if err := s.repo.Update(ctx, eventID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("event not found: %w", apperror.ErrNotFound)
		}
		return nil, apperror.Upstream(err)
	}

	return s.findEvent(ctx, eventID)
}

func (s *eventService) ChangeEventStatus(ctx context.Context, plannerID, eventID uuid.UUID, status entity.EventStatus) (*entity.Event, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown event status %q: %w", status, apperror.ErrInvalidInput)
	}

	event, err := s.ownedEvent(ctx, plannerID, eventID)
	if err != nil {
		return nil, err
	}
	if !event.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("event cannot move from %s to %s: %w", event.Status, status, apperror.ErrConflict)
	}

	if err := s.repo.UpdateStatus(ctx, eventID, event.Status, status); err != nil {
		if errors.Is(err, eventRepo.ErrStatusChanged) {
			return nil, fmt.Errorf("event was changed by someone else, reload and try again: %w", apperror.ErrConflict)
		}
		return nil, apperror.Upstream(err)
	}

	event.Status = status
	event.UpdatedAt = s.now().UTC()
	return event, nil
}

// GetEvent hides unpublished events from everyone but their planner.
func (s *eventService) GetEvent(ctx context.Context, viewerID, eventID uuid.UUID) (*entity.Event, error) {
	event, err := s.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status != entity.EventPublished && event.PlannerID != viewerID {
		return nil, fmt.Errorf("event not found: %w", apperror.ErrNotFound)
	}
	return event, nil
}

func (s *eventService) ListOpenEvents(ctx context.Context, limit int) ([]entity.Event, error) {
	if limit <= 0 {
		limit = defaultOpenLimit
	}
	if limit > maxOpenLimit {
		limit = maxOpenLimit
	}

	events, err := s.repo.ListOpen(ctx, entity.DateOf(s.now()), limit)
	if err != nil {
		return nil, apperror.Upstream(err)
	}
	return events, nil
}

func (s *eventService) ListMyEvents(ctx context.Context, plannerID uuid.UUID, filter string) ([]entity.Event, error) {
	f, err := aggregate.ParseEventFilter(filter)
	if err != nil {
		return nil, err
	}

	events, err := s.repo.ListByPlanner(ctx, plannerID)
	if err != nil {
		return nil, apperror.Upstream(err)
	}
	return aggregate.FilterEvents(events, f, s.now()), nil
}

// SweepPastEvents completes published events whose date is before today.
func (s *eventService) SweepPastEvents(ctx context.Context) (int64, error) {
	n, err := s.repo.CompletePast(ctx, entity.DateOf(s.now()))
	if err != nil {
		return 0, apperror.Upstream(err)
	}
	if n > 0 {
		log.Printf("[events] completed %d past events", n)
	}
	return n, nil
}

func (s *eventService) findEvent(ctx context.Context, eventID uuid.UUID) (*entity.Event, error) {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("event not found: %w", apperror.ErrNotFound)
		}
		return nil, apperror.Upstream(err)
	}
	return event, nil
}

func (s *eventService) ownedEvent(ctx context.Context, plannerID, eventID uuid.UUID) (*entity.Event, error) {
	event, err := s.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.PlannerID != plannerID {
		return nil, fmt.Errorf("only the event planner can change this event: %w", apperror.ErrForbidden)
	}
	return event, nil
}

func requiredText(field, value string) (string, error) {
	clean := sanitize.Text(value)
	if clean == "" {
		return "", fmt.Errorf("%s is required: %w", field, apperror.ErrInvalidInput)
	}
	return clean, nil
}

func parseDate(raw string) (time.Time, error) {
	date, err := time.Parse(dto.DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("event date must look like 2024-06-30: %w", apperror.ErrInvalidInput)
	}
	return date, nil
}

func checkTime(field, value string) error {
	if !validator.IsHHMM(value) {
		return fmt.Errorf("%s must be HH:MM: %w", field, apperror.ErrInvalidInput)
	}
	return nil
}
