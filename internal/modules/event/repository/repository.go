package repository

import (
	"context"
	"errors"
	"time"

	"anoa.com/usherhire/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrStatusChanged is returned when a conditional status update matched no row
// because the status was changed concurrently.
var ErrStatusChanged = errors.New("event status changed concurrently")

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) error
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.EventStatus) error
	ListByPlanner(ctx context.Context, plannerID uuid.UUID) ([]entity.Event, error)
	ListOpen(ctx context.Context, from time.Time, limit int) ([]entity.Event, error)
	CompletePast(ctx context.Context, before time.Time) (int64, error)
	CountByStatus(ctx context.Context) (map[entity.EventStatus]int64, error)
	CountOpen(ctx context.Context, from time.Time) (int64, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	return r.db.WithContext(ctx).Omit("Planner").Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var event entity.Event
	if err := r.db.WithContext(ctx).
		Preload("Planner").
		Where("id = ?", id).
		First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(&entity.Event{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *eventRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.EventStatus) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Event{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusChanged
	}
	return nil
}

func (r *eventRepository) ListByPlanner(ctx context.Context, plannerID uuid.UUID) ([]entity.Event, error) {
	var events []entity.Event
	if err := r.db.WithContext(ctx).
		Where("planner_id = ?", plannerID).
		Order("event_date DESC").
		Order("start_time DESC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) ListOpen(ctx context.Context, from time.Time, limit int) ([]entity.Event, error) {
	query := r.db.WithContext(ctx).
		Preload("Planner").
		Where("status = ? AND event_date >= ?", entity.EventPublished, entity.DateOf(from)).
		Order("event_date ASC").
		Order("start_time ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var events []entity.Event
	if err := query.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) CompletePast(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entity.Event{}).
		Where("status = ? AND event_date < ?", entity.EventPublished, entity.DateOf(before)).
		Update("status", entity.EventCompleted)
	return res.RowsAffected, res.Error
}

func (r *eventRepository) CountByStatus(ctx context.Context) (map[entity.EventStatus]int64, error) {
	var rows []struct {
		Status entity.EventStatus
		Total  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&entity.Event{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := map[entity.EventStatus]int64{
		entity.EventDraft:     0,
		entity.EventPublished: 0,
		entity.EventCompleted: 0,
		entity.EventCancelled: 0,
	}
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

func (r *eventRepository) CountOpen(ctx context.Context, from time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Event{}).
		Where("status = ? AND event_date >= ?", entity.EventPublished, entity.DateOf(from)).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
