package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventPublished EventStatus = "published"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventDraft, EventPublished, EventCompleted, EventCancelled:
		return true
	}
	return false
}

var eventTransitions = map[EventStatus][]EventStatus{
	EventDraft:     {EventPublished, EventCancelled},
	EventPublished: {EventCompleted, EventCancelled},
}

// CanTransitionTo reports whether the event status graph has an edge s -> next.
func (s EventStatus) CanTransitionTo(next EventStatus) bool {
	for _, allowed := range eventTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsEditable reports whether event details may still be changed.
func (s EventStatus) IsEditable() bool {
	return s == EventDraft || s == EventPublished
}

type Event struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	PlannerID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"planner_id"`
	Planner      *Profile    `gorm:"foreignKey:PlannerID;constraint:OnDelete:CASCADE" json:"planner,omitempty"`
	Title        string      `gorm:"size:200;not null" json:"title"`
	Description  *string     `gorm:"type:text" json:"description,omitempty"`
	VenueAddress string      `gorm:"type:text;not null" json:"venue_address"`
	EventDate    time.Time   `gorm:"type:date;not null;index" json:"event_date"`
	StartTime    string      `gorm:"size:5;not null" json:"start_time"`
	EndTime      string      `gorm:"size:5;not null" json:"end_time"`
	UshersNeeded int         `gorm:"not null;check:ushers_needed >= 1" json:"ushers_needed"`
	PayRate      float64     `gorm:"type:numeric(10,2);not null;check:pay_rate >= 0" json:"pay_rate"`
	Status       EventStatus `gorm:"size:20;not null;default:draft;index" json:"status"`
	Requirements *string     `gorm:"type:text" json:"requirements,omitempty"`
	DressCode    *string     `gorm:"size:200" json:"dress_code,omitempty"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		e.ID = id
	}
	return nil
}

// IsUpcoming: event date on or after today.
func (e *Event) IsUpcoming(today time.Time) bool {
	return !DateOf(e.EventDate).Before(DateOf(today))
}

// IsPast: event date before today, or the event was completed.
func (e *Event) IsPast(today time.Time) bool {
	return DateOf(e.EventDate).Before(DateOf(today)) || e.Status == EventCompleted
}

// DateOf truncates t to its calendar date at UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
