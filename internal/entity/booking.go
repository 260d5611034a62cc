package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingAccepted  BookingStatus = "accepted"
	BookingRejected  BookingStatus = "rejected"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// BookingStatuses lists every status in lifecycle order.
var BookingStatuses = []BookingStatus{
	BookingPending,
	BookingAccepted,
	BookingRejected,
	BookingCompleted,
	BookingCancelled,
}

func (s BookingStatus) Valid() bool {
	for _, status := range BookingStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsActive: pending or accepted.
func (s BookingStatus) IsActive() bool {
	return s == BookingPending || s == BookingAccepted
}

// Booking is an usher's application to an event. At most one exists per
// (event, usher) pair and rows are never deleted.
type Booking struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	EventID   uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_bookings_event_usher" json:"event_id"`
	Event     *Event        `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"event,omitempty"`
	UsherID   uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_bookings_event_usher;index" json:"usher_id"`
	Usher     *Profile      `gorm:"foreignKey:UsherID;constraint:OnDelete:CASCADE" json:"usher,omitempty"`
	Status    BookingStatus `gorm:"size:20;not null;default:pending;index" json:"status"`
	Notes     *string       `gorm:"type:text" json:"notes,omitempty"`
	AppliedAt time.Time     `gorm:"not null" json:"applied_at"`
	CreatedAt time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		b.ID = id
	}
	return nil
}
