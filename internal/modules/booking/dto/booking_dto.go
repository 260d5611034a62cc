package dto

import (
	"time"

	"anoa.com/usherhire/internal/entity"
	"github.com/google/uuid"
)

type ApplyRequest struct {
	Notes *string `json:"notes" binding:"omitempty,max=2000"`
}

type UpdateStatusRequest struct {
	Status entity.BookingStatus `json:"status" binding:"required"`
}

type ListBookingsQuery struct {
	Status string `form:"status"`
}

// BookingDetail is a booking as seen by one of its parties.
type BookingDetail struct {
	*entity.Booking
	Role               string                 `json:"viewer_role"`
	AllowedTransitions []entity.BookingStatus `json:"allowed_transitions"`
}

type ApplicationsResponse struct {
	Event        *entity.Event                  `json:"event"`
	Applications []entity.Booking               `json:"applications"`
	Counts       map[entity.BookingStatus]int64 `json:"counts"`
}

// BookingMessage is published on the broker after a booking changes.
type BookingMessage struct {
	BookingID      uuid.UUID            `json:"booking_id"`
	EventID        uuid.UUID            `json:"event_id"`
	UsherID        uuid.UUID            `json:"usher_id"`
	ActorID        uuid.UUID            `json:"actor_id"`
	Status         entity.BookingStatus `json:"status"`
	PreviousStatus entity.BookingStatus `json:"previous_status,omitempty"`
	OccurredAt     time.Time            `json:"occurred_at"`
}
