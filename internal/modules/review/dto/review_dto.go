package dto

import (
	"time"

	"anoa.com/usherhire/internal/entity"
	"github.com/google/uuid"
)

// Rating is validated in the service so out of range values map to a
// single error.
type SubmitReviewRequest struct {
	Rating  int     `json:"rating"`
	Comment *string `json:"comment" binding:"omitempty,max=2000"`
}

type ReviewResponse struct {
	Review      *entity.Review `json:"review"`
	UsherRating float64        `json:"usher_rating"`
}

// ReviewMessage is published on the broker after a review is stored.
type ReviewMessage struct {
	ReviewID    uuid.UUID `json:"review_id"`
	BookingID   uuid.UUID `json:"booking_id"`
	ReviewerID  uuid.UUID `json:"reviewer_id"`
	RevieweeID  uuid.UUID `json:"reviewee_id"`
	Rating      int       `json:"rating"`
	UsherRating float64   `json:"usher_rating"`
	OccurredAt  time.Time `json:"occurred_at"`
}
