package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityBusy        AvailabilityStatus = "busy"
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
)

func (s AvailabilityStatus) Valid() bool {
	switch s {
	case AvailabilityAvailable, AvailabilityBusy, AvailabilityUnavailable:
		return true
	}
	return false
}

// UsherProfile holds the work related attributes of an usher. Rating and
// TotalEvents are derived from reviews and completed bookings.
type UsherProfile struct {
	ID                 uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID                   `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	HourlyRate         *float64                    `gorm:"type:numeric(10,2)" json:"hourly_rate,omitempty"`
	ExperienceYears    int                         `gorm:"not null;default:0;check:experience_years >= 0" json:"experience_years"`
	Skills             datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'" json:"skills"`
	Certifications     datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'" json:"certifications"`
	Availability       datatypes.JSONMap           `gorm:"type:jsonb;not null;default:'{}'" json:"availability"`
	AvailabilityStatus AvailabilityStatus          `gorm:"size:20;not null;default:available;index" json:"availability_status"`
	Rating             float64                     `gorm:"type:numeric(3,2);not null;default:0;check:rating >= 0 AND rating <= 5" json:"rating"`
	TotalEvents        int                         `gorm:"not null;default:0" json:"total_events"`
	Bio                *string                     `gorm:"type:text" json:"bio,omitempty"`
	CreatedAt          time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u *UsherProfile) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		u.ID = id
	}
	return nil
}

// NewUsherProfile returns the initial profile created at signup.
func NewUsherProfile(userID uuid.UUID) *UsherProfile {
	return &UsherProfile{
		UserID:             userID,
		ExperienceYears:    0,
		Skills:             datatypes.JSONSlice[string]{},
		Certifications:     datatypes.JSONSlice[string]{},
		Availability:       datatypes.JSONMap{},
		AvailabilityStatus: AvailabilityAvailable,
		Rating:             0,
		TotalEvents:        0,
	}
}
