package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserType string

const (
	UserTypeUsher   UserType = "usher"
	UserTypePlanner UserType = "planner"
)

func (t UserType) Valid() bool {
	return t == UserTypeUsher || t == UserTypePlanner
}

// User is the identity record. Its id is shared with the Profile.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	Profile      *Profile  `gorm:"foreignKey:ID;references:ID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		u.ID = id
	}
	return nil
}

type Profile struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserType     UserType      `gorm:"size:20;not null;index" json:"user_type"`
	FullName     string        `gorm:"size:100;not null" json:"full_name"`
	Email        string        `gorm:"size:255;not null" json:"email"`
	Phone        *string       `gorm:"size:30" json:"phone,omitempty"`
	AvatarURL    *string       `gorm:"type:text" json:"avatar_url,omitempty"`
	CreatedAt    time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
	UsherProfile *UsherProfile `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"usher_profile,omitempty"`
}

func (p *Profile) IsUsher() bool {
	return p != nil && p.UserType == UserTypeUsher
}

func (p *Profile) IsPlanner() bool {
	return p != nil && p.UserType == UserTypePlanner
}
