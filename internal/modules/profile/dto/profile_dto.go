package dto

import (
	"anoa.com/usherhire/internal/entity"
)

// UpdateProfileInput patches the shared profile. Empty strings clear the
// optional fields.
type UpdateProfileInput struct {
	FullName  *string `json:"full_name" form:"full_name" binding:"omitempty,max=100"`
	Phone     *string `json:"phone" form:"phone" binding:"omitempty,max=30"`
	AvatarURL *string `json:"avatar_url" form:"avatar_url" binding:"omitempty,max=500"`
}

type UpdateUsherProfileInput struct {
	HourlyRate         *float64                   `json:"hourly_rate" binding:"omitempty,gte=0,lte=100000"`
	ExperienceYears    *int                       `json:"experience_years" binding:"omitempty,gte=0,lte=80"`
	Bio                *string                    `json:"bio" binding:"omitempty,max=2000"`
	Skills             *[]string                  `json:"skills" binding:"omitempty,max=50"`
	Certifications     *[]string                  `json:"certifications" binding:"omitempty,max=50"`
	Availability       map[string]any             `json:"availability"`
	AvailabilityStatus *entity.AvailabilityStatus `json:"availability_status"`
}

type ProfileResponse struct {
	Profile      *entity.Profile `json:"profile"`
	Completeness int             `json:"completeness"`
}

type UsherListQuery struct {
	Search             string  `form:"search"`
	AvailabilityStatus string  `form:"availability_status"`
	MinRating          float64 `form:"min_rating" binding:"omitempty,gte=0,lte=5"`
	Limit              int     `form:"limit" binding:"omitempty,min=1,max=100"`
}

type UsherListResponse struct {
	Data  []entity.Profile `json:"data"`
	Total int              `json:"total"`
}

// UsherDetail is the planner facing view of one usher.
type UsherDetail struct {
	Profile *entity.Profile `json:"profile"`
	Reviews []entity.Review `json:"reviews"`
}
