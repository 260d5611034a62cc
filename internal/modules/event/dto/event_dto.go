package dto

import "anoa.com/usherhire/internal/entity"

const DateLayout = "2006-01-02"

type CreateEventRequest struct {
	Title        string  `json:"title" binding:"required,max=200"`
	Description  *string `json:"description" binding:"omitempty,max=5000"`
	VenueAddress string  `json:"venue_address" binding:"required,max=500"`
	EventDate    string  `json:"event_date" binding:"required,datetime=2006-01-02"`
	StartTime    string  `json:"start_time" binding:"required,hhmm"`
	EndTime      string  `json:"end_time" binding:"required,hhmm"`
	UshersNeeded int     `json:"ushers_needed" binding:"required,min=1,max=1000"`
	PayRate      float64 `json:"pay_rate" binding:"gte=0"`
	Requirements *string `json:"requirements" binding:"omitempty,max=5000"`
	DressCode    *string `json:"dress_code" binding:"omitempty,max=200"`
	Publish      bool    `json:"publish"`
}

// UpdateEventRequest patches an event. Empty strings clear the optional
// text fields.
type UpdateEventRequest struct {
	Title        *string  `json:"title" binding:"omitempty,max=200"`
	Description  *string  `json:"description" binding:"omitempty,max=5000"`
	VenueAddress *string  `json:"venue_address" binding:"omitempty,max=500"`
	EventDate    *string  `json:"event_date" binding:"omitempty,datetime=2006-01-02"`
	StartTime    *string  `json:"start_time" binding:"omitempty,hhmm"`
	EndTime      *string  `json:"end_time" binding:"omitempty,hhmm"`
	UshersNeeded *int     `json:"ushers_needed" binding:"omitempty,min=1,max=1000"`
	PayRate      *float64 `json:"pay_rate" binding:"omitempty,gte=0"`
	Requirements *string  `json:"requirements" binding:"omitempty,max=5000"`
	DressCode    *string  `json:"dress_code" binding:"omitempty,max=200"`
}

type ChangeStatusRequest struct {
	Status entity.EventStatus `json:"status" binding:"required"`
}

type ListEventsQuery struct {
	Filter string `form:"filter"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}
