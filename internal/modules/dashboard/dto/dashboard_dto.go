package dto

import (
	"anoa.com/usherhire/internal/entity"
	"anoa.com/usherhire/internal/modules/dashboard/aggregate"
)

type DashboardQuery struct {
	Filter string `form:"filter"`
}

type PlannerEventItem struct {
	entity.Event
	Applications aggregate.EventCounts `json:"applications"`
}

type PlannerDashboard struct {
	Profile *entity.Profile          `json:"profile"`
	Stats   aggregate.PlannerSummary `json:"stats"`
	Filter  aggregate.EventFilter    `json:"filter"`
	Events  []PlannerEventItem       `json:"events"`
}

type UsherDashboard struct {
	Profile          *entity.Profile        `json:"profile"`
	Stats            aggregate.UsherSummary `json:"stats"`
	Completeness     int                    `json:"profile_completeness"`
	UpcomingBookings []entity.Booking       `json:"upcoming_bookings"`
	AvailableEvents  []entity.Event         `json:"available_events"`
}
