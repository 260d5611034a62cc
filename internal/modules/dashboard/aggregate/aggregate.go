// Package aggregate computes dashboard figures from rows already fetched.
// Nothing here touches storage and nothing is cached.
package aggregate

import (
	"fmt"
	"math"
	"strings"
	"time"

	"anoa.com/usherhire/internal/entity"
	"anoa.com/usherhire/pkg/apperror"
	"github.com/google/uuid"
)

const completenessFields = 8

type PlannerSummary struct {
	TotalEvents    int `json:"total_events"`
	UpcomingEvents int `json:"upcoming_events"`
	ActiveBookings int `json:"active_bookings"`
	UshersHired    int `json:"total_ushers_hired"`
}

type UsherSummary struct {
	TotalEarnings    float64 `json:"total_earnings"`
	EventsCompleted  int     `json:"events_completed"`
	AverageRating    float64 `json:"average_rating"`
	UpcomingBookings int     `json:"upcoming_bookings"`
}

// EventCounts is the per event tally shown next to a planner's event.
type EventCounts struct {
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
}

type EventFilter string

const (
	FilterAll      EventFilter = "all"
	FilterUpcoming EventFilter = "upcoming"
	FilterPast     EventFilter = "past"
	FilterDraft    EventFilter = "draft"
)

// ParseEventFilter accepts an empty string as "all".
func ParseEventFilter(raw string) (EventFilter, error) {
	switch f := EventFilter(strings.ToLower(strings.TrimSpace(raw))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterUpcoming, FilterPast, FilterDraft:
		return f, nil
	}
	return "", fmt.Errorf("filter must be one of all, upcoming, past, draft: %w", apperror.ErrInvalidInput)
}

func Planner(events []entity.Event, bookings []entity.Booking, today time.Time) PlannerSummary {
	summary := PlannerSummary{TotalEvents: len(events)}
	for i := range events {
		if isUpcoming(&events[i], today) {
			summary.UpcomingEvents++
		}
	}
	for _, b := range bookings {
		if b.Status.IsActive() {
			summary.ActiveBookings++
		}
		if b.Status == entity.BookingAccepted {
			summary.UshersHired++
		}
	}
	return summary
}

// Usher expects bookings with their Event loaded; a booking without one
// contributes nothing to earnings.
func Usher(usherProfile *entity.UsherProfile, bookings []entity.Booking) UsherSummary {
	var summary UsherSummary
	if usherProfile != nil {
		summary.EventsCompleted = usherProfile.TotalEvents
		summary.AverageRating = usherProfile.Rating
	}
	for _, b := range bookings {
		switch {
		case b.Status == entity.BookingCompleted && b.Event != nil:
			summary.TotalEarnings += b.Event.PayRate
		case b.Status.IsActive():
			summary.UpcomingBookings++
		}
	}
	summary.TotalEarnings = math.Round(summary.TotalEarnings*100) / 100
	return summary
}

// ProfileCompleteness returns the rounded percentage of the eight profile
// fields that are filled in.
func ProfileCompleteness(profile *entity.Profile, usherProfile *entity.UsherProfile) int {
	filled := 0
	if profile != nil {
		if strings.TrimSpace(profile.FullName) != "" {
			filled++
		}
		if present(profile.Phone) {
			filled++
		}
		if present(profile.AvatarURL) {
			filled++
		}
	}
	if usherProfile != nil {
		if present(usherProfile.Bio) {
			filled++
		}
		if usherProfile.HourlyRate != nil && *usherProfile.HourlyRate > 0 {
			filled++
		}
		if usherProfile.ExperienceYears > 0 {
			filled++
		}
		if len(usherProfile.Skills) > 0 {
			filled++
		}
		if len(usherProfile.Availability) > 0 {
			filled++
		}
	}
	return int(math.Round(float64(filled) / completenessFields * 100))
}

func FilterEvents(events []entity.Event, filter EventFilter, today time.Time) []entity.Event {
	out := make([]entity.Event, 0, len(events))
	for i := range events {
		e := &events[i]
		var keep bool
		switch filter {
		case FilterUpcoming:
			keep = isUpcoming(e, today)
		case FilterPast:
			keep = e.IsPast(today)
		case FilterDraft:
			keep = e.Status == entity.EventDraft
		default:
			keep = true
		}
		if keep {
			out = append(out, *e)
		}
	}
	return out
}

func CountsByEvent(bookings []entity.Booking) map[uuid.UUID]EventCounts {
	counts := make(map[uuid.UUID]EventCounts)
	for _, b := range bookings {
		c := counts[b.EventID]
		switch b.Status {
		case entity.BookingPending:
			c.Pending++
		case entity.BookingAccepted:
			c.Accepted++
		}
		counts[b.EventID] = c
	}
	return counts
}

// UpcomingBookings keeps pending and accepted bookings in their given order.
func UpcomingBookings(bookings []entity.Booking) []entity.Booking {
	out := make([]entity.Booking, 0)
	for _, b := range bookings {
		if b.Status.IsActive() {
			out = append(out, b)
		}
	}
	return out
}

func isUpcoming(e *entity.Event, today time.Time) bool {
	return e.IsUpcoming(today) && e.Status != entity.EventCancelled
}

func present(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
