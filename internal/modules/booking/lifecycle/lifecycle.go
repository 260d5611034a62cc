// Package lifecycle holds the booking state machine. Every status change in
// the service goes through Check so the rules live in one place.
package lifecycle

import (
	"fmt"

	"anoa.com/usherhire/internal/entity"
	"anoa.com/usherhire/pkg/apperror"
)

type Role string

const (
	RolePlanner Role = "planner"
	RoleUsher   Role = "usher"
)

// edges maps current -> next -> roles allowed to trigger it.
var edges = map[entity.BookingStatus]map[entity.BookingStatus][]Role{
	entity.BookingPending: {
		entity.BookingAccepted:  {RolePlanner},
		entity.BookingRejected:  {RolePlanner},
		entity.BookingCancelled: {RolePlanner, RoleUsher},
	},
	entity.BookingAccepted: {
		entity.BookingCompleted: {RolePlanner},
		entity.BookingCancelled: {RolePlanner, RoleUsher},
	},
}

// Initial is the status of a freshly applied booking.
func Initial() entity.BookingStatus {
	return entity.BookingPending
}

// IsTerminal reports whether no transition leaves s.
func IsTerminal(s entity.BookingStatus) bool {
	return len(edges[s]) == 0
}

// Allowed lists the statuses role may move a booking to from current,
// in lifecycle order.
func Allowed(current entity.BookingStatus, role Role) []entity.BookingStatus {
	var out []entity.BookingStatus
	for _, next := range entity.BookingStatuses {
		if permits(edges[current][next], role) {
			out = append(out, next)
		}
	}
	return out
}

// Check validates current -> next for role.
// Unknown next status: ErrInvalidInput. An edge that exists but not for this
// role: ErrForbidden. No edge at all: ErrConflict.
func Check(current, next entity.BookingStatus, role Role) error {
	if !next.Valid() {
		return fmt.Errorf("unknown booking status %q: %w", next, apperror.ErrInvalidInput)
	}

	roles, ok := edges[current][next]
	if !ok {
		return fmt.Errorf("booking cannot move from %s to %s: %w", current, next, apperror.ErrConflict)
	}
	if !permits(roles, role) {
		return fmt.Errorf("%s may not move a booking from %s to %s: %w", role, current, next, apperror.ErrForbidden)
	}
	return nil
}

// AnyRoleCanReach reports whether some role may move current to next.
func AnyRoleCanReach(current, next entity.BookingStatus) bool {
	_, ok := edges[current][next]
	return ok
}

func permits(roles []Role, role Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
