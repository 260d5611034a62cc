package dashboard_test

import (
	"context"
	"testing"
	"time"

	"anoa.com/usherhire/internal/entity"
	"anoa.com/usherhire/internal/mocks"
	"anoa.com/usherhire/internal/modules/dashboard/aggregate"
	dashboard "anoa.com/usherhire/internal/modules/dashboard/service"
	"anoa.com/usherhire/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlannerDashboard(t *testing.T) {
	profiles := mocks.NewProfileRepository(t)
	events := mocks.NewEventRepository(t)
	bookings := mocks.NewBookingRepository(t)
	svc := dashboard.NewDashboardService(profiles, events, bookings)
	ctx := context.Background()
	plannerID := uuid.New()
	future := time.Now().AddDate(0, 1, 0)
	draft := entity.Event{ID: uuid.New(), PlannerID: plannerID, Status: entity.EventDraft, EventDate: future}
	open := entity.Event{ID: uuid.New(), PlannerID: plannerID, Status: entity.EventPublished, EventDate: future}

	profiles.On("FindByID", ctx, plannerID).Return(&entity.Profile{ID: plannerID, UserType: entity.UserTypePlanner}, nil)
	events.On("ListByPlanner", ctx, plannerID).Return([]entity.Event{draft, open}, nil)
	bookings.On("ListByEvents", ctx, []uuid.UUID{draft.ID, open.ID}).Return([]entity.Booking{
		{EventID: open.ID, Status: entity.BookingPending},
		{EventID: open.ID, Status: entity.BookingAccepted},
		{EventID: open.ID, Status: entity.BookingRejected},
	}, nil)

	res, err := svc.PlannerDashboard(ctx, plannerID, "draft")

	require.NoError(t, err)
	assert.Equal(t, aggregate.PlannerSummary{TotalEvents: 2, UpcomingEvents: 2, ActiveBookings: 2, UshersHired: 1}, res.Stats)
	assert.Equal(t, aggregate.FilterDraft, res.Filter)
	require.Len(t, res.Events, 1)
	assert.Equal(t, draft.ID, res.Events[0].ID)
	assert.Equal(t, aggregate.EventCounts{}, res.Events[0].Applications)
}

func TestPlannerDashboard_NoEventsSkipsBookings(t *testing.T) {
	profiles := mocks.NewProfileRepository(t)
	events := mocks.NewEventRepository(t)
	svc := dashboard.NewDashboardService(profiles, events, mocks.NewBookingRepository(t))
	ctx := context.Background()
	plannerID := uuid.New()

	profiles.On("FindByID", ctx, plannerID).Return(&entity.Profile{ID: plannerID, UserType: entity.UserTypePlanner}, nil)
	events.On("ListByPlanner", ctx, plannerID).Return([]entity.Event{}, nil)

	res, err := svc.PlannerDashboard(ctx, plannerID, "")

	require.NoError(t, err)
	assert.Equal(t, aggregate.PlannerSummary{}, res.Stats)
	assert.Empty(t, res.Events)
}

func TestPlannerDashboard_UsherForbidden(t *testing.T) {
	profiles := mocks.NewProfileRepository(t)
	svc := dashboard.NewDashboardService(profiles, mocks.NewEventRepository(t), mocks.NewBookingRepository(t))
	ctx := context.Background()
	id := uuid.New()

	profiles.On("FindByID", ctx, id).Return(&entity.Profile{ID: id, UserType: entity.UserTypeUsher}, nil)

	_, err := svc.PlannerDashboard(ctx, id, "all")

	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestUsherDashboard(t *testing.T) {
	profiles := mocks.NewProfileRepository(t)
	events := mocks.NewEventRepository(t)
	bookings := mocks.NewBookingRepository(t)
	svc := dashboard.NewDashboardService(profiles, events, bookings)
	ctx := context.Background()
	usherID := uuid.New()
	up := entity.NewUsherProfile(usherID)
	up.TotalEvents = 1
	up.Rating = 4.5

	profiles.On("FindByID", ctx, usherID).Return(&entity.Profile{ID: usherID, UserType: entity.UserTypeUsher, FullName: "Ana", UsherProfile: up}, nil)
	bookings.On("ListByUsher", ctx, usherID, (*entity.BookingStatus)(nil)).Return([]entity.Booking{
		{Status: entity.BookingCompleted, Event: &entity.Event{PayRate: 120}},
		{Status: entity.BookingPending, Event: &entity.Event{PayRate: 80}},
	}, nil)
	events.On("ListOpen", ctx, mock.AnythingOfType("time.Time"), 5).Return([]entity.Event{{Title: "Expo"}}, nil)

	res, err := svc.UsherDashboard(ctx, usherID)

	require.NoError(t, err)
	assert.Equal(t, aggregate.UsherSummary{TotalEarnings: 120, EventsCompleted: 1, AverageRating: 4.5, UpcomingBookings: 1}, res.Stats)
	assert.Equal(t, 13, res.Completeness)
	assert.Len(t, res.UpcomingBookings, 1)
	assert.Len(t, res.AvailableEvents, 1)
}

func TestDashboard_BadFilter(t *testing.T) {
	svc := dashboard.NewDashboardService(mocks.NewProfileRepository(t), mocks.NewEventRepository(t), mocks.NewBookingRepository(t))

	_, err := svc.PlannerDashboard(context.Background(), uuid.New(), "later")

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}
