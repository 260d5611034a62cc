//go:build integration

package booking_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"anoa.com/usherhire/internal/entity"
	bookingRepo "anoa.com/usherhire/internal/modules/booking/repository"
	"anoa.com/usherhire/internal/modules/booking/dto"
	booking "anoa.com/usherhire/internal/modules/booking/service"
	eventRepo "anoa.com/usherhire/internal/modules/event/repository"
	profileRepo "anoa.com/usherhire/internal/modules/profile/repository"
	"anoa.com/usherhire/internal/testutil"
	"anoa.com/usherhire/pkg/apperror"
	"anoa.com/usherhire/pkg/mq"
	"anoa.com/usherhire/pkg/ratelimiter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newIntegrationService(db *gorm.DB) booking.BookingService {
	return booking.NewBookingService(
		bookingRepo.NewBookingRepository(db),
		eventRepo.NewEventRepository(db),
		profileRepo.NewProfileRepository(db),
		ratelimiter.New(nil),
		mq.NewNopPublisher(),
		0,
	)
}

func TestIntegration_ConcurrentApplyCreatesOneBooking(t *testing.T) {
	db := testutil.OpenPostgres(t)
	planner := testutil.CreateAccount(t, db, "planner@example.com", entity.UserTypePlanner)
	usher := testutil.CreateAccount(t, db, "usher@example.com", entity.UserTypeUsher)
	event := testutil.CreateEvent(t, db, planner.ID, entity.EventPublished, time.Now().AddDate(0, 0, 7))

	svc := newIntegrationService(db)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Apply(context.Background(), usher.ID, event.ID, dto.ApplyRequest{})
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, apperror.ErrConflict):
			conflicted++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, conflicted)

	var count int64
	require.NoError(t, db.Model(&entity.Booking{}).Where("event_id = ? AND usher_id = ?", event.ID, usher.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestIntegration_CompleteIncrementsTotalEvents(t *testing.T) {
	db := testutil.OpenPostgres(t)
	planner := testutil.CreateAccount(t, db, "planner@example.com", entity.UserTypePlanner)
	usher := testutil.CreateAccount(t, db, "usher@example.com", entity.UserTypeUsher)
	event := testutil.CreateEvent(t, db, planner.ID, entity.EventPublished, time.Now())
	b := testutil.CreateBooking(t, db, event.ID, usher.ID, entity.BookingAccepted)

	svc := newIntegrationService(db)

	updated, err := svc.Transition(context.Background(), planner.ID, b.ID, entity.BookingCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingCompleted, updated.Status)

	var up entity.UsherProfile
	require.NoError(t, db.Where("user_id = ?", usher.ID).First(&up).Error)
	assert.Equal(t, 1, up.TotalEvents)

	// completed is terminal, so a repeat does not count twice
	_, err = svc.Transition(context.Background(), planner.ID, b.ID, entity.BookingCompleted)
	assert.ErrorIs(t, err, apperror.ErrConflict)

	require.NoError(t, db.Where("user_id = ?", usher.ID).First(&up).Error)
	assert.Equal(t, 1, up.TotalEvents)
}

func TestIntegration_StaleTransitionLoses(t *testing.T) {
	db := testutil.OpenPostgres(t)
	planner := testutil.CreateAccount(t, db, "planner@example.com", entity.UserTypePlanner)
	usher := testutil.CreateAccount(t, db, "usher@example.com", entity.UserTypeUsher)
	event := testutil.CreateEvent(t, db, planner.ID, entity.EventPublished, time.Now().AddDate(0, 0, 3))
	b := testutil.CreateBooking(t, db, event.ID, usher.ID, entity.BookingPending)

	repo := bookingRepo.NewBookingRepository(db)
	require.NoError(t, repo.UpdateStatus(context.Background(), b.ID, entity.BookingPending, entity.BookingAccepted))

	err := repo.UpdateStatus(context.Background(), b.ID, entity.BookingPending, entity.BookingRejected)
	assert.ErrorIs(t, err, bookingRepo.ErrStatusChanged)
}
