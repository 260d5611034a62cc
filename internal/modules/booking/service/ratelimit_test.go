package booking_test

import (
	"context"
	"testing"

	"anoa.com/usherhire/internal/mocks"
	"anoa.com/usherhire/internal/modules/booking/dto"
	booking "anoa.com/usherhire/internal/modules/booking/service"
	"anoa.com/usherhire/pkg/apperror"
	"anoa.com/usherhire/pkg/mq"
	"anoa.com/usherhire/pkg/ratelimiter"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestApply_TwoEventsInsideWindow(t *testing.T) {
	rdb, mockRedis := redismock.NewClientMock()
	bookings := mocks.NewBookingRepository(t)
	events := mocks.NewEventRepository(t)
	profiles := mocks.NewProfileRepository(t)
	publisher := mocks.NewPublisher(t)
	svc := booking.NewBookingService(bookings, events, profiles, ratelimiter.New(rdb), publisher, applyWindow)

	ctx := context.Background()
	usherID := uuid.New()
	gala := publishedEvent(uuid.New())
	expo := publishedEvent(uuid.New())

	profiles.On("FindByID", ctx, usherID).Return(usherProfile(usherID), nil)
	for _, eventID := range []uuid.UUID{gala.ID, expo.ID} {
		bookings.On("FindByEventAndUsher", ctx, eventID, usherID).Return(nil, gorm.ErrRecordNotFound)
		mockRedis.ExpectSetNX(ratelimiter.Key(usherID, ratelimiter.ScopeApply, eventID), "locked", applyWindow).SetVal(true)
	}
	events.On("FindByID", ctx, gala.ID).Return(gala, nil)
	events.On("FindByID", ctx, expo.ID).Return(expo, nil)
	bookings.On("Create", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil)
	publisher.On("PublishJSON", mock.Anything, mq.KeyBookingApplied, mock.AnythingOfType("dto.BookingMessage")).Return(nil)

	_, err := svc.Apply(ctx, usherID, gala.ID, dto.ApplyRequest{})
	require.NoError(t, err)

	_, err = svc.Apply(ctx, usherID, expo.ID, dto.ApplyRequest{})
	require.NoError(t, err)

	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestApply_SameEventInsideWindowIsLimited(t *testing.T) {
	rdb, mockRedis := redismock.NewClientMock()
	bookings := mocks.NewBookingRepository(t)
	events := mocks.NewEventRepository(t)
	profiles := mocks.NewProfileRepository(t)
	svc := booking.NewBookingService(bookings, events, profiles, ratelimiter.New(rdb), mocks.NewPublisher(t), applyWindow)

	ctx := context.Background()
	usherID := uuid.New()
	event := publishedEvent(uuid.New())
	key := ratelimiter.Key(usherID, ratelimiter.ScopeApply, event.ID)

	profiles.On("FindByID", ctx, usherID).Return(usherProfile(usherID), nil)
	events.On("FindByID", ctx, event.ID).Return(event, nil)
	bookings.On("FindByEventAndUsher", ctx, event.ID, usherID).Return(nil, gorm.ErrRecordNotFound)
	mockRedis.ExpectSetNX(key, "locked", applyWindow).SetVal(false)
	mockRedis.ExpectTTL(key).SetVal(applyWindow / 2)

	_, err := svc.Apply(ctx, usherID, event.ID, dto.ApplyRequest{})

	assert.ErrorIs(t, err, apperror.ErrRateLimitExceeded)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}
