package review_test

import (
	"context"
	"testing"

	"anoa.com/usherhire/internal/mocks"
	"anoa.com/usherhire/internal/modules/review/dto"
	review "anoa.com/usherhire/internal/modules/review/service"
	"anoa.com/usherhire/pkg/mq"
	"anoa.com/usherhire/pkg/ratelimiter"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSubmitReview_SecondBookingInsideWindow(t *testing.T) {
	rdb, mockRedis := redismock.NewClientMock()
	reviews := mocks.NewReviewRepository(t)
	bookings := mocks.NewBookingRepository(t)
	publisher := mocks.NewPublisher(t)
	svc := review.NewReviewService(reviews, bookings, mocks.NewProfileRepository(t), ratelimiter.New(rdb), publisher, nil, reviewWindow)

	ctx := context.Background()
	plannerID, usherID := uuid.New(), uuid.New()
	first := completedBooking(plannerID, usherID)
	second := completedBooking(plannerID, usherID)

	for _, bookingID := range []uuid.UUID{first.ID, second.ID} {
		mockRedis.ExpectSetNX(ratelimiter.Key(plannerID, ratelimiter.ScopeReview, bookingID), "locked", reviewWindow).SetVal(true)
		reviews.On("FindByBookingID", ctx, bookingID).Return(nil, gorm.ErrRecordNotFound)
	}
	bookings.On("FindByID", ctx, first.ID).Return(first, nil)
	bookings.On("FindByID", ctx, second.ID).Return(second, nil)
	reviews.On("CreateAndRecompute", ctx, mock.Anything).Return(4.0, nil).Once()
	reviews.On("CreateAndRecompute", ctx, mock.Anything).Return(4.5, nil).Once()
	publisher.On("PublishJSON", mock.Anything, mq.KeyReviewSubmitted, mock.AnythingOfType("dto.ReviewMessage")).Return(nil)

	res, err := svc.SubmitReview(ctx, plannerID, first.ID, dto.SubmitReviewRequest{Rating: 4})
	require.NoError(t, err)
	assert.Equal(t, 4.0, res.UsherRating)

	res, err = svc.SubmitReview(ctx, plannerID, second.ID, dto.SubmitReviewRequest{Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, 4.5, res.UsherRating)

	assert.NoError(t, mockRedis.ExpectationsWereMet())
}
