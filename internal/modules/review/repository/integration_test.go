//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"anoa.com/usherhire/internal/entity"
	"anoa.com/usherhire/internal/modules/review/repository"
	"anoa.com/usherhire/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIntegration_RatingIsMeanOfReviews(t *testing.T) {
	db := testutil.OpenPostgres(t)
	planner := testutil.CreateAccount(t, db, "planner@example.com", entity.UserTypePlanner)
	usher := testutil.CreateAccount(t, db, "usher@example.com", entity.UserTypeUsher)
	repo := repository.NewReviewRepository(db)
	ctx := context.Background()

	first := testutil.CreateEvent(t, db, planner.ID, entity.EventCompleted, time.Now().AddDate(0, 0, -7))
	second := testutil.CreateEvent(t, db, planner.ID, entity.EventCompleted, time.Now().AddDate(0, 0, -1))
	b1 := testutil.CreateBooking(t, db, first.ID, usher.ID, entity.BookingCompleted)
	b2 := testutil.CreateBooking(t, db, second.ID, usher.ID, entity.BookingCompleted)

	got, err := repo.CreateAndRecompute(ctx, &entity.Review{BookingID: b1.ID, ReviewerID: planner.ID, RevieweeID: usher.ID, Rating: 4})
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)

	got, err = repo.CreateAndRecompute(ctx, &entity.Review{BookingID: b2.ID, ReviewerID: planner.ID, RevieweeID: usher.ID, Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, 4.5, got)

	var up entity.UsherProfile
	require.NoError(t, db.Where("user_id = ?", usher.ID).First(&up).Error)
	assert.Equal(t, 4.5, up.Rating)

	reviews, err := repo.ListByReviewee(ctx, usher.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}

func TestIntegration_SecondReviewForBookingIsRejected(t *testing.T) {
	db := testutil.OpenPostgres(t)
	planner := testutil.CreateAccount(t, db, "planner@example.com", entity.UserTypePlanner)
	usher := testutil.CreateAccount(t, db, "usher@example.com", entity.UserTypeUsher)
	repo := repository.NewReviewRepository(db)
	ctx := context.Background()

	event := testutil.CreateEvent(t, db, planner.ID, entity.EventCompleted, time.Now().AddDate(0, 0, -2))
	b := testutil.CreateBooking(t, db, event.ID, usher.ID, entity.BookingCompleted)

	_, err := repo.CreateAndRecompute(ctx, &entity.Review{BookingID: b.ID, ReviewerID: planner.ID, RevieweeID: usher.ID, Rating: 3})
	require.NoError(t, err)

	_, err = repo.CreateAndRecompute(ctx, &entity.Review{BookingID: b.ID, ReviewerID: planner.ID, RevieweeID: usher.ID, Rating: 1})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	var up entity.UsherProfile
	require.NoError(t, db.Where("user_id = ?", usher.ID).First(&up).Error)
	assert.Equal(t, 3.0, up.Rating)
}
