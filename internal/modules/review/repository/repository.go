package repository

import (
	"context"

	"anoa.com/usherhire/internal/entity"
	"anoa.com/usherhire/internal/modules/review/rating"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository interface {
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Review, error)
	// CreateAndRecompute inserts the review and rewrites the reviewee's rating
	// as the rounded mean of all their reviews. It returns the new rating.
	CreateAndRecompute(ctx context.Context, review *entity.Review) (float64, error)
	ListByReviewee(ctx context.Context, revieweeID uuid.UUID) ([]entity.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Review, error) {
	var review entity.Review
	if err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) CreateAndRecompute(ctx context.Context, review *entity.Review) (float64, error) {
	var newRating float64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Serializes concurrent reviews of the same usher.
		var usherProfile entity.UsherProfile
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", review.RevieweeID).
			First(&usherProfile).Error; err != nil {
			return err
		}

		if err := tx.Omit("Booking", "Reviewer").Create(review).Error; err != nil {
			return err
		}

		var ratings []int
		if err := tx.Model(&entity.Review{}).
			Where("reviewee_id = ?", review.RevieweeID).
			Pluck("rating", &ratings).Error; err != nil {
			return err
		}

		newRating = rating.Mean(ratings)
		return tx.Model(&entity.UsherProfile{}).
			Where("id = ?", usherProfile.ID).
			Update("rating", newRating).Error
	})
	if err != nil {
		return 0, err
	}
	return newRating, nil
}

func (r *reviewRepository) ListByReviewee(ctx context.Context, revieweeID uuid.UUID) ([]entity.Review, error) {
	var reviews []entity.Review
	if err := r.db.WithContext(ctx).
		Preload("Reviewer").
		Where("reviewee_id = ?", revieweeID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
