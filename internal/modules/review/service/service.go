package review

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"anoa.com/usherhire/internal/entity"
	bookingRepo "anoa.com/usherhire/internal/modules/booking/repository"
	profileRepo "anoa.com/usherhire/internal/modules/profile/repository"
	"anoa.com/usherhire/internal/modules/review/dto"
	"anoa.com/usherhire/internal/modules/review/rating"
	reviewRepo "anoa.com/usherhire/internal/modules/review/repository"
	search "anoa.com/usherhire/internal/modules/search/service"
	"anoa.com/usherhire/pkg/apperror"
	"anoa.com/usherhire/pkg/mq"
	"anoa.com/usherhire/pkg/ratelimiter"
	"anoa.com/usherhire/pkg/sanitize"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewService interface {
	SubmitReview(ctx context.Context, reviewerID, bookingID uuid.UUID, req dto.SubmitReviewRequest) (*dto.ReviewResponse, error)
}

type reviewService struct {
	reviewRepo   reviewRepo.ReviewRepository
	bookingRepo  bookingRepo.BookingRepository
	profileRepo  profileRepo.ProfileRepository
	limiter      ratelimiter.Limiter
	publisher    mq.Publisher
	index        search.UsherIndex
	reviewWindow time.Duration
	now          func() time.Time
}

func NewReviewService(
	reviewRepo reviewRepo.ReviewRepository,
	bookingRepo bookingRepo.BookingRepository,
	profileRepo profileRepo.ProfileRepository,
	limiter ratelimiter.Limiter,
	publisher mq.Publisher,
	index search.UsherIndex,
	reviewWindow time.Duration,
) ReviewService {
	return &reviewService{
		reviewRepo:   reviewRepo,
		bookingRepo:  bookingRepo,
		profileRepo:  profileRepo,
		limiter:      limiter,
		publisher:    publisher,
		index:        index,
		reviewWindow: reviewWindow,
		now:          time.Now,
	}
}

func (s *reviewService) SubmitReview(ctx context.Context, reviewerID, bookingID uuid.UUID, req dto.SubmitReviewRequest) (*dto.ReviewResponse, error) {
	if !rating.Valid(req.Rating) {
		return nil, fmt.Errorf("rating must be between %d and %d: %w", entity.MinRating, entity.MaxRating, apperror.ErrInvalidInput)
	}

	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking not found: %w", apperror.ErrNotFound)
		}
		return nil, apperror.Upstream(err)
	}
	if booking.Event == nil || booking.Event.PlannerID != reviewerID {
		return nil, fmt.Errorf("only the event planner can review this booking: %w", apperror.ErrForbidden)
	}
	if booking.Status != entity.BookingCompleted {
		return nil, fmt.Errorf("only completed bookings can be reviewed: %w", apperror.ErrConflict)
	}

	if _, err := s.reviewRepo.FindByBookingID(ctx, bookingID); err == nil {
		return nil, fmt.Errorf("this booking has already been reviewed: %w", apperror.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Upstream(err)
	}

	if err := s.limiter.Acquire(ctx, reviewerID, ratelimiter.ScopeReview, bookingID, s.reviewWindow); err != nil {
		return nil, err
	}

	review := &entity.Review{
		BookingID:  bookingID,
		ReviewerID: reviewerID,
		RevieweeID: booking.UsherID,
		Rating:     req.Rating,
		Comment:    sanitize.Optional(req.Comment),
	}

	newRating, err := s.reviewRepo.CreateAndRecompute(ctx, review)
	if err != nil {
		_ = s.limiter.Release(ctx, reviewerID, ratelimiter.ScopeReview, bookingID)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("this booking has already been reviewed: %w", apperror.ErrConflict)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("usher profile not found: %w", apperror.ErrNotFound)
		}
		return nil, apperror.Upstream(err)
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = s.now().UTC()
	}

	s.reindex(ctx, booking.UsherID)

	mq.PublishBestEffort(ctx, s.publisher, mq.KeyReviewSubmitted, dto.ReviewMessage{
		ReviewID:    review.ID,
		BookingID:   bookingID,
		ReviewerID:  reviewerID,
		RevieweeID:  booking.UsherID,
		Rating:      review.Rating,
		UsherRating: newRating,
		OccurredAt:  review.CreatedAt,
	})

	return &dto.ReviewResponse{Review: review, UsherRating: newRating}, nil
}

func (s *reviewService) reindex(ctx context.Context, usherID uuid.UUID) {
	if s.index == nil {
		return
	}
	profile, err := s.profileRepo.FindByID(ctx, usherID)
	if err != nil {
		log.Printf("[search] failed to load usher %s for indexing: %v", usherID, err)
		return
	}
	if err := s.index.IndexUsher(profile); err != nil {
		log.Printf("[search] failed to index usher %s: %v", usherID, err)
	}
}
