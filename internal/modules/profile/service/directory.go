package profile

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"anoa.com/usherhire/internal/entity"
	profileDto "anoa.com/usherhire/internal/modules/profile/dto"
	profileRepo "anoa.com/usherhire/internal/modules/profile/repository"
	reviewRepo "anoa.com/usherhire/internal/modules/review/repository"
	search "anoa.com/usherhire/internal/modules/search/service"
	"anoa.com/usherhire/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultUsherLimit = 50

// DirectoryService is the planner facing usher directory.
type DirectoryService interface {
	ListUshers(ctx context.Context, query profileDto.UsherListQuery) (*profileDto.UsherListResponse, error)
	GetUsher(ctx context.Context, usherID uuid.UUID) (*profileDto.UsherDetail, error)
}

type directoryService struct {
	repo       profileRepo.ProfileRepository
	reviewRepo reviewRepo.ReviewRepository
	index      search.UsherIndex
}

func NewDirectoryService(repo profileRepo.ProfileRepository, reviewRepo reviewRepo.ReviewRepository, index search.UsherIndex) DirectoryService {
	return &directoryService{
		repo:       repo,
		reviewRepo: reviewRepo,
		index:      index,
	}
}

func (s *directoryService) ListUshers(ctx context.Context, query profileDto.UsherListQuery) (*profileDto.UsherListResponse, error) {
	status := entity.AvailabilityStatus(strings.ToLower(strings.TrimSpace(query.AvailabilityStatus)))
	if status == "all" {
		status = ""
	}
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("availability status must be available, busy or unavailable: %w", apperror.ErrInvalidInput)
	}
	if query.MinRating < 0 || query.MinRating > 5 {
		return nil, fmt.Errorf("min rating must be between 0 and 5: %w", apperror.ErrInvalidInput)
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultUsherLimit
	}

	filter := profileRepo.UsherFilter{
		Search:             strings.TrimSpace(query.Search),
		AvailabilityStatus: status,
		MinRating:          query.MinRating,
		Limit:              limit,
	}

	ushers, err := s.searchIndex(ctx, filter)
	if err != nil {
		log.Printf("[search] usher search failed, falling back to database: %v", err)
		ushers = nil
	}
	if ushers == nil {
		ushers, err = s.repo.ListUshers(ctx, filter)
		if err != nil {
			return nil, apperror.Upstream(err)
		}
	}

	return &profileDto.UsherListResponse{Data: ushers, Total: len(ushers)}, nil
}

// searchIndex returns nil, nil when the index is not configured or the
// query has no text to search for.
func (s *directoryService) searchIndex(ctx context.Context, filter profileRepo.UsherFilter) ([]entity.Profile, error) {
	if s.index == nil || filter.Search == "" {
		return nil, nil
	}

	ids, err := s.index.SearchUshers(search.UsherQuery{
		Search:             filter.Search,
		AvailabilityStatus: filter.AvailabilityStatus,
		MinRating:          filter.MinRating,
		Limit:              filter.Limit,
	})
	if err != nil {
		return nil, err
	}

	found, err := s.repo.FindUshersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]entity.Profile, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	ordered := make([]entity.Profile, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

func (s *directoryService) GetUsher(ctx context.Context, usherID uuid.UUID) (*profileDto.UsherDetail, error) {
	profile, err := s.repo.FindByID(ctx, usherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("usher not found: %w", apperror.ErrNotFound)
		}
		return nil, apperror.Upstream(err)
	}
	if !profile.IsUsher() {
		return nil, fmt.Errorf("usher not found: %w", apperror.ErrNotFound)
	}

	reviews, err := s.reviewRepo.ListByReviewee(ctx, usherID)
	if err != nil {
		return nil, apperror.Upstream(err)
	}

	return &profileDto.UsherDetail{Profile: profile, Reviews: reviews}, nil
}
