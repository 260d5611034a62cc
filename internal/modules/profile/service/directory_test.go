package profile_test

import (
	"context"
	"errors"
	"testing"

	"anoa.com/usherhire/internal/entity"
	"anoa.com/usherhire/internal/mocks"
	profileDto "anoa.com/usherhire/internal/modules/profile/dto"
	profileRepo "anoa.com/usherhire/internal/modules/profile/repository"
	profile "anoa.com/usherhire/internal/modules/profile/service"
	search "anoa.com/usherhire/internal/modules/search/service"
	"anoa.com/usherhire/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestListUshers_DatabaseWithoutIndex(t *testing.T) {
	repo := mocks.NewProfileRepository(t)
	svc := profile.NewDirectoryService(repo, mocks.NewReviewRepository(t), nil)
	ctx := context.Background()

	repo.On("ListUshers", ctx, profileRepo.UsherFilter{
		Search:             "greet",
		AvailabilityStatus: entity.AvailabilityAvailable,
		MinRating:          4,
		Limit:              50,
	}).Return([]entity.Profile{*usher(uuid.New())}, nil)

	res, err := svc.ListUshers(ctx, profileDto.UsherListQuery{Search: " greet ", AvailabilityStatus: "available", MinRating: 4})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
}

func TestListUshers_AllStatusMeansNoFilter(t *testing.T) {
	repo := mocks.NewProfileRepository(t)
	svc := profile.NewDirectoryService(repo, mocks.NewReviewRepository(t), nil)
	ctx := context.Background()

	repo.On("ListUshers", ctx, profileRepo.UsherFilter{Limit: 50}).Return([]entity.Profile{}, nil)

	res, err := svc.ListUshers(ctx, profileDto.UsherListQuery{AvailabilityStatus: "all"})

	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
}

func TestListUshers_IndexOrderPreserved(t *testing.T) {
	repo := mocks.NewProfileRepository(t)
	index := mocks.NewUsherIndex(t)
	svc := profile.NewDirectoryService(repo, mocks.NewReviewRepository(t), index)
	ctx := context.Background()
	a, b := usher(uuid.New()), usher(uuid.New())

	index.On("SearchUshers", search.UsherQuery{Search: "vip", Limit: 10}).Return([]uuid.UUID{b.ID, a.ID}, nil)
	repo.On("FindUshersByIDs", ctx, []uuid.UUID{b.ID, a.ID}).Return([]entity.Profile{*a, *b}, nil)

	res, err := svc.ListUshers(ctx, profileDto.UsherListQuery{Search: "vip", Limit: 10})

	require.NoError(t, err)
	require.Len(t, res.Data, 2)
	assert.Equal(t, b.ID, res.Data[0].ID)
	assert.Equal(t, a.ID, res.Data[1].ID)
}

func TestListUshers_IndexFailureFallsBack(t *testing.T) {
	repo := mocks.NewProfileRepository(t)
	index := mocks.NewUsherIndex(t)
	svc := profile.NewDirectoryService(repo, mocks.NewReviewRepository(t), index)
	ctx := context.Background()

	index.On("SearchUshers", search.UsherQuery{Search: "vip", Limit: 50}).Return(nil, errors.New("meili unreachable"))
	repo.On("ListUshers", ctx, profileRepo.UsherFilter{Search: "vip", Limit: 50}).Return([]entity.Profile{*usher(uuid.New())}, nil)

	res, err := svc.ListUshers(ctx, profileDto.UsherListQuery{Search: "vip"})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
}

func TestListUshers_InvalidStatus(t *testing.T) {
	svc := profile.NewDirectoryService(mocks.NewProfileRepository(t), mocks.NewReviewRepository(t), nil)

	_, err := svc.ListUshers(context.Background(), profileDto.UsherListQuery{AvailabilityStatus: "asleep"})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestGetUsher(t *testing.T) {
	repo := mocks.NewProfileRepository(t)
	reviews := mocks.NewReviewRepository(t)
	svc := profile.NewDirectoryService(repo, reviews, nil)
	ctx := context.Background()
	u := usher(uuid.New())

	repo.On("FindByID", ctx, u.ID).Return(u, nil)
	reviews.On("ListByReviewee", ctx, u.ID).Return([]entity.Review{{Rating: 5}}, nil)

	res, err := svc.GetUsher(ctx, u.ID)

	require.NoError(t, err)
	assert.Len(t, res.Reviews, 1)
}

func TestGetUsher_PlannerIsNotAnUsher(t *testing.T) {
	repo := mocks.NewProfileRepository(t)
	svc := profile.NewDirectoryService(repo, mocks.NewReviewRepository(t), nil)
	ctx := context.Background()
	id := uuid.New()

	repo.On("FindByID", ctx, id).Return(&entity.Profile{ID: id, UserType: entity.UserTypePlanner}, nil)

	_, err := svc.GetUsher(ctx, id)

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetUsher_Missing(t *testing.T) {
	repo := mocks.NewProfileRepository(t)
	svc := profile.NewDirectoryService(repo, mocks.NewReviewRepository(t), nil)
	ctx := context.Background()
	id := uuid.New()

	repo.On("FindByID", ctx, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetUsher(ctx, id)

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
