package profile_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"anoa.com/usherhire/internal/entity"
	"anoa.com/usherhire/internal/mocks"
	profileDto "anoa.com/usherhire/internal/modules/profile/dto"
	profile "anoa.com/usherhire/internal/modules/profile/service"
	"anoa.com/usherhire/pkg/apperror"
	commonDto "anoa.com/usherhire/pkg/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func strp(s string) *string { return &s }

func usher(id uuid.UUID) *entity.Profile {
	up := entity.NewUsherProfile(id)
	return &entity.Profile{ID: id, UserType: entity.UserTypeUsher, FullName: "Ana", UsherProfile: up}
}

func TestGetMyProfile(t *testing.T) {
	repo := mocks.NewProfileRepository(t)
	svc := profile.NewProfileService(repo, nil, nil, "")
	ctx := context.Background()
	id := uuid.New()

	repo.On("FindByID", ctx, id).Return(usher(id), nil)

	res, err := svc.GetMyProfile(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, id, res.Profile.ID)
	assert.Equal(t, 13, res.Completeness)
}

func TestGetMyProfile_NotFound(t *testing.T) {
	repo := mocks.NewProfileRepository(t)
	svc := profile.NewProfileService(repo, nil, nil, "")
	ctx := context.Background()
	id := uuid.New()

	repo.On("FindByID", ctx, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetMyProfile(ctx, id)

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUpdateMyProfile_ClearsPhone(t *testing.T) {
	repo := mocks.NewProfileRepository(t)
	index := mocks.NewUsherIndex(t)
	svc := profile.NewProfileService(repo, nil, index, "")
	ctx := context.Background()
	id := uuid.New()
	before := usher(id)
	before.Phone = strp("555")
	after := usher(id)
	after.FullName = "Ana Maria"

	repo.On("FindByID", ctx, id).Return(before, nil).Once()
	repo.On("Update", ctx, id, map[string]any{"full_name": "Ana Maria", "phone": nil}).Return(nil)
	repo.On("FindByID", ctx, id).Return(after, nil).Once()
	index.On("IndexUsher", after).Return(nil)

	res, err := svc.UpdateMyProfile(ctx, id, profileDto.UpdateProfileInput{
		FullName: strp(" Ana   Maria "),
		Phone:    strp(""),
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", res.Profile.FullName)
}

func TestUpdateMyProfile_BlankName(t *testing.T) {
	repo := mocks.NewProfileRepository(t)
	svc := profile.NewProfileService(repo, nil, nil, "")
	ctx := context.Background()
	id := uuid.New()

	repo.On("FindByID", ctx, id).Return(usher(id), nil)

	_, err := svc.UpdateMyProfile(ctx, id, profileDto.UpdateProfileInput{FullName: strp("   ")}, nil)

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestUpdateMyProfile_ReplacesAvatar(t *testing.T) {
	repo := mocks.NewProfileRepository(t)
	images := mocks.NewImageStorage(t)
	svc := profile.NewProfileService(repo, images, nil, "avatars")
	ctx := context.Background()
	id := uuid.New()
	planner := &entity.Profile{ID: id, UserType: entity.UserTypePlanner, FullName: "Pat", AvatarURL: strp("https://cdn/old.webp")}
	updated := &entity.Profile{ID: id, UserType: entity.UserTypePlanner, FullName: "Pat", AvatarURL: strp("https://cdn/new.webp")}
	file := strings.NewReader("png-bytes")

	repo.On("FindByID", ctx, id).Return(planner, nil).Once()
	images.On("UploadImage", ctx, file, "avatars", "me.png").Return("https://cdn/new.webp", nil)
	repo.On("Update", ctx, id, map[string]any{"avatar_url": "https://cdn/new.webp"}).Return(nil)
	images.On("DeleteImage", ctx, "https://cdn/old.webp").Return(nil)
	repo.On("FindByID", ctx, id).Return(updated, nil).Once()

	res, err := svc.UpdateMyProfile(ctx, id, profileDto.UpdateProfileInput{}, &commonDto.AvatarFile{Reader: file, FileName: "me.png"})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn/new.webp", *res.Profile.AvatarURL)
}

func TestUpdateMyProfile_UploadFailure(t *testing.T) {
	repo := mocks.NewProfileRepository(t)
	images := mocks.NewImageStorage(t)
	svc := profile.NewProfileService(repo, images, nil, "avatars")
	ctx := context.Background()
	id := uuid.New()

	repo.On("FindByID", ctx, id).Return(usher(id), nil)
	images.On("UploadImage", ctx, mock.Anything, "avatars", "me.png").Return("", errors.New("cloudinary down"))

	_, err := svc.UpdateMyProfile(ctx, id, profileDto.UpdateProfileInput{}, &commonDto.AvatarFile{Reader: strings.NewReader("x"), FileName: "me.png"})

	assert.ErrorIs(t, err, apperror.ErrUpstream)
}

func TestUpdateMyProfile_NoChanges(t *testing.T) {
	repo := mocks.NewProfileRepository(t)
	svc := profile.NewProfileService(repo, nil, nil, "")
	ctx := context.Background()
	id := uuid.New()

	repo.On("FindByID", ctx, id).Return(usher(id), nil)

	res, err := svc.UpdateMyProfile(ctx, id, profileDto.UpdateProfileInput{}, nil)

	require.NoError(t, err)
	assert.Equal(t, id, res.Profile.ID)
}

func TestUpdateUsherProfile(t *testing.T) {
	repo := mocks.NewProfileRepository(t)
	index := mocks.NewUsherIndex(t)
	svc := profile.NewProfileService(repo, nil, index, "")
	ctx := context.Background()
	id := uuid.New()
	rate := 30.0
	years := 4
	status := entity.AvailabilityBusy
	skills := []string{" greeting ", "", "<b>ticketing</b>"}

	repo.On("FindByID", ctx, id).Return(usher(id), nil).Once()
	repo.On("UpdateUsherProfile", ctx, id, map[string]any{
		"hourly_rate":         30.0,
		"experience_years":    4,
		"bio":                 strp("Friendly and punctual"),
		"skills":              datatypes.JSONSlice[string]{"greeting", "ticketing"},
		"availability":        datatypes.JSONMap{"weekends": true},
		"availability_status": entity.AvailabilityBusy,
	}).Return(nil)
	repo.On("FindByID", ctx, id).Return(usher(id), nil).Once()
	index.On("IndexUsher", mock.AnythingOfType("*entity.Profile")).Return(nil)

	_, err := svc.UpdateUsherProfile(ctx, id, profileDto.UpdateUsherProfileInput{
		HourlyRate:         &rate,
		ExperienceYears:    &years,
		Bio:                strp("<p>Friendly and punctual</p>"),
		Skills:             &skills,
		Availability:       map[string]any{"weekends": true},
		AvailabilityStatus: &status,
	})

	require.NoError(t, err)
}

func TestUpdateUsherProfile_PlannerForbidden(t *testing.T) {
	repo := mocks.NewProfileRepository(t)
	svc := profile.NewProfileService(repo, nil, nil, "")
	ctx := context.Background()
	id := uuid.New()

	repo.On("FindByID", ctx, id).Return(&entity.Profile{ID: id, UserType: entity.UserTypePlanner}, nil)

	_, err := svc.UpdateUsherProfile(ctx, id, profileDto.UpdateUsherProfileInput{})

	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestUpdateUsherProfile_InvalidStatus(t *testing.T) {
	repo := mocks.NewProfileRepository(t)
	svc := profile.NewProfileService(repo, nil, nil, "")
	ctx := context.Background()
	id := uuid.New()
	status := entity.AvailabilityStatus("sleeping")

	repo.On("FindByID", ctx, id).Return(usher(id), nil)

	_, err := svc.UpdateUsherProfile(ctx, id, profileDto.UpdateUsherProfileInput{AvailabilityStatus: &status})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}
