package profile

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"anoa.com/usherhire/internal/entity"
	"anoa.com/usherhire/internal/modules/dashboard/aggregate"
	profileDto "anoa.com/usherhire/internal/modules/profile/dto"
	profileRepo "anoa.com/usherhire/internal/modules/profile/repository"
	search "anoa.com/usherhire/internal/modules/search/service"
	"anoa.com/usherhire/pkg/apperror"
	commonDto "anoa.com/usherhire/pkg/dto"
	"anoa.com/usherhire/pkg/sanitize"
	"anoa.com/usherhire/pkg/storage"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfileService interface {
	GetMyProfile(ctx context.Context, userID uuid.UUID) (*profileDto.ProfileResponse, error)
	UpdateMyProfile(ctx context.Context, userID uuid.UUID, input profileDto.UpdateProfileInput, avatar *commonDto.AvatarFile) (*profileDto.ProfileResponse, error)
	UpdateUsherProfile(ctx context.Context, userID uuid.UUID, input profileDto.UpdateUsherProfileInput) (*profileDto.ProfileResponse, error)
}

type profileService struct {
	repo         profileRepo.ProfileRepository
	imageStorage storage.ImageStorage
	index        search.UsherIndex
	avatarFolder string
}

func NewProfileService(repo profileRepo.ProfileRepository, imageStorage storage.ImageStorage, index search.UsherIndex, avatarFolder string) ProfileService {
	if avatarFolder == "" {
		avatarFolder = "avatars"
	}
	return &profileService{
		repo:         repo,
		imageStorage: imageStorage,
		index:        index,
		avatarFolder: avatarFolder,
	}
}

func (s *profileService) GetMyProfile(ctx context.Context, userID uuid.UUID) (*profileDto.ProfileResponse, error) {
	profile, err := s.findProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildResponse(profile), nil
}

func (s *profileService) UpdateMyProfile(ctx context.Context, userID uuid.UUID, input profileDto.UpdateProfileInput, avatar *commonDto.AvatarFile) (*profileDto.ProfileResponse, error) {
	profile, err := s.findProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}

	if input.FullName != nil {
		fullName := sanitize.Text(*input.FullName)
		if fullName == "" {
			return nil, fmt.Errorf("full name cannot be blank: %w", apperror.ErrInvalidInput)
		}
		updates["full_name"] = fullName
	}
	if input.Phone != nil {
		updates["phone"] = clearable(input.Phone)
	}
	if input.AvatarURL != nil {
		updates["avatar_url"] = clearable(input.AvatarURL)
	}

	var uploaded string
	if avatar != nil && avatar.Reader != nil {
		if s.imageStorage == nil {
			return nil, fmt.Errorf("avatar uploads are not configured: %w", apperror.ErrBadRequest)
		}
		url, err := s.imageStorage.UploadImage(ctx, avatar.Reader, s.avatarFolder, avatar.FileName)
		if err != nil {
			if errors.Is(err, storage.ErrUnsupportedImage) {
				return nil, fmt.Errorf("%s: %w", err.Error(), apperror.ErrInvalidInput)
			}
			return nil, apperror.Upstream(err)
		}
		uploaded = url
		updates["avatar_url"] = url
	}

	if len(updates) == 0 {
		return buildResponse(profile), nil
	}

	if err := s.repo.Update(ctx, userID, updates); err != nil {
		if uploaded != "" {
			s.deleteAvatar(ctx, uploaded)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("profile not found: %w", apperror.ErrNotFound)
		}
		return nil, apperror.Upstream(err)
	}

	if old := profile.AvatarURL; old != nil && *old != "" {
		if _, changed := updates["avatar_url"]; changed && (uploaded == "" || *old != uploaded) {
			s.deleteAvatar(ctx, *old)
		}
	}

	updated, err := s.findProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.reindex(updated)

	return buildResponse(updated), nil
}

func (s *profileService) UpdateUsherProfile(ctx context.Context, userID uuid.UUID, input profileDto.UpdateUsherProfileInput) (*profileDto.ProfileResponse, error) {
	profile, err := s.findProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !profile.IsUsher() {
		return nil, fmt.Errorf("only ushers have an usher profile: %w", apperror.ErrForbidden)
	}

	updates := map[string]any{}

	if input.HourlyRate != nil {
		if *input.HourlyRate < 0 {
			return nil, fmt.Errorf("hourly rate cannot be negative: %w", apperror.ErrInvalidInput)
		}
		updates["hourly_rate"] = *input.HourlyRate
	}
	if input.ExperienceYears != nil {
		if *input.ExperienceYears < 0 {
			return nil, fmt.Errorf("experience years cannot be negative: %w", apperror.ErrInvalidInput)
		}
		updates["experience_years"] = *input.ExperienceYears
	}
	if input.Bio != nil {
		updates["bio"] = sanitize.Optional(input.Bio)
	}
	if input.Skills != nil {
		updates["skills"] = datatypes.JSONSlice[string](sanitize.List(*input.Skills))
	}
	if input.Certifications != nil {
		updates["certifications"] = datatypes.JSONSlice[string](sanitize.List(*input.Certifications))
	}
	if input.Availability != nil {
		updates["availability"] = datatypes.JSONMap(input.Availability)
	}
	if input.AvailabilityStatus != nil {
		if !input.AvailabilityStatus.Valid() {
			return nil, fmt.Errorf("availability status must be available, busy or unavailable: %w", apperror.ErrInvalidInput)
		}
		updates["availability_status"] = *input.AvailabilityStatus
	}

	if len(updates) == 0 {
		return buildResponse(profile), nil
	}

	if err := s.repo.UpdateUsherProfile(ctx, userID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("usher profile not found: %w", apperror.ErrNotFound)
		}
		return nil, apperror.Upstream(err)
	}

	updated, err := s.findProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.reindex(updated)

	return buildResponse(updated), nil
}

func (s *profileService) findProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("profile not found: %w", apperror.ErrNotFound)
		}
		return nil, apperror.Upstream(err)
	}
	return profile, nil
}

func (s *profileService) reindex(profile *entity.Profile) {
	if s.index == nil || !profile.IsUsher() {
		return
	}
	if err := s.index.IndexUsher(profile); err != nil {
		log.Printf("[search] failed to index usher %s: %v", profile.ID, err)
	}
}

func (s *profileService) deleteAvatar(ctx context.Context, url string) {
	if s.imageStorage == nil {
		return
	}
	if err := s.imageStorage.DeleteImage(ctx, url); err != nil {
		log.Printf("[storage] failed to delete avatar %s: %v", url, err)
	}
}

func buildResponse(profile *entity.Profile) *profileDto.ProfileResponse {
	return &profileDto.ProfileResponse{
		Profile:      profile,
		Completeness: aggregate.ProfileCompleteness(profile, profile.UsherProfile),
	}
}

// clearable maps a blank optional string to NULL.
func clearable(value *string) any {
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return trimmed
}
