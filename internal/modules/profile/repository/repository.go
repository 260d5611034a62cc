package repository

import (
	"context"
	"strings"

	"anoa.com/usherhire/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UsherFilter struct {
	Search             string
	AvailabilityStatus entity.AvailabilityStatus
	MinRating          float64
	Limit              int
}

type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	FindUsherProfile(ctx context.Context, userID uuid.UUID) (*entity.UsherProfile, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) error
	UpdateUsherProfile(ctx context.Context, userID uuid.UUID, updates map[string]any) error
	ListUshers(ctx context.Context, filter UsherFilter) ([]entity.Profile, error)
	FindUshersByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Profile, error)
	CountByType(ctx context.Context) (map[entity.UserType]int64, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profile entity.Profile
	if err := r.db.WithContext(ctx).
		Preload("UsherProfile").
		Where("id = ?", id).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindUsherProfile(ctx context.Context, userID uuid.UUID) (*entity.UsherProfile, error) {
	var usherProfile entity.UsherProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&usherProfile).Error; err != nil {
		return nil, err
	}
	return &usherProfile, nil
}

func (r *profileRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(&entity.Profile{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *profileRepository) UpdateUsherProfile(ctx context.Context, userID uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(&entity.UsherProfile{}).Where("user_id = ?", userID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *profileRepository) ListUshers(ctx context.Context, filter UsherFilter) ([]entity.Profile, error) {
	query := r.db.WithContext(ctx).
		Model(&entity.Profile{}).
		Select("profiles.*").
		Joins("JOIN usher_profiles ON usher_profiles.user_id = profiles.id").
		Where("profiles.user_type = ?", entity.UserTypeUsher).
		Preload("UsherProfile")

	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + escapeLike(strings.ToLower(search)) + "%"
		query = query.Where(
			"(LOWER(profiles.full_name) LIKE ? OR LOWER(COALESCE(usher_profiles.bio, '')) LIKE ? OR LOWER(usher_profiles.skills::text) LIKE ?)",
			like, like, like,
		)
	}
	if filter.AvailabilityStatus != "" {
		query = query.Where("usher_profiles.availability_status = ?", filter.AvailabilityStatus)
	}
	if filter.MinRating > 0 {
		query = query.Where("usher_profiles.rating >= ?", filter.MinRating)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var profiles []entity.Profile
	if err := query.
		Order("usher_profiles.rating DESC").
		Order("profiles.full_name ASC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) FindUshersByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Profile, error) {
	if len(ids) == 0 {
		return []entity.Profile{}, nil
	}

	var profiles []entity.Profile
	if err := r.db.WithContext(ctx).
		Preload("UsherProfile").
		Where("id IN ? AND user_type = ?", ids, entity.UserTypeUsher).
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) CountByType(ctx context.Context) (map[entity.UserType]int64, error) {
	var rows []struct {
		UserType entity.UserType
		Total    int64
	}
	if err := r.db.WithContext(ctx).
		Model(&entity.Profile{}).
		Select("user_type, COUNT(*) AS total").
		Group("user_type").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := map[entity.UserType]int64{
		entity.UserTypeUsher:   0,
		entity.UserTypePlanner: 0,
	}
	for _, row := range rows {
		counts[row.UserType] = row.Total
	}
	return counts, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
