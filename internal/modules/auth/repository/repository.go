package repository

import (
	"context"

	"anoa.com/usherhire/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	// CreateAccount inserts the user, its profile and, for ushers, the usher
	// profile in one transaction.
	CreateAccount(ctx context.Context, user *entity.User, profile *entity.Profile, usherProfile *entity.UsherProfile) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateAccount(ctx context.Context, user *entity.User, profile *entity.Profile, usherProfile *entity.UsherProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Profile").Create(user).Error; err != nil {
			return err
		}

		profile.ID = user.ID
		if err := tx.Omit("UsherProfile").Create(profile).Error; err != nil {
			return err
		}

		if usherProfile != nil {
			usherProfile.UserID = user.ID
			if err := tx.Create(usherProfile).Error; err != nil {
				return err
			}
			profile.UsherProfile = usherProfile
		}

		return nil
	})
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).
		Preload("Profile").
		Preload("Profile.UsherProfile").
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).
		Preload("Profile").
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
