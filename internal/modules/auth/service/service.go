package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"anoa.com/usherhire/internal/entity"
	"anoa.com/usherhire/internal/modules/auth/dto"
	"anoa.com/usherhire/internal/modules/auth/repository"
	search "anoa.com/usherhire/internal/modules/search/service"
	"anoa.com/usherhire/pkg/apperror"
	"anoa.com/usherhire/pkg/auth"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var errInvalidCredentials = fmt.Errorf("invalid email or password: %w", apperror.ErrUnauthorized)

type AuthService interface {
	SignUp(ctx context.Context, input dto.SignUpInput) (*dto.AuthResponse, error)
	SignIn(ctx context.Context, input dto.SignInInput) (*dto.AuthResponse, error)
	SignOut(ctx context.Context, tokenID string, expiresAt time.Time) error
	CurrentUser(ctx context.Context, userID uuid.UUID) (*dto.CurrentUserResponse, error)
}

type authService struct {
	repo     repository.UserRepository
	issuer   *auth.Issuer
	denylist auth.Denylist
	index    search.UsherIndex
	now      func() time.Time
}

func NewAuthService(repo repository.UserRepository, issuer *auth.Issuer, denylist auth.Denylist, index search.UsherIndex) AuthService {
	return &authService{
		repo:     repo,
		issuer:   issuer,
		denylist: denylist,
		index:    index,
		now:      time.Now,
	}
}

func (s *authService) SignUp(ctx context.Context, input dto.SignUpInput) (*dto.AuthResponse, error) {
	email := normalizeEmail(input.Email)
	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		return nil, fmt.Errorf("full name is required: %w", apperror.ErrInvalidInput)
	}
	if !input.UserType.Valid() {
		return nil, fmt.Errorf("user type must be usher or planner: %w", apperror.ErrInvalidInput)
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("email is already registered: %w", apperror.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Upstream(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: string(hashed),
	}
	profile := &entity.Profile{
		UserType: input.UserType,
		FullName: fullName,
		Email:    email,
		Phone:    normalizeOptional(input.Phone),
	}

	var usherProfile *entity.UsherProfile
	if input.UserType == entity.UserTypeUsher {
		usherProfile = entity.NewUsherProfile(uuid.Nil)
	}

	if err := s.repo.CreateAccount(ctx, user, profile, usherProfile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("email is already registered: %w", apperror.ErrConflict)
		}
		return nil, apperror.Upstream(err)
	}

	if profile.IsUsher() && s.index != nil {
		if err := s.index.IndexUsher(profile); err != nil {
			log.Printf("[search] failed to index usher %s: %v", profile.ID, err)
		}
	}

	return s.buildAuthResponse(user, profile)
}

func (s *authService) SignIn(ctx context.Context, input dto.SignInInput) (*dto.AuthResponse, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, apperror.Upstream(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, errInvalidCredentials
	}
	if user.Profile == nil {
		return nil, fmt.Errorf("profile not found: %w", apperror.ErrForbidden)
	}

	return s.buildAuthResponse(user, user.Profile)
}

func (s *authService) SignOut(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return apperror.ErrUnauthorized
	}
	if err := s.denylist.Revoke(ctx, tokenID, expiresAt.Sub(s.now())); err != nil {
		return apperror.Upstream(err)
	}
	return nil
}

func (s *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*dto.CurrentUserResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found: %w", apperror.ErrUnauthorized)
		}
		return nil, apperror.Upstream(err)
	}

	res := &dto.CurrentUserResponse{
		ID:    user.ID,
		Email: user.Email,
	}
	if user.Profile != nil {
		res.UserType = user.Profile.UserType
		res.FullName = user.Profile.FullName
	}
	return res, nil
}

func (s *authService) buildAuthResponse(user *entity.User, profile *entity.Profile) (*dto.AuthResponse, error) {
	token, claims, err := s.issuer.Issue(user.ID, string(profile.UserType))
	if err != nil {
		return nil, err
	}

	account := *user
	account.Profile = nil

	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   claims.ExpiresAt.Unix(),
		User:        &account,
		Profile:     profile,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}

	result := trimmed
	return &result
}
