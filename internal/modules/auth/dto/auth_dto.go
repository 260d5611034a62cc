package dto

import (
	"anoa.com/usherhire/internal/entity"
	"github.com/google/uuid"
)

type SignUpInput struct {
	Email    string          `json:"email" binding:"required,email,max=255"`
	Password string          `json:"password" binding:"required,min=6,max=72"`
	FullName string          `json:"full_name" binding:"required,max=100"`
	Phone    *string         `json:"phone" binding:"omitempty,max=30"`
	UserType entity.UserType `json:"user_type" binding:"required,oneof=usher planner"`
}

type SignInInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   int64           `json:"expires_in"`
	User        *entity.User    `json:"user"`
	Profile     *entity.Profile `json:"profile"`
}

type CurrentUserResponse struct {
	ID       uuid.UUID       `json:"id"`
	Email    string          `json:"email"`
	UserType entity.UserType `json:"user_type"`
	FullName string          `json:"full_name"`
}
