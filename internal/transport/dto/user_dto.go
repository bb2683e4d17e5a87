package dto

import (
	"time"

	"job-portal-api/internal/models"

	"github.com/google/uuid"
)

// CreateUserRequest defines the structure for registering a new account.
type CreateUserRequest struct {
	Name     string          `json:"name" validate:"required,min=2,max=100"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=8"`
	Role     models.UserRole `json:"role" validate:"required,oneof=hr seeker"`
}

// LoginRequest defines the structure for a login attempt.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GetUserByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

type GetUserByEmailRequest struct {
	Email string `json:"-" validate:"required,email"`
}

type UserResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
