package schemas

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub-api/internal/models"
)

type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email" validate:"required,email"`
	Password string  `json:"password" binding:"required,min=8" validate:"required,min=8"`
	Username *string `json:"username" binding:"omitempty,min=6,max=20" validate:"omitempty,min=6,max=20"`
	FullName string  `json:"full_name" binding:"required,min=1" validate:"required,min=1"`
}

type LoginRequest struct {
	Identity string `json:"identity" binding:"required" validate:"required"`
	Password string `json:"password" binding:"required" validate:"required"`
}

// PublicUser is the external user shape. The password hash never appears here.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  *string   `json:"username"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LoginResult struct {
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}

func NewPublicUser(u *models.User) PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
