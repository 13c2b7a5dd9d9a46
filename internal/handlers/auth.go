package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhub/taskhub-api/internal/apperrors"
	"github.com/taskhub/taskhub-api/internal/schemas"
	"github.com/taskhub/taskhub-api/internal/services"
)

// AuthHandler exposes registration and login.
type AuthHandler struct {
	users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Register creates a new account and returns its public projection.
func (h *AuthHandler) Register(c *gin.Context) {
	var req schemas.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation(err, "invalid request body"))
		return
	}

	user, err := h.users.AuthRegister(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, user)
}

// Login verifies credentials and returns the user plus a signed token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req schemas.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation(err, "invalid request body"))
		return
	}

	result, err := h.users.AuthLogin(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, result)
}
