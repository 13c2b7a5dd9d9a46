package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhub/taskhub-api/internal/apperrors"
	"github.com/taskhub/taskhub-api/internal/middleware"
	"github.com/taskhub/taskhub-api/internal/services"
)

// UserHandler exposes the admin user listing and the profile endpoint.
type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List returns a filtered, paginated page of users.
func (h *UserHandler) List(c *gin.Context) {
	filters := queryFilters(c,
		[]string{"email", "username", "full_name"},
		[]string{"is_deleted"},
	)
	page, limit, orderBy := pageParams(c)

	users, pg := h.users.List(c.Request.Context(), filters, page, limit, orderBy)
	respondPage(c, users, pg)
}

// Profile returns the authenticated user.
func (h *UserHandler) Profile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, apperrors.Unauthorized("not authenticated"))
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, user)
}
