package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/taskhub/taskhub-api/internal/apperrors"
	"github.com/taskhub/taskhub-api/internal/middleware"
	"github.com/taskhub/taskhub-api/internal/schemas"
	"github.com/taskhub/taskhub-api/internal/services"
)

// GroupHandler exposes group CRUD for the authenticated user.
type GroupHandler struct {
	groups *services.GroupService
}

func NewGroupHandler(groups *services.GroupService) *GroupHandler {
	return &GroupHandler{groups: groups}
}

// Create makes a new group with the caller as its admin member.
func (h *GroupHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, apperrors.Unauthorized("not authenticated"))
		return
	}

	var req schemas.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation(err, "invalid request body"))
		return
	}

	group, err := h.groups.CreateGroup(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, group)
}

// List returns a filtered, paginated page of groups.
func (h *GroupHandler) List(c *gin.Context) {
	filters := queryFilters(c, []string{"name"}, nil)
	page, limit, orderBy := pageParams(c)

	groups, pg := h.groups.List(c.Request.Context(), filters, page, limit, orderBy)
	respondPage(c, groups, pg)
}

// Get returns one group by id.
func (h *GroupHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.Validation(err, "invalid group id"))
		return
	}

	group, err := h.groups.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, group)
}

// Update renames a group.
func (h *GroupHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.Validation(err, "invalid group id"))
		return
	}

	var req schemas.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation(err, "invalid request body"))
		return
	}

	group, err := h.groups.Update(c.Request.Context(), id, map[string]any{"name": req.Name})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, group)
}

// Delete removes a group. Groups carry no tombstone, so this is a hard delete;
// memberships and tasks are left in place (no cascade).
func (h *GroupHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.Validation(err, "invalid group id"))
		return
	}

	if err := h.groups.DeleteByID(c.Request.Context(), id, false); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, true)
}
