package schemas

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub-api/internal/models"
)

type CreateGroupRequest struct {
	Name string `json:"name" binding:"required,min=1" validate:"required,min=1"`
}

type UpdateGroupRequest struct {
	Name string `json:"name" binding:"required,min=1" validate:"required,min=1"`
}

type GroupOut struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func NewGroupOut(g *models.Group) GroupOut {
	return GroupOut{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt,
	}
}
