package schemas

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub-api/internal/models"
)

type AddMemberRequest struct {
	UserID uuid.UUID        `json:"user_id" binding:"required" validate:"required"`
	Role   models.GroupRole `json:"role" binding:"omitempty,oneof=admin member" validate:"omitempty,oneof=admin member"`
}

type MemberOut struct {
	GroupID  uuid.UUID        `json:"group_id"`
	UserID   uuid.UUID        `json:"user_id"`
	Role     models.GroupRole `json:"role"`
	JoinedAt time.Time        `json:"joined_at"`
}

func NewMemberOut(m *models.GroupMember) MemberOut {
	return MemberOut{
		GroupID:  m.GroupID,
		UserID:   m.UserID,
		Role:     m.Role,
		JoinedAt: m.JoinedAt,
	}
}
