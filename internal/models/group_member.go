package models

import (
	"time"

	"github.com/google/uuid"
)

type GroupRole string

const (
	RoleAdmin  GroupRole = "admin"
	RoleMember GroupRole = "member"
)

// GroupMember links a user to a group with a role. The composite primary key
// guarantees at most one membership record per (group, user) pair.
type GroupMember struct {
	GroupID  uuid.UUID `gorm:"type:char(36);primarykey" json:"group_id"`
	UserID   uuid.UUID `gorm:"type:char(36);primarykey" json:"user_id"`
	Role     GroupRole `gorm:"type:varchar(20);not null" json:"role"`
	JoinedAt time.Time `json:"joined_at"`

	// Relations
	Group Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
