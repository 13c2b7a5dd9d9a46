package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Group struct {
	ID        uuid.UUID `gorm:"type:char(36);primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`

	// Group owns members and tasks by foreign key only; deleting a group
	// does not cascade to either.
	Members []GroupMember `gorm:"foreignKey:GroupID" json:"members,omitempty"`
	Tasks   []Task        `gorm:"foreignKey:GroupID" json:"tasks,omitempty"`
}

func (g *Group) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
