package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

type Task struct {
	ID          uuid.UUID  `gorm:"type:char(36);primarykey" json:"id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Status      TaskStatus `gorm:"type:varchar(20);not null;default:'todo'" json:"status"`
	Attachments []string   `gorm:"serializer:json;type:text" json:"attachments"`
	AssignedTo  *uuid.UUID `gorm:"type:char(36);index" json:"assigned_to"`
	GroupID     *uuid.UUID `gorm:"type:char(36);index" json:"group_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	IsDeleted   bool       `gorm:"not null;default:false;index" json:"is_deleted"`

	// Relations
	Assignee *User  `gorm:"foreignKey:AssignedTo" json:"assignee,omitempty"`
	Group    *Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
