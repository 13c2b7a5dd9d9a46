package schemas

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub-api/internal/models"
)

type CreateTaskRequest struct {
	Title       string            `json:"title" binding:"required,min=1" validate:"required,min=1"`
	Description string            `json:"description"`
	DueDate     *time.Time        `json:"due_date"`
	Status      models.TaskStatus `json:"status" binding:"omitempty,oneof=todo in_progress done" validate:"omitempty,oneof=todo in_progress done"`
	Attachments []string          `json:"attachments"`
	AssignedTo  *uuid.UUID        `json:"assigned_to"`
	GroupID     *uuid.UUID        `json:"group_id"`
}

type UpdateTaskRequest struct {
	Title       *string            `json:"title" binding:"omitempty,min=1" validate:"omitempty,min=1"`
	Description *string            `json:"description"`
	DueDate     *time.Time         `json:"due_date"`
	Status      *models.TaskStatus `json:"status" binding:"omitempty,oneof=todo in_progress done" validate:"omitempty,oneof=todo in_progress done"`
	Attachments []string           `json:"attachments"`
	AssignedTo  *uuid.UUID         `json:"assigned_to"`
	GroupID     *uuid.UUID         `json:"group_id"`
}

// Changes flattens the set fields into a column-change map for the
// fetch-then-mutate update path.
func (r UpdateTaskRequest) Changes() map[string]any {
	changes := map[string]any{}
	if r.Title != nil {
		changes["title"] = *r.Title
	}
	if r.Description != nil {
		changes["description"] = *r.Description
	}
	if r.DueDate != nil {
		changes["due_date"] = *r.DueDate
	}
	if r.Status != nil {
		changes["status"] = *r.Status
	}
	if r.Attachments != nil {
		changes["attachments"] = r.Attachments
	}
	if r.AssignedTo != nil {
		changes["assigned_to"] = *r.AssignedTo
	}
	if r.GroupID != nil {
		changes["group_id"] = *r.GroupID
	}
	return changes
}

type TaskOut struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	DueDate     *time.Time        `json:"due_date"`
	Status      models.TaskStatus `json:"status"`
	Attachments []string          `json:"attachments"`
	AssignedTo  *uuid.UUID        `json:"assigned_to"`
	GroupID     *uuid.UUID        `json:"group_id"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func NewTaskOut(t *models.Task) TaskOut {
	return TaskOut{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Status:      t.Status,
		Attachments: t.Attachments,
		AssignedTo:  t.AssignedTo,
		GroupID:     t.GroupID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
