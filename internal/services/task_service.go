package services

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/taskhub/taskhub-api/internal/models"
	"github.com/taskhub/taskhub-api/internal/repository"
	"github.com/taskhub/taskhub-api/internal/schemas"
	"github.com/taskhub/taskhub-api/internal/service"
)

// TaskService is plain CRUD over tasks through the generic service.
type TaskService struct {
	*service.Service[models.Task, schemas.TaskOut]
	log *zap.Logger
}

func NewTaskService(db *gorm.DB, log *zap.Logger) *TaskService {
	repo := repository.NewTaskRepository(db, log)
	return &TaskService{
		Service: service.New(repo, schemas.NewTaskOut, log),
		log:     log,
	}
}

// CreateTask validates the payload and persists a new task.
func (s *TaskService) CreateTask(ctx context.Context, req schemas.CreateTaskRequest) (schemas.TaskOut, error) {
	var zero schemas.TaskOut
	if err := schemas.Validate(req); err != nil {
		return zero, err
	}

	status := req.Status
	if status == "" {
		status = models.TaskStatusTodo
	}

	return s.Create(ctx, &models.Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      status,
		Attachments: req.Attachments,
		AssignedTo:  req.AssignedTo,
		GroupID:     req.GroupID,
	})
}

// UpdateTask applies the set fields of the request to an existing task.
func (s *TaskService) UpdateTask(ctx context.Context, id any, req schemas.UpdateTaskRequest) (schemas.TaskOut, error) {
	var zero schemas.TaskOut
	if err := schemas.Validate(req); err != nil {
		return zero, err
	}
	return s.Update(ctx, id, req.Changes())
}
