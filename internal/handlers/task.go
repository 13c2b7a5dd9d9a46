package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/taskhub/taskhub-api/internal/apperrors"
	"github.com/taskhub/taskhub-api/internal/schemas"
	"github.com/taskhub/taskhub-api/internal/services"
)

// TaskHandler exposes task CRUD.
type TaskHandler struct {
	tasks *services.TaskService
}

func NewTaskHandler(tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// List returns a filtered, paginated page of tasks.
func (h *TaskHandler) List(c *gin.Context) {
	filters := queryFilters(c,
		[]string{"title", "group_id", "assigned_to"},
		[]string{"is_deleted"},
	)
	filters = listFilters(c, filters, "status")
	page, limit, orderBy := pageParams(c)

	tasks, pg := h.tasks.List(c.Request.Context(), filters, page, limit, orderBy)
	respondPage(c, tasks, pg)
}

// Create persists a new task.
func (h *TaskHandler) Create(c *gin.Context) {
	var req schemas.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation(err, "invalid request body"))
		return
	}

	task, err := h.tasks.CreateTask(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, task)
}

// Get returns one task by id.
func (h *TaskHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.Validation(err, "invalid task id"))
		return
	}

	task, err := h.tasks.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, task)
}

// Update applies a partial update to a task.
func (h *TaskHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.Validation(err, "invalid task id"))
		return
	}

	var req schemas.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation(err, "invalid request body"))
		return
	}

	task, err := h.tasks.UpdateTask(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, task)
}

// Delete soft-deletes a task by default; ?hard=true removes the row.
func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.Validation(err, "invalid task id"))
		return
	}

	soft := c.Query("hard") != "true"
	if err := h.tasks.DeleteByID(c.Request.Context(), id, soft); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, true)
}
