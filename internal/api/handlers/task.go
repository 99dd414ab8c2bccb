package handlers

import (
	"errors"
	"net/http"

	"office-management-backend/internal/auth"
	apperrors "office-management-backend/internal/errors"
	"office-management-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TaskHandler handles HTTP requests for tasks
type TaskHandler struct {
	service service.TaskServiceInterface
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(service service.TaskServiceInterface) *TaskHandler {
	return &TaskHandler{service: service}
}

// CreateTask handles POST /api/tasks
// @Summary Create a new task
// @Description Assign a new task to an employee within the caller's scope
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body service.CreateTaskRequest true "Task data"
// @Success 201 {object} service.TaskResponse "Successfully created task"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Assignee outside caller's scope"
// @Failure 404 {object} map[string]interface{} "Assignee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	task, err := h.service.Create(actor, &req)
	if err != nil {
		var validationErr *apperrors.ValidationError
		switch {
		case errors.Is(err, apperrors.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrScopeViolation), errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			internalError(c, "Failed to create task", err)
		}
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListTasks handles GET /api/tasks
// @Summary List tasks
// @Description Get all tasks visible to the caller. Staff see their own tasks, administrators see tasks within their scope
// @Tags tasks
// @Accept json
// @Produce json
// @Success 200 {array} service.TaskResponse "Successfully retrieved tasks"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	tasks, err := h.service.List(actor)
	if err != nil {
		internalError(c, "Failed to list tasks", err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTask handles GET /api/tasks/:id
// @Summary Get task by ID
// @Description Get a specific task by its UUID, provided it lies within the caller's scope
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 200 {object} service.TaskResponse "Successfully retrieved task"
// @Failure 400 {object} map[string]interface{} "Invalid task ID"
// @Failure 403 {object} map[string]interface{} "Task outside caller's scope"
// @Failure 404 {object} map[string]interface{} "Task not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID: invalid UUID format"})
		return
	}

	task, err := h.service.GetByID(actor, id)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			internalError(c, "Failed to get task", err)
		}
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask handles PATCH /api/tasks/:id
// @Summary Update a task
// @Description Update a task. Staff may only change status, completion level and notes on their own tasks
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param task body service.UpdateTaskRequest true "Updated task data"
// @Success 200 {object} service.TaskResponse "Successfully updated task"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Update not permitted for caller"
// @Failure 404 {object} map[string]interface{} "Task not found"
// @Failure 422 {object} map[string]interface{} "Disallowed status transition"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /tasks/{id} [patch]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID: invalid UUID format"})
		return
	}

	var req service.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	task, err := h.service.Update(actor, id, &req)
	if err != nil {
		var validationErr *apperrors.ValidationError
		var transitionErr *apperrors.StateTransitionError
		switch {
		case errors.Is(err, apperrors.ErrTaskNotFound), errors.Is(err, apperrors.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrForbidden), errors.Is(err, apperrors.ErrScopeViolation):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.As(err, &transitionErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			internalError(c, "Failed to update task", err)
		}
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/tasks/:id
// @Summary Delete a task
// @Description Delete a task within the caller's scope
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 204 "Successfully deleted task"
// @Failure 400 {object} map[string]interface{} "Invalid task ID"
// @Failure 403 {object} map[string]interface{} "Task outside caller's scope"
// @Failure 404 {object} map[string]interface{} "Task not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(actor, id); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			internalError(c, "Failed to delete task", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
