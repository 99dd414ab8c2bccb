package handlers

import (
	"errors"
	"net/http"

	"office-management-backend/internal/auth"
	"office-management-backend/internal/database/models"
	apperrors "office-management-backend/internal/errors"
	"office-management-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeaveHandler handles HTTP requests for leave requests
type LeaveHandler struct {
	service service.LeaveServiceInterface
}

// NewLeaveHandler creates a new leave handler
func NewLeaveHandler(service service.LeaveServiceInterface) *LeaveHandler {
	return &LeaveHandler{service: service}
}

// CreateLeave handles POST /api/leaves
// @Summary Request leave
// @Description Submit a leave request for the calling employee. New requests always start pending
// @Tags leaves
// @Accept json
// @Produce json
// @Param leave body service.CreateLeaveRequest true "Leave request data"
// @Success 201 {object} service.LeaveResponse "Successfully created leave request"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /leaves [post]
func (h *LeaveHandler) CreateLeave(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	leave, err := h.service.Create(actor, &req)
	if err != nil {
		var validationErr *apperrors.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		internalError(c, "Failed to create leave request", err)
		return
	}

	c.JSON(http.StatusCreated, leave)
}

// ListLeaves handles GET /api/leaves
// @Summary List leave requests
// @Description Get leave requests visible to the caller, optionally filtered by approval status
// @Tags leaves
// @Accept json
// @Produce json
// @Param status query string false "Filter by status (pending, approved, rejected)"
// @Success 200 {array} service.LeaveResponse "Successfully retrieved leave requests"
// @Failure 400 {object} map[string]interface{} "Invalid status filter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /leaves [get]
func (h *LeaveHandler) ListLeaves(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	status := models.ApprovalStatus(c.Query("status"))
	if status != "" && !status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter: must be pending, approved or rejected"})
		return
	}

	leaves, err := h.service.List(actor, status)
	if err != nil {
		internalError(c, "Failed to list leave requests", err)
		return
	}

	c.JSON(http.StatusOK, leaves)
}

// UpdateLeaveStatus handles PATCH /api/leaves/:id/status
// @Summary Approve or reject a leave request
// @Description Move a pending leave request to approved or rejected. Administrators only, and only within their scope
// @Tags leaves
// @Accept json
// @Produce json
// @Param id path string true "Leave ID (UUID)"
// @Param status body service.UpdateLeaveStatusRequest true "New approval status"
// @Success 200 {object} service.LeaveResponse "Successfully updated leave status"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Caller may not decide this request"
// @Failure 404 {object} map[string]interface{} "Leave request not found"
// @Failure 422 {object} map[string]interface{} "Request already decided"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /leaves/{id}/status [patch]
func (h *LeaveHandler) UpdateLeaveStatus(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid leave ID: invalid UUID format"})
		return
	}

	var req service.UpdateLeaveStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	leave, err := h.service.UpdateStatus(actor, id, &req)
	if err != nil {
		var validationErr *apperrors.ValidationError
		var transitionErr *apperrors.StateTransitionError
		switch {
		case errors.Is(err, apperrors.ErrLeaveNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrForbidden), errors.Is(err, apperrors.ErrScopeViolation):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.As(err, &transitionErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			internalError(c, "Failed to update leave status", err)
		}
		return
	}

	c.JSON(http.StatusOK, leave)
}
