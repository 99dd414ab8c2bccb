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

// AttendanceHandler handles HTTP requests for attendance records
type AttendanceHandler struct {
	service service.AttendanceServiceInterface
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(service service.AttendanceServiceInterface) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

// MarkAttendance handles POST /api/attendance
// @Summary Mark attendance
// @Description Record attendance for a date. Staff mark themselves, administrators may mark employees within their scope
// @Tags attendance
// @Accept json
// @Produce json
// @Param attendance body service.MarkAttendanceRequest true "Attendance data"
// @Success 201 {object} service.AttendanceResponse "Successfully marked attendance"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Target employee outside caller's scope"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 409 {object} map[string]interface{} "Attendance already marked for this date"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /attendance [post]
func (h *AttendanceHandler) MarkAttendance(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	record, err := h.service.Mark(actor, &req)
	if err != nil {
		var validationErr *apperrors.ValidationError
		switch {
		case errors.Is(err, apperrors.ErrAttendanceExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrScopeViolation), errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			internalError(c, "Failed to mark attendance", err)
		}
		return
	}

	c.JSON(http.StatusCreated, record)
}

// ListAttendance handles GET /api/attendance
// @Summary List attendance records
// @Description Get attendance records visible to the caller
// @Tags attendance
// @Accept json
// @Produce json
// @Success 200 {array} service.AttendanceResponse "Successfully retrieved attendance records"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /attendance [get]
func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	records, err := h.service.List(actor)
	if err != nil {
		internalError(c, "Failed to list attendance", err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetTodayAttendance handles GET /api/attendance/today
// @Summary Get today's attendance
// @Description Check whether the caller has already marked attendance for the current date
// @Tags attendance
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Today's attendance state"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /attendance/today [get]
func (h *AttendanceHandler) GetTodayAttendance(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	record, err := h.service.Today(actor)
	if err != nil {
		internalError(c, "Failed to get today's attendance", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"marked":     record != nil,
		"attendance": record,
	})
}

// UpdateAttendance handles PATCH /api/attendance/:id
// @Summary Correct an attendance record
// @Description Update an attendance record within the caller's scope. Administrators only
// @Tags attendance
// @Accept json
// @Produce json
// @Param id path string true "Attendance ID (UUID)"
// @Param attendance body service.UpdateAttendanceRequest true "Updated attendance data"
// @Success 200 {object} service.AttendanceResponse "Successfully updated attendance"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Record outside caller's scope"
// @Failure 404 {object} map[string]interface{} "Attendance record not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /attendance/{id} [patch]
func (h *AttendanceHandler) UpdateAttendance(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attendance ID: invalid UUID format"})
		return
	}

	var req service.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	record, err := h.service.Update(actor, id, &req)
	if err != nil {
		var validationErr *apperrors.ValidationError
		switch {
		case errors.Is(err, apperrors.ErrAttendanceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrScopeViolation), errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			internalError(c, "Failed to update attendance", err)
		}
		return
	}

	c.JSON(http.StatusOK, record)
}
