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

// SummaryHandler handles HTTP requests for monthly summaries
type SummaryHandler struct {
	service service.SummaryServiceInterface
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(service service.SummaryServiceInterface) *SummaryHandler {
	return &SummaryHandler{service: service}
}

// GenerateSummaries handles POST /api/summaries/generate
// @Summary Generate monthly summaries
// @Description Compute and store per-employee summaries for a month. Each employee is processed independently; failures do not abort the batch. Safe to re-run
// @Tags summaries
// @Accept json
// @Produce json
// @Param period body service.GenerateSummariesRequest true "Month and year to summarize"
// @Success 200 {object} service.GenerateSummariesResult "Generation outcome with per-employee failures"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Insufficient permissions"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /summaries/generate [post]
func (h *SummaryHandler) GenerateSummaries(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.GenerateSummariesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.service.Generate(actor, &req)
	if err != nil {
		var validationErr *apperrors.ValidationError
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			internalError(c, "Failed to generate summaries", err)
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListSummaries handles GET /api/summaries
// @Summary List monthly summaries
// @Description Get monthly summaries visible to the caller
// @Tags summaries
// @Accept json
// @Produce json
// @Success 200 {array} service.SummaryResponse "Successfully retrieved summaries"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /summaries [get]
func (h *SummaryHandler) ListSummaries(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	summaries, err := h.service.List(actor)
	if err != nil {
		internalError(c, "Failed to list summaries", err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// GetUserSummaries handles GET /api/summaries/user/:id
// @Summary Get summaries for an employee
// @Description Get the monthly summaries of a specific employee. Staff may only read their own
// @Tags summaries
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {array} service.SummaryResponse "Successfully retrieved summaries"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Failure 403 {object} map[string]interface{} "Employee outside caller's scope"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /summaries/user/{id} [get]
func (h *SummaryHandler) GetUserSummaries(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	idStr := c.Param("id")
	userID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID: invalid UUID format"})
		return
	}

	summaries, err := h.service.GetByUser(actor, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden), errors.Is(err, apperrors.ErrScopeViolation):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			internalError(c, "Failed to get summaries", err)
		}
		return
	}

	c.JSON(http.StatusOK, summaries)
}
