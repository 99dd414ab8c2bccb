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

// ExpenseHandler handles HTTP requests for expense claims
type ExpenseHandler struct {
	service service.ExpenseServiceInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(service service.ExpenseServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{service: service}
}

// CreateExpense handles POST /api/expenses
// @Summary Submit an expense claim
// @Description Submit an expense claim for the calling employee. New claims always start pending
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body service.CreateExpenseRequest true "Expense claim data"
// @Success 201 {object} service.ExpenseResponse "Successfully created expense claim"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	expense, err := h.service.Create(actor, &req)
	if err != nil {
		var validationErr *apperrors.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		internalError(c, "Failed to create expense claim", err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// ListExpenses handles GET /api/expenses
// @Summary List expense claims
// @Description Get expense claims visible to the caller, optionally filtered by approval status
// @Tags expenses
// @Accept json
// @Produce json
// @Param status query string false "Filter by status (pending, approved, rejected)"
// @Success 200 {array} service.ExpenseResponse "Successfully retrieved expense claims"
// @Failure 400 {object} map[string]interface{} "Invalid status filter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
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

	expenses, err := h.service.List(actor, status)
	if err != nil {
		internalError(c, "Failed to list expense claims", err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// UpdateExpenseStatus handles PATCH /api/expenses/:id/status
// @Summary Approve or reject an expense claim
// @Description Move a pending expense claim to approved or rejected. Administrators only, and only within their scope
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID (UUID)"
// @Param status body service.UpdateExpenseStatusRequest true "New approval status"
// @Success 200 {object} service.ExpenseResponse "Successfully updated expense status"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Caller may not decide this claim"
// @Failure 404 {object} map[string]interface{} "Expense claim not found"
// @Failure 422 {object} map[string]interface{} "Claim already decided"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /expenses/{id}/status [patch]
func (h *ExpenseHandler) UpdateExpenseStatus(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense ID: invalid UUID format"})
		return
	}

	var req service.UpdateExpenseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	expense, err := h.service.UpdateStatus(actor, id, &req)
	if err != nil {
		var validationErr *apperrors.ValidationError
		var transitionErr *apperrors.StateTransitionError
		switch {
		case errors.Is(err, apperrors.ErrExpenseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrForbidden), errors.Is(err, apperrors.ErrScopeViolation):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.As(err, &transitionErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			internalError(c, "Failed to update expense status", err)
		}
		return
	}

	c.JSON(http.StatusOK, expense)
}
