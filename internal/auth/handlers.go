package auth

import (
	"errors"
	"net/http"

	"office-management-backend/internal/database/models"
	apperrors "office-management-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for authentication and the caller's own profile
type Handler struct {
	service      *Service
	cookieMaxAge int
	secureCookie bool
}

// NewHandler creates a new auth handler
func NewHandler(service *Service, cookieMaxAge int, secureCookie bool) *Handler {
	return &Handler{service: service, cookieMaxAge: cookieMaxAge, secureCookie: secureCookie}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest represents the change-password request body
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// UpdateProfileRequest represents a partial self-service profile update
type UpdateProfileRequest struct {
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	Department *string `json:"department,omitempty"`
	Title      *string `json:"title,omitempty"`
}

// ProfileResponse represents the authenticated user's profile
type ProfileResponse struct {
	ID             uuid.UUID       `json:"id"`
	Email          string          `json:"email"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Role           models.UserRole `json:"role"`
	Department     string          `json:"department"`
	Title          string          `json:"title"`
	OrganizationID *uuid.UUID      `json:"organization_id,omitempty"`
	IsActive       bool            `json:"is_active"`
}

func toProfileResponse(user *models.User) *ProfileResponse {
	return &ProfileResponse{
		ID:             user.ID,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Role:           user.Role,
		Department:     user.Department,
		Title:          user.Title,
		OrganizationID: user.OrganizationID,
		IsActive:       user.IsActive,
	}
}

// Login handles POST /api/auth/login
// @Summary Log in with email and password
// @Description Verify credentials and establish a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} ProfileResponse "Authenticated user profile"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid credentials or disabled account"
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	user, token, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		var authErr *apperrors.AuthenticationError
		if errors.As(err, &authErr) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	c.SetCookie(CookieName, token, h.cookieMaxAge, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, toProfileResponse(user))
}

// Logout handles POST /api/auth/logout
// @Summary Log out
// @Description Destroy the current session; idempotent
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Logged out"
// @Router /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(CookieName); err == nil {
		if err := h.service.Logout(token); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
			return
		}
	}

	c.SetCookie(CookieName, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Me handles GET /api/auth/me
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(user))
}

// UpdateProfile handles PATCH /api/auth/profile
// @Summary Update own profile
// @Description Partial update of the caller's name, department and title
// @Tags auth
// @Accept json
// @Produce json
// @Param profile body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Router /auth/profile [patch]
func (h *Handler) UpdateProfile(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	updated, err := h.service.UpdateProfile(user.ID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(updated))
}

// ChangePassword handles POST /api/auth/change-password
// @Summary Change own password
// @Tags auth
// @Accept json
// @Produce json
// @Param passwords body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} map[string]interface{} "Password changed"
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Failure 401 {object} map[string]interface{} "Current password incorrect"
// @Router /auth/change-password [post]
func (h *Handler) ChangePassword(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if req.NewPassword != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "passwords do not match"})
		return
	}

	if err := h.service.ChangePassword(user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		var validationErr *apperrors.ValidationError
		var authErr *apperrors.AuthenticationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		case errors.As(err, &authErr):
			c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
