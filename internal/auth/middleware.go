package auth

import (
	"net/http"

	"office-management-backend/internal/database/models"

	"github.com/gin-gonic/gin"
)

// CookieName is the session cookie set on login
const CookieName = "office_session"

const userContextKey = "current_user"

// Middleware provides session-cookie authentication middleware
type Middleware struct {
	service *Service
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service) *Middleware {
	return &Middleware{service: service}
}

// RequireAuth resolves the session cookie to a user and stores it in the context.
// Requests without a valid session get 401.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		user, err := m.service.CurrentIdentity(token)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve session"})
			c.Abort()
			return
		}
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session is invalid or expired"})
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Set("email", user.Email)
		c.Next()
	}
}

// RequireAdmin rejects requests from identities without an admin or proprietor role.
// Must run after RequireAuth.
func (m *Middleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		if !user.Role.IsPrivileged() {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser extracts the authenticated user from the context
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
