package handlers

import (
	"net/http"

	"office-management-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// internalError logs the underlying failure and replies with a generic 500 body.
// Error text from lower layers never reaches the client.
func internalError(c *gin.Context, message string, err error) {
	logger.New().WithFields(map[string]interface{}{
		"method": c.Request.Method,
		"path":   c.FullPath(),
	}).WithError(err).Error(message)

	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
