package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/langbridge-backend/internal/logger"
	"github.com/yungbote/langbridge-backend/internal/services"
)

// ProjectContextKey is where the authenticated project lands in the gin context.
const ProjectContextKey = "project"

// APIKeyAuth resolves the X-API-Key header to a project and aborts with 401/403
// when the key is missing, unknown or belongs to a deactivated project.
func APIKeyAuth(log *logger.Logger, projects services.ProjectService) gin.HandlerFunc {
	authLog := log.With("middleware", "APIKeyAuth")
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing X-API-Key header"})
			return
		}

		project, err := projects.GetByAPIKey(c.Request.Context(), apiKey)
		if err != nil {
			authLog.Error("Failed to resolve API key", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "could not verify API key"})
			return
		}
		if project == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
			return
		}
		if !project.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "project is deactivated"})
			return
		}

		c.Set(ProjectContextKey, project)
		c.Next()
	}
}

var ErrNoProject = errors.New("no authenticated project in request context")
