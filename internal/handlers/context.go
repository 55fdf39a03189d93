package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/langbridge-backend/internal/middleware"
	"github.com/yungbote/langbridge-backend/internal/types"
)

// MustProject pulls the authenticated project out of the request context and
// fails the request if the auth middleware did not run.
func MustProject(c *gin.Context) *types.Project {
	value, ok := c.Get(middleware.ProjectContextKey)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized", middleware.ErrNoProject)
		return nil
	}
	project, ok := value.(*types.Project)
	if !ok || project == nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", middleware.ErrNoProject)
		return nil
	}
	return project
}
