package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/langbridge-backend/internal/logger"
	"github.com/yungbote/langbridge-backend/internal/middleware"
)

type Middleware struct {
	APIKeyAuth gin.HandlerFunc
}

func wireMiddleware(log *logger.Logger, serviceset Services) Middleware {
	return Middleware{
		APIKeyAuth: middleware.APIKeyAuth(log, serviceset.Project),
	}
}
