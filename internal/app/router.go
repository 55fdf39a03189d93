package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/langbridge-backend/internal/server"
)

func wireRouter(cfg Config, handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		CORSOrigins:        cfg.CORSOrigins,
		DevMode:            cfg.DevMode(),
		APIKeyAuth:         middlewareset.APIKeyAuth,
		TranslationHandler: handlerset.Translation,
		ProjectHandler:     handlerset.Project,
		LocaleHandler:      handlerset.Locale,
		NamespaceHandler:   handlerset.Namespace,
	})
}
