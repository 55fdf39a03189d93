package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/langbridge-backend/internal/handlers"
)

type RouterConfig struct {
	CORSOrigins        []string
	DevMode            bool
	APIKeyAuth         gin.HandlerFunc
	TranslationHandler *handlers.TranslationHandler
	ProjectHandler     *handlers.ProjectHandler
	LocaleHandler      *handlers.LocaleHandler
	NamespaceHandler   *handlers.NamespaceHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", "X-API-Key"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	api := router.Group("/api/v1")
	{
		api.GET("/translations/:projectId/:locale", cfg.TranslationHandler.GetTranslations)
		api.GET("/translations/:projectId/:locale/:namespace", cfg.TranslationHandler.GetTranslations)
		if cfg.DevMode {
			api.GET("/clear-cache", cfg.TranslationHandler.ClearCache)
		}
	}

	// Project management stays keyless: it is the surface that issues keys in
	// the first place.
	projects := router.Group("/api/v1/projects")
	{
		projects.GET("", cfg.ProjectHandler.List)
		projects.POST("", cfg.ProjectHandler.Create)
		projects.GET("/:id", cfg.ProjectHandler.Get)
		projects.PUT("/:id", cfg.ProjectHandler.Update)
		projects.DELETE("/:id", cfg.ProjectHandler.Delete)
		projects.POST("/:id/regenerate-key", cfg.ProjectHandler.RegenerateAPIKey)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/api/v1")
	protected.Use(cfg.APIKeyAuth)
	// Locales
	protected.GET("/locales", cfg.LocaleHandler.List)
	protected.POST("/locales", cfg.LocaleHandler.Create)
	protected.PUT("/locales/:id", cfg.LocaleHandler.Update)
	protected.DELETE("/locales/:id", cfg.LocaleHandler.Delete)
	// Namespaces
	protected.GET("/namespaces", cfg.NamespaceHandler.List)
	protected.POST("/namespaces", cfg.NamespaceHandler.Create)
	protected.PUT("/namespaces/:id", cfg.NamespaceHandler.Update)
	protected.DELETE("/namespaces/:id", cfg.NamespaceHandler.Delete)
	protected.GET("/namespaces/:id/translations", cfg.TranslationHandler.ListByNamespace)
	// Translations
	protected.POST("/translations", cfg.TranslationHandler.Create)
	protected.PUT("/translations/:id", cfg.TranslationHandler.Update)
	protected.DELETE("/translations/:id", cfg.TranslationHandler.Delete)
	protected.POST("/projects/:id/translations/batch", cfg.TranslationHandler.BatchUpsert)

	return router
}
