package app

import (
	"github.com/yungbote/langbridge-backend/internal/cache"
	"github.com/yungbote/langbridge-backend/internal/logger"
	"github.com/yungbote/langbridge-backend/internal/services"
)

type Services struct {
	Project     services.ProjectService
	Locale      services.LocaleService
	Namespace   services.NamespaceService
	Translation services.TranslationService
}

func wireServices(log *logger.Logger, cfg Config, reposet Repos) (Services, error) {
	// Redis is preferred; when REDIS_ADDR is absent the cache degrades to an
	// in-process store so single-node deployments still get hot reads.
	var store cache.Store
	redisStore, err := cache.NewRedisStore(log)
	if err != nil {
		log.Warn("Redis unavailable, falling back to in-memory translation cache", "error", err)
		store = cache.NewMemoryStore()
	} else {
		store = redisStore
	}
	docCache := cache.NewDocumentCache(log, store, cfg.CacheTTL)

	projectService := services.NewProjectService(log, reposet.Project)
	localeService := services.NewLocaleService(log, reposet.Locale)
	namespaceService := services.NewNamespaceService(log, reposet.Namespace, reposet.Project)
	translationService := services.NewTranslationService(
		log,
		reposet.Translation,
		reposet.Namespace,
		localeService,
		namespaceService,
		docCache,
	)

	return Services{
		Project:     projectService,
		Locale:      localeService,
		Namespace:   namespaceService,
		Translation: translationService,
	}, nil
}
