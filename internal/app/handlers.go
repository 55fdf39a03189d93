package app

import (
	"github.com/yungbote/langbridge-backend/internal/handlers"
)

type Handlers struct {
	Translation *handlers.TranslationHandler
	Project     *handlers.ProjectHandler
	Locale      *handlers.LocaleHandler
	Namespace   *handlers.NamespaceHandler
}

func wireHandlers(serviceset Services) Handlers {
	return Handlers{
		Translation: handlers.NewTranslationHandler(serviceset.Translation),
		Project:     handlers.NewProjectHandler(serviceset.Project),
		Locale:      handlers.NewLocaleHandler(serviceset.Locale),
		Namespace:   handlers.NewNamespaceHandler(serviceset.Namespace),
	}
}
