package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/langbridge-backend/internal/logger"
	"github.com/yungbote/langbridge-backend/internal/repos"
)

type Repos struct {
	Project     repos.ProjectRepo
	Locale      repos.LocaleRepo
	Namespace   repos.NamespaceRepo
	Translation repos.TranslationRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		Project:     repos.NewProjectRepo(db, log),
		Locale:      repos.NewLocaleRepo(db, log),
		Namespace:   repos.NewNamespaceRepo(db, log),
		Translation: repos.NewTranslationRepo(db, log),
	}
}
