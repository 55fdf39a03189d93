package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yungbote/langbridge-backend/internal/cache"
	"github.com/yungbote/langbridge-backend/internal/keytree"
	"github.com/yungbote/langbridge-backend/internal/logger"
	"github.com/yungbote/langbridge-backend/internal/repos"
	"github.com/yungbote/langbridge-backend/internal/types"
)

type TranslationInput struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Locale      string    `json:"locale"`
	Description string    `json:"description,omitempty"`
	NamespaceID uuid.UUID `json:"namespace_id"`
}

// TranslationService aggregates rows into cacheable documents and keeps the
// cache consistent across every write path.
type TranslationService interface {
	// GetTranslationsForProject answers "all translations for project+locale",
	// optionally restricted to one namespace. Unknown locales yield an empty
	// set and unknown namespaces yield {namespace: {}}; neither is an error.
	GetTranslationsForProject(ctx context.Context, projectID uuid.UUID, locale string, namespace ...string) (types.TranslationSet, error)

	// UpsertTranslations processes a batch entry by entry; a failing entry is
	// logged and skipped, never aborting the rest.
	UpsertTranslations(ctx context.Context, projectID uuid.UUID, entries []types.TranslationEntry) ([]*types.Translation, error)

	GetByID(ctx context.Context, translationID uuid.UUID) (*types.Translation, error)
	Get(ctx context.Context, key, locale string, namespaceID uuid.UUID) (*types.Translation, error)
	GetByNamespaceID(ctx context.Context, namespaceID uuid.UUID) ([]*types.Translation, error)
	Create(ctx context.Context, input TranslationInput) (*types.Translation, error)
	Update(ctx context.Context, translationID uuid.UUID, value, description string) (*types.Translation, error)
	Delete(ctx context.Context, translationID uuid.UUID) (*types.Translation, error)

	ClearAllCache(ctx context.Context) (int, error)
}

type translationService struct {
	log              *logger.Logger
	translationRepo  repos.TranslationRepo
	namespaceRepo    repos.NamespaceRepo
	localeService    LocaleService
	namespaceService NamespaceService
	docCache         *cache.DocumentCache
}

func NewTranslationService(
	log *logger.Logger,
	translationRepo repos.TranslationRepo,
	namespaceRepo repos.NamespaceRepo,
	localeService LocaleService,
	namespaceService NamespaceService,
	docCache *cache.DocumentCache,
) TranslationService {
	serviceLog := log.With("service", "TranslationService")
	return &translationService{
		log:              serviceLog,
		translationRepo:  translationRepo,
		namespaceRepo:    namespaceRepo,
		localeService:    localeService,
		namespaceService: namespaceService,
		docCache:         docCache,
	}
}

func (ts *translationService) GetTranslationsForProject(ctx context.Context, projectID uuid.UUID, locale string, namespace ...string) (types.TranslationSet, error) {
	namespaceName := ""
	if len(namespace) > 0 {
		namespaceName = namespace[0]
	}

	cacheKey := cache.Key(projectID, locale, namespaceName)
	if cached, ok := ts.docCache.Read(ctx, cacheKey); ok {
		return cached, nil
	}

	localeObj, err := ts.localeService.GetByCode(ctx, locale)
	if err != nil {
		return nil, fmt.Errorf("resolving locale %q: %w", locale, err)
	}
	if localeObj == nil {
		// Unregistered locale: callers get an empty set, not an error. The
		// empty result is not cached so a later locale registration shows up
		// immediately.
		return types.TranslationSet{}, nil
	}

	namespaces, err := ts.namespaceService.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("resolving namespaces for project %s: %w", projectID, err)
	}

	if namespaceName != "" {
		filtered := namespaces[:0]
		for _, ns := range namespaces {
			if ns.Name == namespaceName {
				filtered = append(filtered, ns)
			}
		}
		namespaces = filtered
		if len(namespaces) == 0 {
			return types.TranslationSet{namespaceName: types.Document{}}, nil
		}
	}

	result := types.TranslationSet{}
	for _, ns := range namespaces {
		rows, err := ts.translationRepo.GetByNamespaceAndLocale(ctx, nil, ns.ID, locale)
		if err != nil {
			return nil, fmt.Errorf("fetching rows for namespace %q: %w", ns.Name, err)
		}
		result[ns.Name] = keytree.Build(rows)
	}

	ts.docCache.Write(ctx, cacheKey, result)
	return result, nil
}

func (ts *translationService) UpsertTranslations(ctx context.Context, projectID uuid.UUID, entries []types.TranslationEntry) ([]*types.Translation, error) {
	results := make([]*types.Translation, 0, len(entries))

	for _, entry := range entries {
		row, err := ts.upsertOne(ctx, projectID, entry)
		if err != nil {
			ts.log.Error("Failed to process translation entry, continuing batch", "key", entry.Key, "locale", entry.Locale, "namespace", entry.Namespace, "error", err)
			continue
		}
		results = append(results, row)
		ts.docCache.Invalidate(ctx, projectID, entry.Locale, entry.Namespace)
	}

	return results, nil
}

func (ts *translationService) upsertOne(ctx context.Context, projectID uuid.UUID, entry types.TranslationEntry) (*types.Translation, error) {
	if entry.Key == "" {
		return nil, fmt.Errorf("translation key is required")
	}
	if entry.Namespace == "" {
		return nil, fmt.Errorf("namespace is required")
	}
	if entry.Locale == "" {
		return nil, fmt.Errorf("locale is required")
	}

	locale, err := ts.localeService.GetByCode(ctx, entry.Locale)
	if err != nil {
		return nil, err
	}
	if locale == nil {
		// Register the locale on the fly; the code doubles as display name
		// until an admin fills the real one in.
		if _, err := ts.localeService.Create(ctx, LocaleInput{
			Code:       entry.Locale,
			Name:       entry.Locale,
			NativeName: entry.Locale,
		}); err != nil {
			return nil, fmt.Errorf("creating locale %q: %w", entry.Locale, err)
		}
	}

	namespace, err := ts.namespaceService.GetOrCreate(ctx, entry.Namespace, projectID)
	if err != nil {
		return nil, fmt.Errorf("resolving namespace %q: %w", entry.Namespace, err)
	}

	existing, err := ts.translationRepo.Get(ctx, nil, entry.Key, entry.Locale, namespace.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Value = entry.Value
		existing.Description = entry.Description
		return ts.translationRepo.Update(ctx, nil, existing)
	}

	return ts.translationRepo.Create(ctx, nil, &types.Translation{
		Key:         entry.Key,
		Value:       entry.Value,
		Locale:      entry.Locale,
		Description: entry.Description,
		NamespaceID: namespace.ID,
	})
}

func (ts *translationService) GetByID(ctx context.Context, translationID uuid.UUID) (*types.Translation, error) {
	return ts.translationRepo.GetByID(ctx, nil, translationID)
}

func (ts *translationService) Get(ctx context.Context, key, locale string, namespaceID uuid.UUID) (*types.Translation, error) {
	return ts.translationRepo.Get(ctx, nil, key, locale, namespaceID)
}

func (ts *translationService) GetByNamespaceID(ctx context.Context, namespaceID uuid.UUID) ([]*types.Translation, error) {
	return ts.translationRepo.GetByNamespaceID(ctx, nil, namespaceID)
}

func (ts *translationService) Create(ctx context.Context, input TranslationInput) (*types.Translation, error) {
	row, err := ts.translationRepo.Create(ctx, nil, &types.Translation{
		Key:         input.Key,
		Value:       input.Value,
		Locale:      input.Locale,
		Description: input.Description,
		NamespaceID: input.NamespaceID,
	})
	if err != nil {
		return nil, err
	}
	ts.invalidateForNamespace(ctx, row.Locale, row.NamespaceID)
	return row, nil
}

func (ts *translationService) Update(ctx context.Context, translationID uuid.UUID, value, description string) (*types.Translation, error) {
	existing, err := ts.translationRepo.GetByID(ctx, nil, translationID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	existing.Value = value
	if description != "" {
		existing.Description = description
	}
	updated, err := ts.translationRepo.Update(ctx, nil, existing)
	if err != nil {
		return nil, err
	}
	ts.invalidateForNamespace(ctx, updated.Locale, updated.NamespaceID)
	return updated, nil
}

func (ts *translationService) Delete(ctx context.Context, translationID uuid.UUID) (*types.Translation, error) {
	existing, err := ts.translationRepo.GetByID(ctx, nil, translationID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if err := ts.translationRepo.Delete(ctx, nil, translationID); err != nil {
		return nil, err
	}
	ts.invalidateForNamespace(ctx, existing.Locale, existing.NamespaceID)
	return existing, nil
}

// invalidateForNamespace resolves the namespace to find its project, then
// drops both cache entries for the affected scope. Invalidation is fire and
// forget: failures are logged by the cache, never surfaced to the writer.
func (ts *translationService) invalidateForNamespace(ctx context.Context, locale string, namespaceID uuid.UUID) {
	namespace, err := ts.namespaceRepo.GetByID(ctx, nil, namespaceID, uuid.Nil)
	if err != nil || namespace == nil {
		ts.log.Warn("Could not resolve namespace for cache invalidation", "namespace_id", namespaceID, "error", err)
		return
	}
	ts.docCache.Invalidate(ctx, namespace.ProjectID, locale, namespace.Name)
}

func (ts *translationService) ClearAllCache(ctx context.Context) (int, error) {
	n, err := ts.docCache.Clear(ctx)
	if err != nil {
		ts.log.Error("Failed to clear translation cache", "error", err)
		return 0, err
	}
	ts.log.Info("Cleared translation cache", "keys", n)
	return n, nil
}
