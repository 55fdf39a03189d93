package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/langbridge-backend/internal/cache"
	"github.com/yungbote/langbridge-backend/internal/logger"
	"github.com/yungbote/langbridge-backend/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

// --- in-memory fakes -------------------------------------------------------

type fakeProjectRepo struct {
	projects map[uuid.UUID]*types.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[uuid.UUID]*types.Project{}}
}

func (f *fakeProjectRepo) Create(ctx context.Context, tx *gorm.DB, p *types.Project) (*types.Project, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.projects[p.ID] = p
	return p, nil
}

func (f *fakeProjectRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Project, error) {
	return f.projects[id], nil
}

func (f *fakeProjectRepo) GetByAPIKey(ctx context.Context, tx *gorm.DB, apiKey string) (*types.Project, error) {
	for _, p := range f.projects {
		if p.APIKey == apiKey {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProjectRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Project, error) {
	out := make([]*types.Project, 0, len(f.projects))
	for _, p := range f.projects {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProjectRepo) Update(ctx context.Context, tx *gorm.DB, p *types.Project) (*types.Project, error) {
	f.projects[p.ID] = p
	return p, nil
}

func (f *fakeProjectRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	delete(f.projects, id)
	return nil
}

type fakeLocaleRepo struct {
	locales map[uuid.UUID]*types.Locale
}

func newFakeLocaleRepo() *fakeLocaleRepo {
	return &fakeLocaleRepo{locales: map[uuid.UUID]*types.Locale{}}
}

func (f *fakeLocaleRepo) Create(ctx context.Context, tx *gorm.DB, l *types.Locale) (*types.Locale, error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	f.locales[l.ID] = l
	return l, nil
}

func (f *fakeLocaleRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Locale, error) {
	return f.locales[id], nil
}

func (f *fakeLocaleRepo) GetByCode(ctx context.Context, tx *gorm.DB, code string) (*types.Locale, error) {
	for _, l := range f.locales {
		if l.Code == code {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeLocaleRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Locale, error) {
	out := make([]*types.Locale, 0, len(f.locales))
	for _, l := range f.locales {
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeLocaleRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	return int64(len(f.locales)), nil
}

func (f *fakeLocaleRepo) ClearDefault(ctx context.Context, tx *gorm.DB, excludeID uuid.UUID) error {
	for _, l := range f.locales {
		if l.ID != excludeID {
			l.IsDefault = false
		}
	}
	return nil
}

func (f *fakeLocaleRepo) FirstActive(ctx context.Context, tx *gorm.DB, excludeID uuid.UUID) (*types.Locale, error) {
	for _, l := range f.locales {
		if l.IsActive && l.ID != excludeID {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeLocaleRepo) Update(ctx context.Context, tx *gorm.DB, l *types.Locale) (*types.Locale, error) {
	f.locales[l.ID] = l
	return l, nil
}

func (f *fakeLocaleRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	delete(f.locales, id)
	return nil
}

type fakeNamespaceRepo struct {
	namespaces map[uuid.UUID]*types.Namespace
}

func newFakeNamespaceRepo() *fakeNamespaceRepo {
	return &fakeNamespaceRepo{namespaces: map[uuid.UUID]*types.Namespace{}}
}

func (f *fakeNamespaceRepo) Create(ctx context.Context, tx *gorm.DB, n *types.Namespace) (*types.Namespace, error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	f.namespaces[n.ID] = n
	return n, nil
}

func (f *fakeNamespaceRepo) GetByID(ctx context.Context, tx *gorm.DB, id, projectID uuid.UUID) (*types.Namespace, error) {
	n := f.namespaces[id]
	if n == nil {
		return nil, nil
	}
	if projectID != uuid.Nil && n.ProjectID != projectID {
		return nil, nil
	}
	return n, nil
}

func (f *fakeNamespaceRepo) GetByName(ctx context.Context, tx *gorm.DB, name string, projectID uuid.UUID) (*types.Namespace, error) {
	for _, n := range f.namespaces {
		if n.Name == name && n.ProjectID == projectID {
			return n, nil
		}
	}
	return nil, nil
}

func (f *fakeNamespaceRepo) GetByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.Namespace, error) {
	var out []*types.Namespace
	for _, n := range f.namespaces {
		if n.ProjectID == projectID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNamespaceRepo) Update(ctx context.Context, tx *gorm.DB, n *types.Namespace) (*types.Namespace, error) {
	f.namespaces[n.ID] = n
	return n, nil
}

func (f *fakeNamespaceRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	delete(f.namespaces, id)
	return nil
}

type fakeTranslationRepo struct {
	rows map[uuid.UUID]*types.Translation
	// failKeys forces Create/Update to fail for specific keys, exercising the
	// batch skip-and-continue path.
	failKeys map[string]bool
}

func newFakeTranslationRepo() *fakeTranslationRepo {
	return &fakeTranslationRepo{
		rows:     map[uuid.UUID]*types.Translation{},
		failKeys: map[string]bool{},
	}
}

func (f *fakeTranslationRepo) Create(ctx context.Context, tx *gorm.DB, t *types.Translation) (*types.Translation, error) {
	if f.failKeys[t.Key] {
		return nil, errors.New("forced create failure")
	}
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	f.rows[t.ID] = t
	return t, nil
}

func (f *fakeTranslationRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Translation, error) {
	return f.rows[id], nil
}

func (f *fakeTranslationRepo) Get(ctx context.Context, tx *gorm.DB, key, locale string, namespaceID uuid.UUID) (*types.Translation, error) {
	for _, row := range f.rows {
		if row.Key == key && row.Locale == locale && row.NamespaceID == namespaceID {
			return row, nil
		}
	}
	return nil, nil
}

func (f *fakeTranslationRepo) GetByNamespaceAndLocale(ctx context.Context, tx *gorm.DB, namespaceID uuid.UUID, locale string) ([]*types.Translation, error) {
	var out []*types.Translation
	for _, row := range f.rows {
		if row.NamespaceID == namespaceID && row.Locale == locale {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeTranslationRepo) GetByNamespaceID(ctx context.Context, tx *gorm.DB, namespaceID uuid.UUID) ([]*types.Translation, error) {
	var out []*types.Translation
	for _, row := range f.rows {
		if row.NamespaceID == namespaceID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeTranslationRepo) Update(ctx context.Context, tx *gorm.DB, t *types.Translation) (*types.Translation, error) {
	if f.failKeys[t.Key] {
		return nil, errors.New("forced update failure")
	}
	f.rows[t.ID] = t
	return t, nil
}

func (f *fakeTranslationRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	delete(f.rows, id)
	return nil
}

// --- fixture ---------------------------------------------------------------

type translationFixture struct {
	service      TranslationService
	translations *fakeTranslationRepo
	namespaces   *fakeNamespaceRepo
	locales      *fakeLocaleRepo
	projects     *fakeProjectRepo
	store        *cache.MemoryStore
	projectID    uuid.UUID
}

func newTranslationFixture(t *testing.T) *translationFixture {
	t.Helper()
	log := testLogger(t)

	projects := newFakeProjectRepo()
	locales := newFakeLocaleRepo()
	namespaces := newFakeNamespaceRepo()
	translations := newFakeTranslationRepo()

	store := cache.NewMemoryStore()
	docCache := cache.NewDocumentCache(log, store, time.Hour)

	localeService := NewLocaleService(log, locales)
	namespaceService := NewNamespaceService(log, namespaces, projects)
	service := NewTranslationService(log, translations, namespaces, localeService, namespaceService, docCache)

	project, err := projects.Create(context.Background(), nil, &types.Project{Name: "site", APIKey: "key"})
	if err != nil {
		t.Fatalf("seed project: %v", err)
	}

	return &translationFixture{
		service:      service,
		translations: translations,
		namespaces:   namespaces,
		locales:      locales,
		projects:     projects,
		store:        store,
		projectID:    project.ID,
	}
}

func (fx *translationFixture) seedLocale(t *testing.T, code string) {
	t.Helper()
	if _, err := fx.locales.Create(context.Background(), nil, &types.Locale{
		Code: code, Name: code, NativeName: code, IsActive: true,
	}); err != nil {
		t.Fatalf("seed locale %q: %v", code, err)
	}
}

func (fx *translationFixture) seedNamespace(t *testing.T, name string) uuid.UUID {
	t.Helper()
	ns, err := fx.namespaces.Create(context.Background(), nil, &types.Namespace{
		Name: name, ProjectID: fx.projectID,
	})
	if err != nil {
		t.Fatalf("seed namespace %q: %v", name, err)
	}
	return ns.ID
}

func (fx *translationFixture) seedRow(t *testing.T, nsID uuid.UUID, key, locale, value string) {
	t.Helper()
	if _, err := fx.translations.Create(context.Background(), nil, &types.Translation{
		Key: key, Locale: locale, Value: value, NamespaceID: nsID,
	}); err != nil {
		t.Fatalf("seed row %q: %v", key, err)
	}
}

// --- tests -----------------------------------------------------------------

func TestGetTranslationsBuildsFlatAndNested(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fx := newTranslationFixture(t)
	fx.seedLocale(t, "en")
	nsID := fx.seedNamespace(t, "common")
	fx.seedRow(t, nsID, "welcome.title", "en", "Hello")

	got, err := fx.service.GetTranslationsForProject(ctx, fx.projectID, "en")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	doc, ok := got["common"]
	if !ok {
		t.Fatal("namespace missing from result")
	}
	if doc["welcome.title"] != "Hello" {
		t.Fatalf("flat entry: got=%v", doc["welcome.title"])
	}
	nested, ok := doc["welcome"].(types.Document)
	if !ok {
		t.Fatalf("nested branch missing: %T", doc["welcome"])
	}
	if nested["title"] != "Hello" {
		t.Fatalf("nested entry: got=%v", nested["title"])
	}
}

func TestGetTranslationsCacheHitSkipsStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fx := newTranslationFixture(t)
	fx.seedLocale(t, "en")
	nsID := fx.seedNamespace(t, "common")
	fx.seedRow(t, nsID, "greeting", "en", "Hi")

	first, err := fx.service.GetTranslationsForProject(ctx, fx.projectID, "en")
	if err != nil {
		t.Fatalf("first get: %v", err)
	}

	// Mutate the row store; the cached document must answer unchanged.
	fx.seedRow(t, nsID, "greeting.extra", "en", "later")

	second, err := fx.service.GetTranslationsForProject(ctx, fx.projectID, "en")
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if len(second["common"]) != len(first["common"]) {
		t.Fatalf("cache hit returned fresh data: first=%d second=%d", len(first["common"]), len(second["common"]))
	}
}

func TestGetTranslationsUnknownLocaleNotCached(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fx := newTranslationFixture(t)
	fx.seedNamespace(t, "common")

	got, err := fx.service.GetTranslationsForProject(ctx, fx.projectID, "xx")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("unknown locale: got=%v want empty", got)
	}
	if fx.store.Len() != 0 {
		t.Fatal("empty result for unknown locale must not be cached")
	}
}

func TestGetTranslationsMissingNamespaceYieldsEmptyDoc(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fx := newTranslationFixture(t)
	fx.seedLocale(t, "en")

	got, err := fx.service.GetTranslationsForProject(ctx, fx.projectID, "en", "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	doc, ok := got["nope"]
	if !ok {
		t.Fatal("requested namespace missing from result")
	}
	if len(doc) != 0 {
		t.Fatalf("missing namespace must map to an empty document, got=%v", doc)
	}
}

func TestUpsertTranslationsCreatesLocaleAndNamespace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fx := newTranslationFixture(t)

	rows, err := fx.service.UpsertTranslations(ctx, fx.projectID, []types.TranslationEntry{
		{Key: "home.title", Value: "Welcome", Locale: "fr", Namespace: "home"},
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows: got=%d want=1", len(rows))
	}

	locale, err := fx.locales.GetByCode(ctx, nil, "fr")
	if err != nil || locale == nil {
		t.Fatalf("locale not auto-created: %v %v", locale, err)
	}
	if locale.Name != "fr" || locale.NativeName != "fr" {
		t.Fatalf("auto-created locale names: got=%q/%q want code reused", locale.Name, locale.NativeName)
	}
	ns, err := fx.namespaces.GetByName(ctx, nil, "home", fx.projectID)
	if err != nil || ns == nil {
		t.Fatalf("namespace not auto-created: %v %v", ns, err)
	}
}

func TestUpsertTranslationsSkipsFailingEntry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fx := newTranslationFixture(t)
	fx.seedLocale(t, "en")
	fx.translations.failKeys["bad"] = true

	rows, err := fx.service.UpsertTranslations(ctx, fx.projectID, []types.TranslationEntry{
		{Key: "a", Value: "1", Locale: "en", Namespace: "common"},
		{Key: "bad", Value: "2", Locale: "en", Namespace: "common"},
		{Key: "c", Value: "3", Locale: "en", Namespace: "common"},
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("surviving rows: got=%d want=2", len(rows))
	}
	for _, row := range rows {
		if row.Key == "bad" {
			t.Fatal("failed entry leaked into results")
		}
	}
}

func TestUpsertTranslationsUpdatesExistingRow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fx := newTranslationFixture(t)
	fx.seedLocale(t, "en")
	nsID := fx.seedNamespace(t, "common")
	fx.seedRow(t, nsID, "greeting", "en", "old")

	rows, err := fx.service.UpsertTranslations(ctx, fx.projectID, []types.TranslationEntry{
		{Key: "greeting", Value: "new", Locale: "en", Namespace: "common"},
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if len(rows) != 1 || rows[0].Value != "new" {
		t.Fatalf("update result: %+v", rows)
	}
	all, _ := fx.translations.GetByNamespaceID(ctx, nil, nsID)
	if len(all) != 1 {
		t.Fatalf("upsert duplicated the row: count=%d", len(all))
	}
}

func TestUpsertInvalidatesCachedDocument(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fx := newTranslationFixture(t)
	fx.seedLocale(t, "en")
	nsID := fx.seedNamespace(t, "common")
	fx.seedRow(t, nsID, "greeting", "en", "old")

	if _, err := fx.service.GetTranslationsForProject(ctx, fx.projectID, "en"); err != nil {
		t.Fatalf("warm cache: %v", err)
	}
	if _, err := fx.service.UpsertTranslations(ctx, fx.projectID, []types.TranslationEntry{
		{Key: "greeting", Value: "new", Locale: "en", Namespace: "common"},
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := fx.service.GetTranslationsForProject(ctx, fx.projectID, "en")
	if err != nil {
		t.Fatalf("get after upsert: %v", err)
	}
	if got["common"]["greeting"] != "new" {
		t.Fatalf("stale value after invalidation: %v", got["common"]["greeting"])
	}
}

func TestDeleteTranslationInvalidatesCache(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fx := newTranslationFixture(t)
	fx.seedLocale(t, "en")
	nsID := fx.seedNamespace(t, "common")

	row, err := fx.service.Create(ctx, TranslationInput{
		Key: "bye", Value: "Bye", Locale: "en", NamespaceID: nsID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := fx.service.GetTranslationsForProject(ctx, fx.projectID, "en"); err != nil {
		t.Fatalf("warm cache: %v", err)
	}

	deleted, err := fx.service.Delete(ctx, row.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted == nil || deleted.ID != row.ID {
		t.Fatalf("delete result: %+v", deleted)
	}

	got, err := fx.service.GetTranslationsForProject(ctx, fx.projectID, "en")
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if _, ok := got["common"]["bye"]; ok {
		t.Fatal("deleted key still served from cache")
	}
}

func TestClearAllCacheCountsEntries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fx := newTranslationFixture(t)
	fx.seedLocale(t, "en")
	fx.seedLocale(t, "de")
	nsID := fx.seedNamespace(t, "common")
	fx.seedRow(t, nsID, "k", "en", "v")
	fx.seedRow(t, nsID, "k", "de", "w")

	if _, err := fx.service.GetTranslationsForProject(ctx, fx.projectID, "en"); err != nil {
		t.Fatalf("warm en: %v", err)
	}
	if _, err := fx.service.GetTranslationsForProject(ctx, fx.projectID, "de"); err != nil {
		t.Fatalf("warm de: %v", err)
	}

	n, err := fx.service.ClearAllCache(ctx)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if n != 2 {
		t.Fatalf("cleared count: got=%d want=2", n)
	}
	if fx.store.Len() != 0 {
		t.Fatalf("store still holds %d entries", fx.store.Len())
	}
}

func TestLocaleServiceSingleDefault(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	log := testLogger(t)
	locales := newFakeLocaleRepo()
	service := NewLocaleService(log, locales)

	first, err := service.Create(ctx, LocaleInput{Code: "en", Name: "English", NativeName: "English"})
	if err != nil {
		t.Fatalf("create en: %v", err)
	}
	if !first.IsDefault {
		t.Fatal("first locale must become default")
	}

	wantDefault := true
	second, err := service.Create(ctx, LocaleInput{Code: "de", Name: "German", NativeName: "Deutsch", IsDefault: &wantDefault})
	if err != nil {
		t.Fatalf("create de: %v", err)
	}
	if !second.IsDefault {
		t.Fatal("explicit default not honored")
	}
	reloaded, _ := locales.GetByCode(ctx, nil, "en")
	if reloaded.IsDefault {
		t.Fatal("previous default not demoted")
	}
}

func TestLocaleServiceDeleteDefaultPromotesReplacement(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	log := testLogger(t)
	locales := newFakeLocaleRepo()
	service := NewLocaleService(log, locales)

	first, err := service.Create(ctx, LocaleInput{Code: "en"})
	if err != nil {
		t.Fatalf("create en: %v", err)
	}
	if _, err := service.Create(ctx, LocaleInput{Code: "de"}); err != nil {
		t.Fatalf("create de: %v", err)
	}

	if _, err := service.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete default: %v", err)
	}
	remaining, _ := locales.GetByCode(ctx, nil, "de")
	if remaining == nil || !remaining.IsDefault {
		t.Fatal("replacement default not promoted")
	}
}
