package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/langbridge-backend/internal/logger"
	"github.com/yungbote/langbridge-backend/internal/types"
)

type TranslationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, translation *types.Translation) (*types.Translation, error)
	GetByID(ctx context.Context, tx *gorm.DB, translationID uuid.UUID) (*types.Translation, error)
	// Get looks a row up by its identity triple (key, locale, namespace).
	Get(ctx context.Context, tx *gorm.DB, key, locale string, namespaceID uuid.UUID) (*types.Translation, error)
	// GetByNamespaceAndLocale returns the rows for one namespace+locale ordered
	// by key ascending. The ordering keeps responses deterministic, nothing more.
	GetByNamespaceAndLocale(ctx context.Context, tx *gorm.DB, namespaceID uuid.UUID, locale string) ([]*types.Translation, error)
	GetByNamespaceID(ctx context.Context, tx *gorm.DB, namespaceID uuid.UUID) ([]*types.Translation, error)
	Update(ctx context.Context, tx *gorm.DB, translation *types.Translation) (*types.Translation, error)
	Delete(ctx context.Context, tx *gorm.DB, translationID uuid.UUID) error
}

type translationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTranslationRepo(db *gorm.DB, baseLog *logger.Logger) TranslationRepo {
	repoLog := baseLog.With("repo", "TranslationRepo")
	return &translationRepo{db: db, log: repoLog}
}

func (tr *translationRepo) Create(ctx context.Context, tx *gorm.DB, translation *types.Translation) (*types.Translation, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	if err := transaction.WithContext(ctx).Create(translation).Error; err != nil {
		return nil, err
	}
	return translation, nil
}

func (tr *translationRepo) GetByID(ctx context.Context, tx *gorm.DB, translationID uuid.UUID) (*types.Translation, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	var result types.Translation
	if err := transaction.WithContext(ctx).
		Where("id = ?", translationID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (tr *translationRepo) Get(ctx context.Context, tx *gorm.DB, key, locale string, namespaceID uuid.UUID) (*types.Translation, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	var result types.Translation
	if err := transaction.WithContext(ctx).
		Where("key = ? AND locale = ? AND namespace_id = ?", key, locale, namespaceID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (tr *translationRepo) GetByNamespaceAndLocale(ctx context.Context, tx *gorm.DB, namespaceID uuid.UUID, locale string) ([]*types.Translation, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	var results []*types.Translation
	if err := transaction.WithContext(ctx).
		Where("namespace_id = ? AND locale = ?", namespaceID, locale).
		Order("key ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *translationRepo) GetByNamespaceID(ctx context.Context, tx *gorm.DB, namespaceID uuid.UUID) ([]*types.Translation, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	var results []*types.Translation
	if err := transaction.WithContext(ctx).
		Where("namespace_id = ?", namespaceID).
		Order("key ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *translationRepo) Update(ctx context.Context, tx *gorm.DB, translation *types.Translation) (*types.Translation, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	if err := transaction.WithContext(ctx).Save(translation).Error; err != nil {
		return nil, err
	}
	return translation, nil
}

func (tr *translationRepo) Delete(ctx context.Context, tx *gorm.DB, translationID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", translationID).
		Delete(&types.Translation{}).Error
}
