package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/langbridge-backend/internal/logger"
	"github.com/yungbote/langbridge-backend/internal/types"
)

type LocaleRepo interface {
	Create(ctx context.Context, tx *gorm.DB, locale *types.Locale) (*types.Locale, error)
	GetByID(ctx context.Context, tx *gorm.DB, localeID uuid.UUID) (*types.Locale, error)
	GetByCode(ctx context.Context, tx *gorm.DB, code string) (*types.Locale, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Locale, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	// ClearDefault demotes every default locale except excludeID (pass uuid.Nil
	// to demote all). Used before promoting a new default.
	ClearDefault(ctx context.Context, tx *gorm.DB, excludeID uuid.UUID) error
	FirstActive(ctx context.Context, tx *gorm.DB, excludeID uuid.UUID) (*types.Locale, error)
	Update(ctx context.Context, tx *gorm.DB, locale *types.Locale) (*types.Locale, error)
	Delete(ctx context.Context, tx *gorm.DB, localeID uuid.UUID) error
}

type localeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLocaleRepo(db *gorm.DB, baseLog *logger.Logger) LocaleRepo {
	repoLog := baseLog.With("repo", "LocaleRepo")
	return &localeRepo{db: db, log: repoLog}
}

func (lr *localeRepo) Create(ctx context.Context, tx *gorm.DB, locale *types.Locale) (*types.Locale, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	if err := transaction.WithContext(ctx).Create(locale).Error; err != nil {
		return nil, err
	}
	return locale, nil
}

func (lr *localeRepo) GetByID(ctx context.Context, tx *gorm.DB, localeID uuid.UUID) (*types.Locale, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	var result types.Locale
	if err := transaction.WithContext(ctx).
		Where("id = ?", localeID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (lr *localeRepo) GetByCode(ctx context.Context, tx *gorm.DB, code string) (*types.Locale, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	var result types.Locale
	if err := transaction.WithContext(ctx).
		Where("code = ?", code).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (lr *localeRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Locale, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	var results []*types.Locale
	if err := transaction.WithContext(ctx).
		Order("is_default DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (lr *localeRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Locale{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (lr *localeRepo) ClearDefault(ctx context.Context, tx *gorm.DB, excludeID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	query := transaction.WithContext(ctx).
		Model(&types.Locale{}).
		Where("is_default = ?", true)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	return query.Update("is_default", false).Error
}

func (lr *localeRepo) FirstActive(ctx context.Context, tx *gorm.DB, excludeID uuid.UUID) (*types.Locale, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	var result types.Locale
	query := transaction.WithContext(ctx).
		Where("is_active = ?", true)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (lr *localeRepo) Update(ctx context.Context, tx *gorm.DB, locale *types.Locale) (*types.Locale, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	if err := transaction.WithContext(ctx).Save(locale).Error; err != nil {
		return nil, err
	}
	return locale, nil
}

func (lr *localeRepo) Delete(ctx context.Context, tx *gorm.DB, localeID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", localeID).
		Delete(&types.Locale{}).Error
}
