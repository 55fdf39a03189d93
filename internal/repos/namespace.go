package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/langbridge-backend/internal/logger"
	"github.com/yungbote/langbridge-backend/internal/types"
)

type NamespaceRepo interface {
	Create(ctx context.Context, tx *gorm.DB, namespace *types.Namespace) (*types.Namespace, error)
	GetByID(ctx context.Context, tx *gorm.DB, namespaceID, projectID uuid.UUID) (*types.Namespace, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string, projectID uuid.UUID) (*types.Namespace, error)
	GetByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.Namespace, error)
	Update(ctx context.Context, tx *gorm.DB, namespace *types.Namespace) (*types.Namespace, error)
	Delete(ctx context.Context, tx *gorm.DB, namespaceID uuid.UUID) error
}

type namespaceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNamespaceRepo(db *gorm.DB, baseLog *logger.Logger) NamespaceRepo {
	repoLog := baseLog.With("repo", "NamespaceRepo")
	return &namespaceRepo{db: db, log: repoLog}
}

func (nr *namespaceRepo) Create(ctx context.Context, tx *gorm.DB, namespace *types.Namespace) (*types.Namespace, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}
	if err := transaction.WithContext(ctx).Create(namespace).Error; err != nil {
		return nil, err
	}
	return namespace, nil
}

func (nr *namespaceRepo) GetByID(ctx context.Context, tx *gorm.DB, namespaceID, projectID uuid.UUID) (*types.Namespace, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}
	var result types.Namespace
	query := transaction.WithContext(ctx).Where("id = ?", namespaceID)
	if projectID != uuid.Nil {
		query = query.Where("project_id = ?", projectID)
	}
	if err := query.First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (nr *namespaceRepo) GetByName(ctx context.Context, tx *gorm.DB, name string, projectID uuid.UUID) (*types.Namespace, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}
	var result types.Namespace
	if err := transaction.WithContext(ctx).
		Where("name = ? AND project_id = ?", name, projectID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (nr *namespaceRepo) GetByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.Namespace, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}
	var results []*types.Namespace
	if err := transaction.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (nr *namespaceRepo) Update(ctx context.Context, tx *gorm.DB, namespace *types.Namespace) (*types.Namespace, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}
	if err := transaction.WithContext(ctx).Save(namespace).Error; err != nil {
		return nil, err
	}
	return namespace, nil
}

func (nr *namespaceRepo) Delete(ctx context.Context, tx *gorm.DB, namespaceID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", namespaceID).
		Delete(&types.Namespace{}).Error
}
