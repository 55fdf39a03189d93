package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yungbote/langbridge-backend/internal/logger"
	"github.com/yungbote/langbridge-backend/internal/repos"
	"github.com/yungbote/langbridge-backend/internal/types"
)

type NamespaceInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type NamespaceService interface {
	GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]*types.Namespace, error)
	GetByID(ctx context.Context, namespaceID, projectID uuid.UUID) (*types.Namespace, error)
	GetByName(ctx context.Context, name string, projectID uuid.UUID) (*types.Namespace, error)
	Create(ctx context.Context, projectID uuid.UUID, input NamespaceInput) (*types.Namespace, error)
	// GetOrCreate is the write path's entry point: batch upserts may name
	// namespaces that do not exist yet.
	GetOrCreate(ctx context.Context, name string, projectID uuid.UUID) (*types.Namespace, error)
	Update(ctx context.Context, namespace *types.Namespace) (*types.Namespace, error)
	Delete(ctx context.Context, namespaceID uuid.UUID) error
}

type namespaceService struct {
	log           *logger.Logger
	namespaceRepo repos.NamespaceRepo
	projectRepo   repos.ProjectRepo
}

func NewNamespaceService(log *logger.Logger, namespaceRepo repos.NamespaceRepo, projectRepo repos.ProjectRepo) NamespaceService {
	serviceLog := log.With("service", "NamespaceService")
	return &namespaceService{log: serviceLog, namespaceRepo: namespaceRepo, projectRepo: projectRepo}
}

func (ns *namespaceService) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]*types.Namespace, error) {
	return ns.namespaceRepo.GetByProjectID(ctx, nil, projectID)
}

func (ns *namespaceService) GetByID(ctx context.Context, namespaceID, projectID uuid.UUID) (*types.Namespace, error) {
	return ns.namespaceRepo.GetByID(ctx, nil, namespaceID, projectID)
}

func (ns *namespaceService) GetByName(ctx context.Context, name string, projectID uuid.UUID) (*types.Namespace, error) {
	return ns.namespaceRepo.GetByName(ctx, nil, name, projectID)
}

func (ns *namespaceService) Create(ctx context.Context, projectID uuid.UUID, input NamespaceInput) (*types.Namespace, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("namespace name is required")
	}

	project, err := ns.projectRepo.GetByID(ctx, nil, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("project %s does not exist", projectID)
	}

	existing, err := ns.namespaceRepo.GetByName(ctx, nil, input.Name, projectID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	namespace := &types.Namespace{
		Name:        input.Name,
		Description: input.Description,
		ProjectID:   projectID,
	}
	created, err := ns.namespaceRepo.Create(ctx, nil, namespace)
	if err != nil {
		return nil, fmt.Errorf("creating namespace: %w", err)
	}
	return created, nil
}

func (ns *namespaceService) GetOrCreate(ctx context.Context, name string, projectID uuid.UUID) (*types.Namespace, error) {
	existing, err := ns.namespaceRepo.GetByName(ctx, nil, name, projectID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	return ns.Create(ctx, projectID, NamespaceInput{Name: name})
}

func (ns *namespaceService) Update(ctx context.Context, namespace *types.Namespace) (*types.Namespace, error) {
	return ns.namespaceRepo.Update(ctx, nil, namespace)
}

func (ns *namespaceService) Delete(ctx context.Context, namespaceID uuid.UUID) error {
	return ns.namespaceRepo.Delete(ctx, nil, namespaceID)
}
