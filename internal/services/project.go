package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/langbridge-backend/internal/logger"
	"github.com/yungbote/langbridge-backend/internal/repos"
	"github.com/yungbote/langbridge-backend/internal/types"
)

type ProjectInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

type ProjectService interface {
	GetAll(ctx context.Context) ([]*types.Project, error)
	GetByID(ctx context.Context, projectID uuid.UUID) (*types.Project, error)
	GetByAPIKey(ctx context.Context, apiKey string) (*types.Project, error)
	Create(ctx context.Context, input ProjectInput) (*types.Project, error)
	Update(ctx context.Context, projectID uuid.UUID, input ProjectInput) (*types.Project, error)
	Delete(ctx context.Context, projectID uuid.UUID) (*types.Project, error)
	RegenerateAPIKey(ctx context.Context, projectID uuid.UUID) (*types.Project, error)
}

type projectService struct {
	log         *logger.Logger
	projectRepo repos.ProjectRepo
}

func NewProjectService(log *logger.Logger, projectRepo repos.ProjectRepo) ProjectService {
	serviceLog := log.With("service", "ProjectService")
	return &projectService{log: serviceLog, projectRepo: projectRepo}
}

// generateAPIKey hashes a timestamp plus random bytes; the timestamp keeps
// keys unique even if the entropy source misbehaves.
func generateAPIKey() (string, error) {
	random := make([]byte, 16)
	if _, err := rand.Read(random); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	seed := strconv.FormatInt(time.Now().UnixNano(), 10) + "-" + hex.EncodeToString(random)
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:]), nil
}

func (ps *projectService) GetAll(ctx context.Context) ([]*types.Project, error) {
	return ps.projectRepo.GetAll(ctx, nil)
}

func (ps *projectService) GetByID(ctx context.Context, projectID uuid.UUID) (*types.Project, error) {
	return ps.projectRepo.GetByID(ctx, nil, projectID)
}

func (ps *projectService) GetByAPIKey(ctx context.Context, apiKey string) (*types.Project, error) {
	return ps.projectRepo.GetByAPIKey(ctx, nil, apiKey)
}

func (ps *projectService) Create(ctx context.Context, input ProjectInput) (*types.Project, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("project name is required")
	}
	apiKey, err := generateAPIKey()
	if err != nil {
		return nil, err
	}
	project := &types.Project{
		Name:        input.Name,
		Description: input.Description,
		APIKey:      apiKey,
		IsActive:    true,
	}
	return ps.projectRepo.Create(ctx, nil, project)
}

func (ps *projectService) Update(ctx context.Context, projectID uuid.UUID, input ProjectInput) (*types.Project, error) {
	existing, err := ps.projectRepo.GetByID(ctx, nil, projectID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if input.Name != "" {
		existing.Name = input.Name
	}
	if input.Description != "" {
		existing.Description = input.Description
	}
	if input.IsActive != nil {
		existing.IsActive = *input.IsActive
	}
	return ps.projectRepo.Update(ctx, nil, existing)
}

func (ps *projectService) Delete(ctx context.Context, projectID uuid.UUID) (*types.Project, error) {
	existing, err := ps.projectRepo.GetByID(ctx, nil, projectID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if err := ps.projectRepo.Delete(ctx, nil, projectID); err != nil {
		return nil, err
	}
	return existing, nil
}

func (ps *projectService) RegenerateAPIKey(ctx context.Context, projectID uuid.UUID) (*types.Project, error) {
	existing, err := ps.projectRepo.GetByID(ctx, nil, projectID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	apiKey, err := generateAPIKey()
	if err != nil {
		return nil, err
	}
	existing.APIKey = apiKey
	return ps.projectRepo.Update(ctx, nil, existing)
}
