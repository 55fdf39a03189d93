package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yungbote/langbridge-backend/internal/logger"
	"github.com/yungbote/langbridge-backend/internal/repos"
	"github.com/yungbote/langbridge-backend/internal/types"
)

type LocaleInput struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
	IsDefault  *bool  `json:"is_default,omitempty"`
	IsActive   *bool  `json:"is_active,omitempty"`
}

// LocaleService owns the single-default invariant: every change that promotes
// a locale demotes the current default first.
type LocaleService interface {
	GetAll(ctx context.Context) ([]*types.Locale, error)
	GetByID(ctx context.Context, localeID uuid.UUID) (*types.Locale, error)
	GetByCode(ctx context.Context, code string) (*types.Locale, error)
	Create(ctx context.Context, input LocaleInput) (*types.Locale, error)
	Update(ctx context.Context, localeID uuid.UUID, input LocaleInput) (*types.Locale, error)
	Delete(ctx context.Context, localeID uuid.UUID) (*types.Locale, error)
}

type localeService struct {
	log        *logger.Logger
	localeRepo repos.LocaleRepo
}

func NewLocaleService(log *logger.Logger, localeRepo repos.LocaleRepo) LocaleService {
	serviceLog := log.With("service", "LocaleService")
	return &localeService{log: serviceLog, localeRepo: localeRepo}
}

func (ls *localeService) GetAll(ctx context.Context) ([]*types.Locale, error) {
	return ls.localeRepo.GetAll(ctx, nil)
}

func (ls *localeService) GetByID(ctx context.Context, localeID uuid.UUID) (*types.Locale, error) {
	return ls.localeRepo.GetByID(ctx, nil, localeID)
}

func (ls *localeService) GetByCode(ctx context.Context, code string) (*types.Locale, error) {
	return ls.localeRepo.GetByCode(ctx, nil, code)
}

func (ls *localeService) Create(ctx context.Context, input LocaleInput) (*types.Locale, error) {
	if input.Code == "" {
		return nil, fmt.Errorf("locale code is required")
	}

	// The first locale ever registered becomes the default unless told otherwise.
	count, err := ls.localeRepo.Count(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("counting locales: %w", err)
	}
	isDefault := count == 0
	if input.IsDefault != nil {
		isDefault = *input.IsDefault
	}

	if isDefault {
		if err := ls.localeRepo.ClearDefault(ctx, nil, uuid.Nil); err != nil {
			return nil, fmt.Errorf("demoting default locale: %w", err)
		}
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	locale := &types.Locale{
		Code:       input.Code,
		Name:       input.Name,
		NativeName: input.NativeName,
		IsDefault:  isDefault,
		IsActive:   isActive,
	}
	created, err := ls.localeRepo.Create(ctx, nil, locale)
	if err != nil {
		return nil, fmt.Errorf("creating locale: %w", err)
	}
	return created, nil
}

func (ls *localeService) Update(ctx context.Context, localeID uuid.UUID, input LocaleInput) (*types.Locale, error) {
	existing, err := ls.localeRepo.GetByID(ctx, nil, localeID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if input.IsDefault != nil && *input.IsDefault {
		if err := ls.localeRepo.ClearDefault(ctx, nil, localeID); err != nil {
			return nil, fmt.Errorf("demoting default locale: %w", err)
		}
	}

	if input.Code != "" {
		existing.Code = input.Code
	}
	if input.Name != "" {
		existing.Name = input.Name
	}
	if input.NativeName != "" {
		existing.NativeName = input.NativeName
	}
	if input.IsDefault != nil {
		existing.IsDefault = *input.IsDefault
	}
	if input.IsActive != nil {
		existing.IsActive = *input.IsActive
	}

	return ls.localeRepo.Update(ctx, nil, existing)
}

func (ls *localeService) Delete(ctx context.Context, localeID uuid.UUID) (*types.Locale, error) {
	locale, err := ls.localeRepo.GetByID(ctx, nil, localeID)
	if err != nil {
		return nil, err
	}
	if locale == nil {
		return nil, nil
	}

	// Deleting the default promotes the first remaining active locale so the
	// invariant holds without manual intervention.
	if locale.IsDefault {
		next, err := ls.localeRepo.FirstActive(ctx, nil, localeID)
		if err != nil {
			return nil, err
		}
		if next != nil {
			next.IsDefault = true
			if _, err := ls.localeRepo.Update(ctx, nil, next); err != nil {
				return nil, fmt.Errorf("promoting replacement default: %w", err)
			}
		}
	}

	if err := ls.localeRepo.Delete(ctx, nil, localeID); err != nil {
		return nil, err
	}
	return locale, nil
}
