package usecase

import (
	"context"

	"dentalstore/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateSettingInput defines the data required to add a site setting.
type CreateSettingInput struct {
	Key         string
	Value       string
	Description string
	Category    string
}

// UpdateSettingInput defines the data required to modify a site setting.
type UpdateSettingInput struct {
	ID          uuid.UUID
	Key         string
	Value       string
	Description string
	Category    string
}

// CreatePageImageInput defines the data required to add a page image.
type CreatePageImageInput struct {
	Name     string
	Position string
	Image    string
	LinkURL  string
	IsActive bool
}

// UpdatePageImageInput defines the data required to modify a page image.
type UpdatePageImageInput struct {
	ID       uuid.UUID
	Name     string
	Position string
	Image    string
	LinkURL  string
	IsActive bool
}

// PageImageQuery narrows a page image listing.
type PageImageQuery struct {
	Position   string
	ActiveOnly bool
}

// CMSUsecase defines the interface for managed site content: key-value
// settings and positioned page images.
type CMSUsecase interface {
	// ListSettings retrieves all settings grouped by category.
	ListSettings(ctx context.Context) ([]*entity.SiteSetting, error)

	// GetSetting retrieves a single setting by ID.
	GetSetting(ctx context.Context, id uuid.UUID) (*entity.SiteSetting, error)

	// CreateSetting adds a new setting. The key must be unique.
	CreateSetting(ctx context.Context, input CreateSettingInput) (*entity.SiteSetting, error)

	// UpdateSetting modifies an existing setting.
	UpdateSetting(ctx context.Context, input UpdateSettingInput) (*entity.SiteSetting, error)

	// DeleteSetting removes a setting by ID.
	DeleteSetting(ctx context.Context, id uuid.UUID) error

	// ListPageImages retrieves page images, optionally filtered by position
	// and active state.
	ListPageImages(ctx context.Context, query PageImageQuery) ([]*entity.PageImage, error)

	// GetPageImage retrieves a single page image by ID.
	GetPageImage(ctx context.Context, id uuid.UUID) (*entity.PageImage, error)

	// CreatePageImage adds a new page image.
	CreatePageImage(ctx context.Context, input CreatePageImageInput) (*entity.PageImage, error)

	// UpdatePageImage modifies an existing page image.
	UpdatePageImage(ctx context.Context, input UpdatePageImageInput) (*entity.PageImage, error)

	// DeletePageImage removes a page image and best-effort deletes its file.
	DeletePageImage(ctx context.Context, id uuid.UUID) error
}
