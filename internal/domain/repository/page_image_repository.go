// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"dentalstore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPageImageNotFound is a domain-specific error returned when a page image is not found.
var ErrPageImageNotFound = errors.New("page image not found")

// PageImageFilter narrows page image listings. Zero values mean "no filter".
type PageImageFilter struct {
	Position   entity.PagePosition
	ActiveOnly bool
}

// PageImageRepository defines the standard operations for page image persistence.
type PageImageRepository interface {
	// FindByID retrieves a single page image by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PageImage, error)

	// FindAll retrieves page images matching the filter, ordered by position
	// then newest first.
	FindAll(ctx context.Context, filter PageImageFilter) ([]*entity.PageImage, error)

	// Create persists a new page image.
	Create(ctx context.Context, image *entity.PageImage) error

	// Update modifies an existing page image.
	Update(ctx context.Context, image *entity.PageImage) error

	// Delete removes a page image by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
