// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"dentalstore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindAll retrieves all products, newest first.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindByCategory retrieves all products within a category, newest first.
	// An unmatched category yields an empty slice, not an error.
	FindByCategory(ctx context.Context, category entity.Category) ([]*entity.Product, error)

	// Create persists a new product entity to the storage.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product entity in the storage.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product. Implementations must refuse to delete a
	// product that is still referenced by order items.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountOrderReferences reports how many order items reference the product.
	CountOrderReferences(ctx context.Context, id uuid.UUID) (int64, error)
}
