package usecase

import (
	"context"

	"dentalstore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to add a catalog product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
	Category    string
}

// UpdateProductInput defines the data required to modify a catalog product.
type UpdateProductInput struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
	Category    string
}

// CatalogUsecase defines the interface for product catalog operations.
type CatalogUsecase interface {
	// ListProducts retrieves all products, newest first.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// ListProductsByCategory retrieves products for one category.
	// An unknown category is an error; an empty result is not.
	ListProductsByCategory(ctx context.Context, category string) ([]*entity.Product, error)

	// GetProduct retrieves a single product by ID.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// CreateProduct adds a new product to the catalog.
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)

	// UpdateProduct modifies an existing product.
	UpdateProduct(ctx context.Context, input UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a product. Refused while order items reference it.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
