// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"dentalstore/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CartItem is one line of an incoming cart. Prices are never accepted from
// the client; only the product reference and quantity.
type CartItem struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrderInput defines the data required to place an order.
// Checkout is anonymous, so the customer contact fields travel with the cart.
type CreateOrderInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	Items           []CartItem
}

// CheckoutUsecase defines the interface for order placement and retrieval.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CheckoutUsecase interface {
	// CreateOrder validates the cart, snapshots product prices, and persists
	// the order with its items atomically.
	CreateOrder(ctx context.Context, input CreateOrderInput) (*entity.Order, error)

	// GetOrder retrieves a single order with items and product details.
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListOrders retrieves all orders, newest first.
	ListOrders(ctx context.Context) ([]*entity.Order, error)
}
