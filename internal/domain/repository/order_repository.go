// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"dentalstore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
// Creation writes the order together with its items; callers that need
// atomicity run it inside TransactionManager.Execute.
type OrderRepository interface {
	// Create persists a new order and all of its items in one write.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order with its items and product details.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindAll retrieves all orders with items and product details, newest first.
	FindAll(ctx context.Context) ([]*entity.Order, error)
}
