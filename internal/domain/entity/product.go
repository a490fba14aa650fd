// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry that customers can order.
// Order items reference products but never own them; a product's price may
// change after an order is placed without affecting past orders.
type Product struct {
	ID          uuid.UUID       // The unique identifier of the product.
	Name        string          // Display name shown in the catalog.
	Description string          // Free-text product description.
	Price       decimal.Decimal // Current unit price, two fraction digits, never negative.
	Image       string          // Path of the stored product image, relative to the media root.
	Category    Category        // Catalog category the product belongs to.
	CreatedAt   time.Time       // Timestamp of when the product was created.
	UpdatedAt   time.Time       // Timestamp of the last modification.
}
