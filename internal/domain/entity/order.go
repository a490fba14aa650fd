// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is the aggregate root for a customer purchase. It is created exactly
// once, together with its items, inside a single transaction. TotalAmount is
// fixed at creation time as the sum of the items' price times quantity and is
// never recomputed afterwards.
type Order struct {
	ID              uuid.UUID       // The unique identifier of the order.
	CustomerName    string          // Full name supplied at checkout.
	CustomerEmail   string          // Contact email supplied at checkout.
	CustomerPhone   string          // Contact phone supplied at checkout.
	CustomerAddress string          // Delivery address supplied at checkout.
	TotalAmount     decimal.Decimal // Sum of all item line totals, fixed at creation.
	Status          OrderStatus     // Current lifecycle status, pending on creation.
	Items           []*OrderItem    // Line items owned exclusively by this order.
	CreatedAt       time.Time       // Timestamp of when the order was placed.
	UpdatedAt       time.Time       // Timestamp of the last modification.
}

// OrderItem is one resolved line of an order. Price is a snapshot of the
// product price at order time and stays immutable when the catalog changes.
type OrderItem struct {
	ID       uuid.UUID       // The unique identifier of the line item.
	OrderID  uuid.UUID       // The order this line belongs to.
	Product  *Product        // The referenced product, hydrated for responses.
	Quantity int             // Ordered quantity, always >= 1.
	Price    decimal.Decimal // Unit price snapshot taken at order creation.
}

// TotalPrice is the derived line total: snapshot price times quantity.
func (i *OrderItem) TotalPrice() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
