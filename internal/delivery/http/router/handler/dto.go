// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"dentalstore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Response DTOs ---
// Domain entities are mapped to explicit response shapes so the wire format
// stays stable when the entities change.

// ProductResponse is the wire representation of a catalog product.
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image,omitempty"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// OrderItemResponse is one order line, including the derived line total.
type OrderItemResponse struct {
	ID         uuid.UUID        `json:"id"`
	Product    *ProductResponse `json:"product"`
	Quantity   int              `json:"quantity"`
	Price      decimal.Decimal  `json:"price"`
	TotalPrice decimal.Decimal  `json:"total_price"`
}

// OrderResponse is the wire representation of an order.
type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	CustomerName    string              `json:"customer_name"`
	CustomerEmail   string              `json:"customer_email"`
	CustomerPhone   string              `json:"customer_phone"`
	CustomerAddress string              `json:"customer_address"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	Status          string              `json:"status"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// SettingResponse is the wire representation of a site setting.
type SettingResponse struct {
	ID          uuid.UUID `json:"id"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PageImageResponse is the wire representation of a page image.
type PageImageResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Image     string    `json:"image"`
	LinkURL   string    `json:"link_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse returns the session token and signed-in account info.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// UserResponse identifies a signed-in account. The password hash never leaves
// the server.
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email,omitempty"`
	Role     string    `json:"role"`
}

// --- Mappers ---

func toProductResponse(product *entity.Product) *ProductResponse {
	if product == nil {
		return nil
	}

	return &ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Image:       product.Image,
		Category:    product.Category.String(),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func toProductResponses(products []*entity.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, product := range products {
		out = append(out, toProductResponse(product))
	}

	return out
}

func toOrderResponse(order *entity.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ID:         item.ID,
			Product:    toProductResponse(item.Product),
			Quantity:   item.Quantity,
			Price:      item.Price,
			TotalPrice: item.TotalPrice(),
		})
	}

	return &OrderResponse{
		ID:              order.ID,
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		CustomerPhone:   order.CustomerPhone,
		CustomerAddress: order.CustomerAddress,
		TotalAmount:     order.TotalAmount,
		Status:          order.Status.String(),
		Items:           items,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

func toOrderResponses(orders []*entity.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order))
	}

	return out
}

func toSettingResponse(setting *entity.SiteSetting) *SettingResponse {
	return &SettingResponse{
		ID:          setting.ID,
		Key:         setting.Key,
		Value:       setting.Value,
		Description: setting.Description,
		Category:    string(setting.Category),
		CreatedAt:   setting.CreatedAt,
		UpdatedAt:   setting.UpdatedAt,
	}
}

func toSettingResponses(settings []*entity.SiteSetting) []*SettingResponse {
	out := make([]*SettingResponse, 0, len(settings))
	for _, setting := range settings {
		out = append(out, toSettingResponse(setting))
	}

	return out
}

func toPageImageResponse(image *entity.PageImage) *PageImageResponse {
	return &PageImageResponse{
		ID:        image.ID,
		Name:      image.Name,
		Position:  string(image.Position),
		Image:     image.Image,
		LinkURL:   image.LinkURL,
		IsActive:  image.IsActive,
		CreatedAt: image.CreatedAt,
		UpdatedAt: image.UpdatedAt,
	}
}

func toPageImageResponses(images []*entity.PageImage) []*PageImageResponse {
	out := make([]*PageImageResponse, 0, len(images))
	for _, image := range images {
		out = append(out, toPageImageResponse(image))
	}

	return out
}
