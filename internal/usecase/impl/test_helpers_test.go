package impl

import (
	"io"
	"log/slog"

	"dentalstore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestProduct(price string) *entity.Product {
	return &entity.Product{
		ID:       uuid.New(),
		Name:     "Test Product",
		Price:    decimal.RequireFromString(price),
		Category: entity.CategoryWaterFlosser,
	}
}
