// Package impl provides the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"strings"

	"dentalstore/internal/domain/entity"
	domainerrors "dentalstore/internal/domain/errors"
	"dentalstore/internal/domain/repository"
	"dentalstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type checkoutService struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	txManager   repository.TransactionManager
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	TxManager   repository.TransactionManager
}

// NewCheckoutService creates a new checkout service instance.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		productRepo: params.ProductRepo,
		orderRepo:   params.OrderRepo,
		txManager:   params.TxManager,
	}
}

// CreateOrder validates the cart, snapshots product prices, and persists the
// order with its items in a single transaction.
func (srv *checkoutService) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	if err := validateCustomerInfo(input); err != nil {
		return nil, err
	}

	// Resolve every cart line against the catalog before touching storage.
	// The price snapshot is taken here, so later catalog edits never change
	// what this order charges.
	items := make([]*entity.OrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		if line.Quantity < 1 {
			return nil, domainerrors.ErrInvalidQuantity
		}

		product, err := srv.productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, domainerrors.NewProductNotFoundError(line.ProductID.String())
			}

			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to resolve cart line")
		}

		items = append(items, &entity.OrderItem{
			Product:  product,
			Quantity: line.Quantity,
			Price:    product.Price,
		})
	}

	order := &entity.Order{
		CustomerName:    strings.TrimSpace(input.CustomerName),
		CustomerEmail:   strings.TrimSpace(input.CustomerEmail),
		CustomerPhone:   strings.TrimSpace(input.CustomerPhone),
		CustomerAddress: strings.TrimSpace(input.CustomerAddress),
		TotalAmount:     sumLineTotals(items),
		Status:          entity.OrderStatusPending,
		Items:           items,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.OrderRepo().Create(ctx, order)
	})
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			// A product deleted between lookup and commit.
			return nil, domainerrors.ErrProductNotFound
		}
		if appErr := domainerrors.AsAppError(err); appErr != nil {
			return nil, appErr
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to persist order")
	}

	return order, nil
}

// GetOrder retrieves a single order with items and product details.
func (srv *checkoutService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find order")
	}

	return order, nil
}

// ListOrders retrieves all orders, newest first.
func (srv *checkoutService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	return orders, nil
}

// validateCustomerInfo reports the first missing customer field in the fixed
// order name, email, phone, address.
func validateCustomerInfo(input usecase.CreateOrderInput) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", input.CustomerName},
		{"email", input.CustomerEmail},
		{"phone", input.CustomerPhone},
		{"address", input.CustomerAddress},
	}

	for _, field := range fields {
		if strings.TrimSpace(field.value) == "" {
			return domainerrors.NewMissingFieldError(field.name)
		}
	}

	return nil
}

// sumLineTotals adds up price times quantity across all lines.
func sumLineTotals(items []*entity.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalPrice())
	}

	return total
}
