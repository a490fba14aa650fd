package impl

import (
	"context"
	"testing"

	"dentalstore/internal/domain/entity"
	domainerrors "dentalstore/internal/domain/errors"
	"dentalstore/internal/domain/repository"
	mockRepo "dentalstore/internal/mocks/repository"
	"dentalstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service     usecase.CheckoutUsecase
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
	txManager   *mockRepo.MockTransactionManager
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewCheckoutService(CheckoutServiceParams{
		ProductRepo: productRepo,
		OrderRepo:   orderRepo,
		TxManager:   txManager,
	})

	return checkoutServiceFixtures{
		service:     service,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		txManager:   txManager,
	}
}

func validOrderInput(items ...usecase.CartItem) usecase.CreateOrderInput {
	return usecase.CreateOrderInput{
		CustomerName:    "Jordan Smith",
		CustomerEmail:   "jordan@example.com",
		CustomerPhone:   "555-0100",
		CustomerAddress: "1 Main St",
		Items:           items,
	}
}

func expectOrderPersisted(t *testing.T, fx checkoutServiceFixtures, ctx context.Context) {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = uuid.New()
					for _, item := range order.Items {
						item.ID = uuid.New()
						item.OrderID = order.ID
					}
				}).
				Return(nil)

			return fn(mockFactory)
		})
}

func TestCheckoutService_CreateOrder_Success(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	product := newTestProduct("100.00")
	input := validOrderInput(usecase.CartItem{ProductID: product.ID, Quantity: 2})

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	expectOrderPersisted(t, fx, ctx)

	order, err := fx.service.CreateOrder(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("200.00")),
		"expected total 200.00, got %s", order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.True(t, order.Items[0].Price.Equal(product.Price))
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, order.ID, order.Items[0].OrderID)
}

func TestCheckoutService_CreateOrder_MultipleLines(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	flosser := newTestProduct("100.00")
	mouthwash := newTestProduct("75.00")
	input := validOrderInput(
		usecase.CartItem{ProductID: flosser.ID, Quantity: 1},
		usecase.CartItem{ProductID: mouthwash.ID, Quantity: 2},
	)

	fx.productRepo.EXPECT().FindByID(ctx, flosser.ID).Return(flosser, nil)
	fx.productRepo.EXPECT().FindByID(ctx, mouthwash.ID).Return(mouthwash, nil)
	expectOrderPersisted(t, fx, ctx)

	order, err := fx.service.CreateOrder(ctx, input)

	require.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("250.00")),
		"expected total 250.00, got %s", order.TotalAmount)
	require.Len(t, order.Items, 2)
}

func TestCheckoutService_CreateOrder_PriceSnapshotIgnoresLaterChanges(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	product := newTestProduct("40.00")
	input := validOrderInput(usecase.CartItem{ProductID: product.ID, Quantity: 1})

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	expectOrderPersisted(t, fx, ctx)

	order, err := fx.service.CreateOrder(ctx, input)
	require.NoError(t, err)

	// The catalog price moves after checkout; the order keeps its snapshot.
	product.Price = decimal.RequireFromString("99.99")
	assert.True(t, order.Items[0].Price.Equal(decimal.RequireFromString("40.00")))
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("40.00")))
}

func TestCheckoutService_CreateOrder_NotIdempotent(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	product := newTestProduct("10.00")
	input := validOrderInput(usecase.CartItem{ProductID: product.ID, Quantity: 1})

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil).Times(2)
	expectOrderPersisted(t, fx, ctx)

	// Two identical submissions create two distinct orders.
	first, err := fx.service.CreateOrder(ctx, input)
	require.NoError(t, err)
	second, err := fx.service.CreateOrder(ctx, input)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestCheckoutService_GetOrder_Success(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	orderID := uuid.New()
	stored := &entity.Order{ID: orderID, Status: entity.OrderStatusPending}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(stored, nil)

	order, err := fx.service.GetOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
}

func TestCheckoutService_GetOrder_NotFound(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	orderID := uuid.New()
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.GetOrder(ctx, orderID)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestCheckoutService_ListOrders(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	stored := []*entity.Order{
		{ID: uuid.New()},
		{ID: uuid.New()},
	}
	fx.orderRepo.EXPECT().FindAll(ctx).Return(stored, nil)

	orders, err := fx.service.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
