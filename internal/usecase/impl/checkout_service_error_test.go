package impl

import (
	"context"
	"net/http"
	"testing"

	domainerrors "dentalstore/internal/domain/errors"
	"dentalstore/internal/domain/repository"
	mockRepo "dentalstore/internal/mocks/repository"
	"dentalstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckoutService_CreateOrder_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	order, err := fx.service.CreateOrder(context.Background(), validOrderInput())

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestCheckoutService_CreateOrder_MissingCustomerFields(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	item := usecase.CartItem{ProductID: uuid.New(), Quantity: 1}

	testCases := []struct {
		name     string
		mutate   func(*usecase.CreateOrderInput)
		expected string
	}{
		{"missing name", func(in *usecase.CreateOrderInput) { in.CustomerName = "" }, "name"},
		{"blank name", func(in *usecase.CreateOrderInput) { in.CustomerName = "   " }, "name"},
		{"missing email", func(in *usecase.CreateOrderInput) { in.CustomerEmail = "" }, "email"},
		{"missing phone", func(in *usecase.CreateOrderInput) { in.CustomerPhone = "" }, "phone"},
		{"missing address", func(in *usecase.CreateOrderInput) { in.CustomerAddress = "" }, "address"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := validOrderInput(item)
			tc.mutate(&input)

			order, err := fx.service.CreateOrder(ctx, input)

			assert.Nil(t, order)
			appErr := domainerrors.AsAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "MISSING_FIELD", appErr.ErrorCode())
			assert.Equal(t, tc.expected, appErr.Details())
		})
	}
}

func TestCheckoutService_CreateOrder_FieldOrderIsFixed(t *testing.T) {
	fx := createTestCheckoutService(t)

	// Everything missing: the name must be reported first.
	input := usecase.CreateOrderInput{
		Items: []usecase.CartItem{{ProductID: uuid.New(), Quantity: 1}},
	}

	_, err := fx.service.CreateOrder(context.Background(), input)

	appErr := domainerrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "name", appErr.Details())
}

func TestCheckoutService_CreateOrder_InvalidQuantity(t *testing.T) {
	fx := createTestCheckoutService(t)

	input := validOrderInput(usecase.CartItem{ProductID: uuid.New(), Quantity: 0})

	order, err := fx.service.CreateOrder(context.Background(), input)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestCheckoutService_CreateOrder_ProductNotFound(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	missingID := uuid.New()
	input := validOrderInput(usecase.CartItem{ProductID: missingID, Quantity: 1})

	fx.productRepo.EXPECT().FindByID(ctx, missingID).Return(nil, repository.ErrProductNotFound)

	order, err := fx.service.CreateOrder(ctx, input)

	assert.Nil(t, order)
	appErr := domainerrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
	assert.Equal(t, missingID.String(), appErr.Details())
}

func TestCheckoutService_CreateOrder_UnknownProductAbortsWholeOrder(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	known := newTestProduct("20.00")
	missingID := uuid.New()
	input := validOrderInput(
		usecase.CartItem{ProductID: known.ID, Quantity: 1},
		usecase.CartItem{ProductID: missingID, Quantity: 1},
	)

	fx.productRepo.EXPECT().FindByID(ctx, known.ID).Return(known, nil)
	fx.productRepo.EXPECT().FindByID(ctx, missingID).Return(nil, repository.ErrProductNotFound)

	order, err := fx.service.CreateOrder(ctx, input)

	// No transaction was started; nothing persisted.
	assert.Nil(t, order)
	assert.Error(t, err)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCheckoutService_CreateOrder_StorageFailure(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	product := newTestProduct("15.00")
	input := validOrderInput(usecase.CartItem{ProductID: product.ID, Quantity: 1})

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Return(domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to create order"))

			return fn(mockFactory)
		})

	order, err := fx.service.CreateOrder(ctx, input)

	assert.Nil(t, order)
	appErr := domainerrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	// The client-facing message stays generic.
	assert.NotContains(t, appErr.Message(), "connection reset")
}
