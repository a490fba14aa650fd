package impl

import (
	"context"
	"net/http"
	"testing"

	"dentalstore/internal/domain/entity"
	domainerrors "dentalstore/internal/domain/errors"
	"dentalstore/internal/domain/repository"
	mockRepo "dentalstore/internal/mocks/repository"
	mockSvc "dentalstore/internal/mocks/service"
	"dentalstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
	imageStore  *mockSvc.MockImageStore
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)

	service := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		ImageStore:  imageStore,
		Logger:      newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:     service,
		productRepo: productRepo,
		imageStore:  imageStore,
	}
}

func TestCatalogService_ListProducts(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	stored := []*entity.Product{newTestProduct("10.00"), newTestProduct("20.00")}
	fx.productRepo.EXPECT().FindAll(ctx).Return(stored, nil)

	products, err := fx.service.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestCatalogService_ListProductsByCategory(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindByCategory(ctx, entity.CategoryMouthwash).
		Return([]*entity.Product{}, nil)

	products, err := fx.service.ListProductsByCategory(ctx, "mouthwash")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCatalogService_ListProductsByCategory_Unknown(t *testing.T) {
	fx := createTestCatalogService(t)

	products, err := fx.service.ListProductsByCategory(context.Background(), "toothpicks")

	assert.Nil(t, products)
	appErr := domainerrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "toothpicks", appErr.Details())
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	id := uuid.New()
	fx.productRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, id)

	assert.Nil(t, product)
	appErr := domainerrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	input := usecase.CreateProductInput{
		Name:     "Sonic Brush",
		Price:    decimal.RequireFromString("129.00"),
		Category: "electric_brush",
	}

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			product.ID = uuid.New()
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, entity.CategoryElectricBrush, product.Category)
}

func TestCatalogService_CreateProduct_Validation(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	testCases := []struct {
		name  string
		input usecase.CreateProductInput
	}{
		{"empty name", usecase.CreateProductInput{Category: "other"}},
		{"unknown category", usecase.CreateProductInput{Name: "X", Category: "gadgets"}},
		{"negative price", usecase.CreateProductInput{
			Name: "X", Category: "other", Price: decimal.RequireFromString("-1"),
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			product, err := fx.service.CreateProduct(ctx, tc.input)
			assert.Nil(t, product)
			appErr := domainerrors.AsAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
		})
	}
}

func TestCatalogService_DeleteProduct_RemovesImage(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	product := newTestProduct("10.00")
	product.Image = "products/flosser.jpg"

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().CountOrderReferences(ctx, product.ID).Return(int64(0), nil)
	fx.productRepo.EXPECT().Delete(ctx, product.ID).Return(nil)
	fx.imageStore.EXPECT().Remove(ctx, "products/flosser.jpg").Return(nil)

	err := fx.service.DeleteProduct(ctx, product.ID)
	assert.NoError(t, err)
}

func TestCatalogService_DeleteProduct_ImageRemovalFailureIsIgnored(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	product := newTestProduct("10.00")
	product.Image = "products/flosser.jpg"

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().CountOrderReferences(ctx, product.ID).Return(int64(0), nil)
	fx.productRepo.EXPECT().Delete(ctx, product.ID).Return(nil)
	fx.imageStore.EXPECT().Remove(ctx, "products/flosser.jpg").Return(errors.New("permission denied"))

	// Record deletion succeeded, so the operation reports success.
	err := fx.service.DeleteProduct(ctx, product.ID)
	assert.NoError(t, err)
}

func TestCatalogService_DeleteProduct_InUse(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	product := newTestProduct("10.00")

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().CountOrderReferences(ctx, product.ID).Return(int64(3), nil)

	err := fx.service.DeleteProduct(ctx, product.ID)

	assert.ErrorIs(t, err, domainerrors.ErrProductInUse)
	fx.productRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
