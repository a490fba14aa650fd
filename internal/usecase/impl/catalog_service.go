package impl

import (
	"context"
	"log/slog"
	"strings"

	"dentalstore/internal/domain/entity"
	domainerrors "dentalstore/internal/domain/errors"
	"dentalstore/internal/domain/repository"
	"dentalstore/internal/domain/service"
	"dentalstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type catalogService struct {
	productRepo repository.ProductRepository
	imageStore  service.ImageStore
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	ImageStore  service.ImageStore
	Logger      *slog.Logger
}

// NewCatalogService creates a new catalog service instance.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		imageStore:  params.ImageStore,
		logger:      params.Logger,
	}
}

// ListProducts retrieves all products, newest first.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	return products, nil
}

// ListProductsByCategory retrieves products for one category.
func (srv *catalogService) ListProductsByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	cat := entity.Category(category)
	if !cat.IsValid() {
		return nil, domainerrors.ErrInvalidCategory.WithDetails(category)
	}

	products, err := srv.productRepo.FindByCategory(ctx, cat)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products by category")
	}

	return products, nil
}

// GetProduct retrieves a single product by ID.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.NewProductNotFoundError(id.String())
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product")
	}

	return product, nil
}

// CreateProduct adds a new product to the catalog.
func (srv *catalogService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	product, err := productFromInput(input.Name, input.Description, input.Price, input.Image, input.Category)
	if err != nil {
		return nil, err
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		if appErr := domainerrors.AsAppError(err); appErr != nil {
			return nil, appErr
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	return product, nil
}

// UpdateProduct modifies an existing product.
func (srv *catalogService) UpdateProduct(ctx context.Context, input usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := productFromInput(input.Name, input.Description, input.Price, input.Image, input.Category)
	if err != nil {
		return nil, err
	}
	product.ID = input.ID

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.NewProductNotFoundError(input.ID.String())
		}
		if appErr := domainerrors.AsAppError(err); appErr != nil {
			return nil, appErr
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	return srv.GetProduct(ctx, input.ID)
}

// DeleteProduct removes a product. Products referenced by order items stay,
// so past orders keep their line details.
func (srv *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.NewProductNotFoundError(id.String())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to find product")
	}

	refs, err := srv.productRepo.CountOrderReferences(ctx, id)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to count order references")
	}
	if refs > 0 {
		return domainerrors.ErrProductInUse
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if appErr := domainerrors.AsAppError(err); appErr != nil {
			return appErr
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	// Best effort: a missing file never fails the catalog deletion.
	if product.Image != "" {
		if err := srv.imageStore.Remove(ctx, product.Image); err != nil {
			srv.logger.Warn("failed to remove product image",
				slog.String("product_id", id.String()),
				slog.String("image", product.Image),
				slog.Any("error", err))
		}
	}

	return nil
}

// productFromInput validates shared create/update fields and builds the entity.
func productFromInput(name, description string, price decimal.Decimal, image, category string) (*entity.Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	cat := entity.Category(category)
	if !cat.IsValid() {
		return nil, domainerrors.ErrInvalidCategory.WithDetails(category)
	}

	if price.IsNegative() {
		return nil, domainerrors.ErrInvalidPrice
	}

	return &entity.Product{
		Name:        strings.TrimSpace(name),
		Description: description,
		Price:       price,
		Image:       image,
		Category:    cat,
	}, nil
}
