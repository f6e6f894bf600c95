package impl

import (
	"context"
	"log/slog"

	"sparestock/internal/domain/entity"
	domainerrors "sparestock/internal/domain/errors"
	"sparestock/internal/domain/repository"
	"sparestock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// ListProducts returns the full catalog, newest parts first.
func (srv *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListNewestFirst(ctx)
	if err != nil {
		srv.logger.Error("Failed to list products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// CreateProduct adds a new part to the catalog.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if input.Name == "" || input.SKU == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidProduct, "missing name or sku")
	}
	if input.Quantity < 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidProduct, "quantity must not be negative")
	}
	if !input.Price.IsPositive() {
		return nil, errors.Wrap(domainerrors.ErrInvalidProduct, "price must be positive")
	}

	product := &entity.Product{
		Name:     input.Name,
		SKU:      input.SKU,
		Quantity: input.Quantity,
		Price:    input.Price,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.logger.Warn("Failed to create product", slog.String("sku", input.SKU), slog.Any("error", err))

		return nil, err
	}

	srv.logger.Info("Product created", slog.Any("productID", product.ID), slog.String("sku", product.SKU))

	return product, nil
}

// DeleteProduct removes a part from the catalog. Existing order items keep
// their snapshot of the part, so history survives the delete.
func (srv *productService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		srv.logger.Warn("Failed to delete product", slog.Any("productID", productID), slog.Any("error", err))

		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "delete failed")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.logger.Info("Product deleted", slog.Any("productID", productID))

	return nil
}
