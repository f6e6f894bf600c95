package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"sparestock/internal/domain/entity"
	domainerrors "sparestock/internal/domain/errors"
	"sparestock/internal/domain/repository"
	mockRepo "sparestock/internal/mocks/repository"
	"sparestock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		Logger:      logger,
	})

	return productServiceFixtures{
		service:     service,
		productRepo: productRepo,
	}
}

func TestProductService_ListProducts(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	catalog := []*entity.Product{
		{ID: uuid.New(), Name: "Hydraulic pump seal", SKU: "HPS-100"},
		{ID: uuid.New(), Name: "Drive belt", SKU: "DB-220"},
	}

	fx.productRepo.EXPECT().ListNewestFirst(ctx).Return(catalog, nil)

	products, err := fx.service.ListProducts(ctx)

	require.NoError(t, err)
	assert.Equal(t, catalog, products)
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		Name:     "Bearing assembly",
		SKU:      "BA-330",
		Quantity: 12,
		Price:    decimal.RequireFromString("45.50"),
	}

	fx.productRepo.EXPECT().
		Create(ctx, &entity.Product{
			Name:     input.Name,
			SKU:      input.SKU,
			Quantity: input.Quantity,
			Price:    input.Price,
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "BA-330", product.SKU)
}

func TestProductService_CreateProduct_RejectsBadInput(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	price := decimal.NewFromInt(10)

	cases := []struct {
		name  string
		input *usecase.CreateProductInput
	}{
		{"missing name", &usecase.CreateProductInput{SKU: "X-1", Quantity: 1, Price: price}},
		{"missing sku", &usecase.CreateProductInput{Name: "Gasket", Quantity: 1, Price: price}},
		{"negative quantity", &usecase.CreateProductInput{Name: "Gasket", SKU: "X-1", Quantity: -1, Price: price}},
		{"zero price", &usecase.CreateProductInput{Name: "Gasket", SKU: "X-1", Quantity: 1, Price: decimal.Zero}},
		{"negative price", &usecase.CreateProductInput{Name: "Gasket", SKU: "X-1", Quantity: 1, Price: decimal.NewFromInt(-5)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			product, err := fx.service.CreateProduct(ctx, tc.input)

			assert.Nil(t, product)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidProduct))
		})
	}
}

func TestProductService_CreateProduct_DuplicateSKU(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		Name:     "Bearing assembly",
		SKU:      "BA-330",
		Quantity: 12,
		Price:    decimal.NewFromInt(45),
	}

	fx.productRepo.EXPECT().
		Create(ctx, &entity.Product{
			Name:     input.Name,
			SKU:      input.SKU,
			Quantity: input.Quantity,
			Price:    input.Price,
		}).
		Return(errors.Wrap(domainerrors.ErrSKUAlreadyExists, "create product"))

	product, err := fx.service.CreateProduct(ctx, input)

	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrSKUAlreadyExists))
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		Delete(ctx, productID).
		Return(repository.ErrProductNotFound)

	err := fx.service.DeleteProduct(ctx, productID)

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_DeleteProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().Delete(ctx, productID).Return(nil)

	require.NoError(t, fx.service.DeleteProduct(ctx, productID))
}
