package usecase

import (
	"context"

	"sparestock/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput defines the data required to add a new spare part.
type CreateProductInput struct {
	Name     string          `json:"name" validate:"required"`
	SKU      string          `json:"sku" validate:"required"`
	Quantity int             `json:"quantity" validate:"gte=0"`
	Price    decimal.Decimal `json:"price"`
}

// ProductUsecase defines the interface for inventory CRUD operations.
type ProductUsecase interface {
	// ListProducts returns every product, newest first.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// CreateProduct adds a new product to the inventory.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// DeleteProduct removes a product from the inventory.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
