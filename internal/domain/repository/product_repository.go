package repository

import (
	"context"
	"errors"

	"sparestock/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ErrInsufficientStock is returned by DecrementStock when the conditional
// update matched no row: the product is missing or holds fewer units than
// requested. The two cases are indistinguishable on purpose; both mean the
// purchase cannot proceed.
var ErrInsufficientStock = errors.New("insufficient stock")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListNewestFirst retrieves all products ordered by creation time, newest first.
	ListNewestFirst(ctx context.Context) ([]*entity.Product, error)

	// Create persists a new product entity to the storage.
	Create(ctx context.Context, product *entity.Product) error

	// Delete removes a product. Returns ErrProductNotFound when no row matched.
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock atomically subtracts quantity units from the product's
	// stock, but only if at least that many units are on hand
	// ("quantity = quantity - n WHERE id = ? AND quantity >= n").
	// Returns ErrInsufficientStock when the guard fails, so a check-then-act
	// race can never drive stock negative.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error

	// IncrementStock adds quantity units back to the product's stock.
	// A missing product is not an error: restoration is best-effort and
	// deleted products are skipped silently.
	IncrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}
