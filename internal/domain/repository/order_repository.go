package repository

import (
	"context"
	"errors"

	"sparestock/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// ErrOrderStatusUnchanged is returned when a status transition matched no row
// because the order already carries the target status.
var ErrOrderStatusUnchanged = errors.New("order status unchanged")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// FindByID retrieves a single order, including its line items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByUserID retrieves all orders placed by a user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindAll retrieves every order in the ledger, newest first.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// Create persists a new order with its line items.
	Create(ctx context.Context, order *entity.Order) error

	// UpdateStatus transitions an order to the given status. The update is
	// conditional on the order not already holding that status; when no row
	// matches it returns ErrOrderStatusUnchanged, so concurrent transitions
	// settle with exactly one winner.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
