package usecase

import (
	"context"

	"sparestock/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlaceOrderInput defines the data required to place an order. Quantity has
// already been through the delivery layer's permissive coercion: anything
// absent, malformed or non-positive arrives here as 1.
type PlaceOrderInput struct {
	ProductID uuid.UUID
	Address   string
	Quantity  int
}

// Stats aggregates the order ledger by status. Cancelled orders keep their
// original TotalAmount and are reported as lost revenue rather than zeroed,
// so TotalEarnings + LostRevenue always equals the sum over all orders.
type Stats struct {
	TotalEarnings  decimal.Decimal `json:"totalEarnings"`
	OrderCount     int             `json:"orderCount"`
	CancelledCount int             `json:"cancelledCount"`
	LostRevenue    decimal.Decimal `json:"lostRevenue"`
}

// OrderUsecase is the order/inventory engine: the only component that
// mutates stock and the order ledger together.
type OrderUsecase interface {
	// PlaceOrder validates stock, prices the purchase (bulk discount at 5+
	// units) and atomically decrements inventory while appending the order.
	PlaceOrder(ctx context.Context, userID uuid.UUID, input *PlaceOrderInput) (*entity.Order, error)

	// CancelOrder restores each line item's stock and marks the order
	// Cancelled. Cancelling twice fails; it never double-restores.
	CancelOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// MyOrders returns the caller's own orders, newest first.
	MyOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// AllOrders returns the full order ledger, newest first.
	AllOrders(ctx context.Context) ([]*entity.Order, error)

	// ComputeStats aggregates the whole ledger by status.
	ComputeStats(ctx context.Context) (*Stats, error)
}
