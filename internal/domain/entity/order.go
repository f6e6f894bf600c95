// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusProcessing is the initial state of every order.
	OrderStatusProcessing OrderStatus = "Processing"
	// OrderStatusDelivered is terminal and has no inventory effect.
	OrderStatusDelivered OrderStatus = "Delivered"
	// OrderStatusCancelled is terminal; reaching it restores inventory.
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// OrderItem is a single line of an order. Name and UnitPrice are snapshots
// taken at purchase time, so the order stays intact even if the product is
// later edited or deleted.
type OrderItem struct {
	ProductID uuid.UUID       `json:"productId"` // Weak reference to the purchased product.
	Name      string          `json:"name"`      // Product name at purchase time.
	UnitPrice decimal.Decimal `json:"unitPrice"` // Per-unit price actually charged (bulk discount applied).
	Quantity  int             `json:"quantity"`  // Units purchased on this line.
}

// Order records a purchase made by a user. TotalAmount equals the sum of
// UnitPrice x Quantity over all items at creation time and is never
// recomputed afterwards, cancellation included.
type Order struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"userId"` // The buyer who placed the order.
	Items       []OrderItem     `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Address     string          `json:"address"` // Delivery address. Required.
	Status      OrderStatus     `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// BulkQuantity is the line quantity at which the bulk discount kicks in.
const BulkQuantity = 5

// bulkDiscountMultiplier is the 30% bulk-price reduction, expressed as a
// multiplier on the list price.
var bulkDiscountMultiplier = decimal.NewFromFloat(0.7)

// QuoteUnitPrice returns the per-unit price for a purchase of the given
// quantity: the list price, or 70% of it once the quantity reaches the bulk
// threshold.
func QuoteUnitPrice(listPrice decimal.Decimal, quantity int) decimal.Decimal {
	if quantity >= BulkQuantity {
		return listPrice.Mul(bulkDiscountMultiplier)
	}

	return listPrice
}
