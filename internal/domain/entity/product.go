// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a spare part held in inventory. Quantity is mutated only through
// the order engine's conditional decrement/restore or by privileged CRUD, and
// is never allowed to go negative.
type Product struct {
	ID        uuid.UUID       `json:"id"`       // The unique identifier for the product.
	Name      string          `json:"name"`     // Human-readable part name, e.g. "Hydraulic Piston Seal".
	SKU       string          `json:"sku"`      // Stock Keeping Unit. Unique across all products.
	Quantity  int             `json:"quantity"` // Units currently on hand. Invariant: Quantity >= 0.
	Price     decimal.Decimal `json:"price"`    // List price per unit. Invariant: Price > 0.
	CreatedAt time.Time       `json:"createdAt"`
}
