package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. The check constraint backs the
// domain invariant that stock can never go negative.
type ProductModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string          `gorm:"type:varchar(255);not null"`
	SKU       string          `gorm:"type:varchar(64);unique;not null"`
	Quantity  int             `gorm:"not null;check:quantity >= 0"`
	Price     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
