package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestQuoteUnitPrice_BelowThreshold(t *testing.T) {
	listPrice := decimal.NewFromInt(100)

	for _, quantity := range []int{1, 2, 4} {
		got := QuoteUnitPrice(listPrice, quantity)
		assert.True(t, listPrice.Equal(got), "quantity %d should charge list price, got %s", quantity, got)
	}
}

func TestQuoteUnitPrice_AtAndAboveThreshold(t *testing.T) {
	listPrice := decimal.NewFromInt(100)
	discounted := decimal.NewFromInt(70)

	for _, quantity := range []int{BulkQuantity, 6, 50} {
		got := QuoteUnitPrice(listPrice, quantity)
		assert.True(t, discounted.Equal(got), "quantity %d should charge discounted price, got %s", quantity, got)
	}
}

func TestQuoteUnitPrice_ExactDecimalScaling(t *testing.T) {
	// 19.99 * 0.7 must come out exact, not as a float approximation.
	listPrice := decimal.RequireFromString("19.99")

	got := QuoteUnitPrice(listPrice, BulkQuantity)

	assert.True(t, decimal.RequireFromString("13.993").Equal(got), "got %s", got)
}
