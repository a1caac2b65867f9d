package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTouchesPricing(t *testing.T) {
	name := "Caneca"
	qty := 5
	cost := decimal.RequireFromString("10.00")
	markup := decimal.RequireFromString("50")

	assert.False(t, touchesPricing(UpdateProductRequest{}))
	assert.False(t, touchesPricing(UpdateProductRequest{Name: &name, Quantity: &qty}))

	assert.True(t, touchesPricing(UpdateProductRequest{UnitCost: &cost}))
	assert.True(t, touchesPricing(UpdateProductRequest{SalePrice: &cost}))
	assert.True(t, touchesPricing(UpdateProductRequest{Markup: &markup}))
}
