package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeMarkup(t *testing.T) {
	markup, ok := ComputeMarkup(dec("10.00"), dec("15.00"))
	assert.True(t, ok)
	assert.True(t, markup.Equal(dec("50")))

	markup, ok = ComputeMarkup(dec("3.00"), dec("4.00"))
	assert.True(t, ok)
	assert.True(t, markup.Equal(dec("33.33")))

	// Venda abaixo do custo: markup negativo, ainda válido
	markup, ok = ComputeMarkup(dec("10.00"), dec("8.00"))
	assert.True(t, ok)
	assert.True(t, markup.Equal(dec("-20")))
}

func TestComputeMarkupInvalidInputs(t *testing.T) {
	_, ok := ComputeMarkup(dec("0"), dec("15.00"))
	assert.False(t, ok)

	_, ok = ComputeMarkup(dec("10.00"), dec("0"))
	assert.False(t, ok)

	_, ok = ComputeMarkup(dec("-1.00"), dec("15.00"))
	assert.False(t, ok)
}

func TestComputeSalePrice(t *testing.T) {
	sale, ok := ComputeSalePrice(dec("10.00"), dec("50"))
	assert.True(t, ok)
	assert.True(t, sale.Equal(dec("15.00")))

	sale, ok = ComputeSalePrice(dec("7.90"), dec("33.33"))
	assert.True(t, ok)
	assert.True(t, sale.Equal(dec("10.53")))

	_, ok = ComputeSalePrice(dec("0"), dec("50"))
	assert.False(t, ok)
}

func TestMarkupAndSalePriceRoundTrip(t *testing.T) {
	cost := dec("12.50")
	markup, ok := ComputeMarkup(cost, dec("20.00"))
	assert.True(t, ok)

	sale, ok := ComputeSalePrice(cost, markup)
	assert.True(t, ok)
	assert.True(t, sale.Equal(dec("20.00")))
}
