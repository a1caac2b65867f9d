package catalog

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// ComputeMarkup deriva o markup percentual a partir do custo e do preço de
// venda: ((venda - custo) / custo) * 100, arredondado em 2 casas.
// Retorna ok=false quando algum dos valores não é positivo.
func ComputeMarkup(unitCost, salePrice decimal.Decimal) (decimal.Decimal, bool) {
	if unitCost.Sign() <= 0 || salePrice.Sign() <= 0 {
		return decimal.Zero, false
	}
	markup := salePrice.Sub(unitCost).Div(unitCost).Mul(oneHundred)
	return markup.Round(2), true
}

// ComputeSalePrice deriva o preço de venda a partir do custo e do markup:
// custo * (1 + markup/100), arredondado em 2 casas.
func ComputeSalePrice(unitCost, markup decimal.Decimal) (decimal.Decimal, bool) {
	if unitCost.Sign() <= 0 {
		return decimal.Zero, false
	}
	factor := decimal.NewFromInt(1).Add(markup.Div(oneHundred))
	return unitCost.Mul(factor).Round(2), true
}
