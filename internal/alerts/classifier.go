package alerts

import "estoque-backend/internal/models"

// Classify mapeia a quantidade em estoque para a cor de alerta do produto.
//
// Sem faixas configuradas todo produto é verde. A ordem de avaliação é fixa:
// primeiro a faixa vermelha, depois a amarela, e verde como resto. Com faixas
// sobrepostas vale a cor mais severa; isso é política de desempate, não bug.
// Funciona para qualquer estoque inteiro, inclusive negativo.
func Classify(stock int, alert *models.StockAlert) models.AlertColor {
	if alert == nil {
		return models.AlertVerde
	}

	if stock >= alert.RedMin && stock <= alert.RedMax {
		return models.AlertVermelho
	}
	if stock >= alert.YellowMin && stock <= alert.YellowMax {
		return models.AlertAmarelo
	}
	return models.AlertVerde
}
