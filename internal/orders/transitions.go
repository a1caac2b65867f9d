package orders

import "estoque-backend/internal/models"

// stockTransition decide o movimento de estoque de uma troca de status a
// partir da flag de entrada já aplicada. Cada pedido dá entrada no estoque
// no máximo uma vez e só desfaz uma entrada que aconteceu: receber aplica
// (+1) quando ainda não aplicado, devolver reverte (-1) quando aplicado,
// qualquer outra troca não move estoque.
func stockTransition(applied bool, newStatus models.OrderStatus) (sign int, nowApplied bool) {
	switch {
	case !applied && newStatus == models.OrderRecebido:
		return +1, true
	case applied && newStatus == models.OrderDevolvido:
		return -1, false
	}
	return 0, applied
}
