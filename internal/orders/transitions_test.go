package orders

import (
	"testing"

	"estoque-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestStockTransitionAppliesOnce(t *testing.T) {
	// Pedido de 10 unidades passeando entre status: a entrada no estoque
	// só pode acontecer uma vez
	const qty = 10
	stock := 0
	applied := false

	apply := func(status models.OrderStatus) {
		sign, nowApplied := stockTransition(applied, status)
		stock += sign * qty
		applied = nowApplied
	}

	apply(models.OrderRecebido)
	assert.Equal(t, 10, stock)

	apply(models.OrderEmTransito)
	apply(models.OrderRecebido)
	assert.Equal(t, 10, stock, "receber de novo não pode dobrar a entrada")

	apply(models.OrderDevolvido)
	assert.Equal(t, 0, stock)

	// Devolver duas vezes também não desconta duas vezes
	apply(models.OrderDevolvido)
	assert.Equal(t, 0, stock)
}

func TestStockTransitionWithoutReceiveNeverMovesStock(t *testing.T) {
	for _, status := range []models.OrderStatus{
		models.OrderEmitido,
		models.OrderEmTransito,
		models.OrderAtrasado,
		models.OrderDevolvido,
		models.OrderCancelado,
	} {
		sign, nowApplied := stockTransition(false, status)
		assert.Zero(t, sign, "status %s não deveria mover estoque", status)
		assert.False(t, nowApplied)
	}
}

func TestStockTransitionReceivedThenCancelledKeepsStock(t *testing.T) {
	// Cancelar um pedido já recebido não desfaz a entrada; só a devolução
	sign, nowApplied := stockTransition(true, models.OrderCancelado)
	assert.Zero(t, sign)
	assert.True(t, nowApplied)

	sign, nowApplied = stockTransition(true, models.OrderDevolvido)
	assert.Equal(t, -1, sign)
	assert.False(t, nowApplied)
}
