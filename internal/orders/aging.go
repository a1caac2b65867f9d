package orders

import (
	"time"

	"estoque-backend/internal/models"
)

// AgingBands: corte configurável do envelhecimento de pedidos. Quantos dias
// antes da data prevista o pedido deixa de ser verde. O vermelho é sempre
// pedido com a data prevista vencida.
type AgingBands struct {
	YellowDays int
}

// ClassifyAging calcula a cor do pedido a partir da data de criação, do prazo
// prometido e do instante atual. A função é pura e monotônica no tempo: com
// criação e prazo fixos, avançar o relógio só pode mover a cor de verde para
// amarelo e de amarelo para vermelho, nunca o contrário.
func ClassifyAging(createdAt time.Time, leadTimeDays int, now time.Time, bands AgingBands) models.AlertColor {
	// Sem prazo não há o que envelhecer
	if createdAt.IsZero() || leadTimeDays <= 0 {
		return models.AlertSemCor
	}

	promised := createdAt.AddDate(0, 0, leadTimeDays)

	if now.After(promised) {
		return models.AlertVermelho
	}

	remainingDays := int(promised.Sub(now).Hours() / 24)
	if remainingDays > bands.YellowDays {
		return models.AlertVerde
	}
	return models.AlertAmarelo
}
