package alerts

import (
	"testing"

	"estoque-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestClassifyWithoutThresholds(t *testing.T) {
	assert.Equal(t, models.AlertVerde, Classify(0, nil))
	assert.Equal(t, models.AlertVerde, Classify(1000, nil))
	assert.Equal(t, models.AlertVerde, Classify(-5, nil))
}

func TestClassifyRanges(t *testing.T) {
	alert := &models.StockAlert{
		RedMin: 0, RedMax: 200,
		YellowMin: 201, YellowMax: 500,
		GreenMin: 501, GreenMax: 100000,
	}

	assert.Equal(t, models.AlertVermelho, Classify(150, alert))
	assert.Equal(t, models.AlertAmarelo, Classify(300, alert))
	assert.Equal(t, models.AlertVerde, Classify(600, alert))

	// Bordas das faixas
	assert.Equal(t, models.AlertVermelho, Classify(0, alert))
	assert.Equal(t, models.AlertVermelho, Classify(200, alert))
	assert.Equal(t, models.AlertAmarelo, Classify(201, alert))
	assert.Equal(t, models.AlertAmarelo, Classify(500, alert))
	assert.Equal(t, models.AlertVerde, Classify(501, alert))
}

func TestClassifyOverlapPrefersRed(t *testing.T) {
	// Faixas sobrepostas: a vermelha é avaliada primeiro
	alert := &models.StockAlert{
		RedMin: 0, RedMax: 100,
		YellowMin: 50, YellowMax: 300,
	}
	assert.Equal(t, models.AlertVermelho, Classify(50, alert))
	assert.Equal(t, models.AlertVermelho, Classify(100, alert))
	assert.Equal(t, models.AlertAmarelo, Classify(101, alert))
}

func TestClassifyNegativeStock(t *testing.T) {
	alert := &models.StockAlert{
		RedMin: -1000, RedMax: 100,
		YellowMin: 101, YellowMax: 300,
	}
	assert.Equal(t, models.AlertVermelho, Classify(-5, alert))
}
