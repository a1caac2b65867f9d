package alerts

import (
	"encoding/json"
	"testing"

	"estoque-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(n int) *int { return &n }

// Gravar as seis faixas e ler de volta tem que devolver exatamente os
// mesmos inteiros: mesmo mapeamento request -> registro e mesmas chaves
// JSON na leitura.
func TestThresholdsRoundTrip(t *testing.T) {
	body := UpsertThresholdsRequest{
		GreenMin:  intp(501),
		GreenMax:  intp(100000),
		YellowMin: intp(201),
		YellowMax: intp(500),
		RedMin:    intp(0),
		RedMax:    intp(200),
	}

	saved := thresholdsFromRequest("prod-1", body)
	assert.Equal(t, "prod-1", saved.ProductID)
	assert.Equal(t, 501, saved.GreenMin)
	assert.Equal(t, 100000, saved.GreenMax)
	assert.Equal(t, 201, saved.YellowMin)
	assert.Equal(t, 500, saved.YellowMax)
	assert.Equal(t, 0, saved.RedMin)
	assert.Equal(t, 200, saved.RedMax)

	// A resposta do GET serializa o registro; as chaves têm que casar com
	// as do corpo de escrita
	data, err := json.Marshal(saved)
	require.NoError(t, err)

	var read UpsertThresholdsRequest
	require.NoError(t, json.Unmarshal(data, &read))
	assert.Equal(t, body, read)
}

func TestThresholdsRoundTripNegativeValues(t *testing.T) {
	body := UpsertThresholdsRequest{
		GreenMin:  intp(101),
		GreenMax:  intp(1000),
		YellowMin: intp(1),
		YellowMax: intp(100),
		RedMin:    intp(-1000),
		RedMax:    intp(0),
	}

	saved := thresholdsFromRequest("prod-2", body)
	assert.Equal(t, -1000, saved.RedMin)

	// O classificador enxerga os valores gravados sem nenhuma normalização
	assert.Equal(t, models.AlertVermelho, Classify(-5, &saved))
	assert.Equal(t, models.AlertAmarelo, Classify(50, &saved))
	assert.Equal(t, models.AlertVerde, Classify(500, &saved))
}
