package orders

import (
	"testing"
	"time"

	"estoque-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

var testBands = AgingBands{YellowDays: 7}

func TestClassifyAgingWithoutLeadTime(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	created := now.AddDate(0, 0, -30)

	assert.Equal(t, models.AlertSemCor, ClassifyAging(created, 0, now, testBands))
	assert.Equal(t, models.AlertSemCor, ClassifyAging(created, -3, now, testBands))
	assert.Equal(t, models.AlertSemCor, ClassifyAging(time.Time{}, 10, now, testBands))
}

func TestClassifyAgingBands(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	leadTime := 20 // prazo prometido: 21/03

	// Longe do prazo: verde
	green := created.AddDate(0, 0, 2)
	assert.Equal(t, models.AlertVerde, ClassifyAging(created, leadTime, green, testBands))

	// A 5 dias do prazo: amarelo
	yellow := created.AddDate(0, 0, 15)
	assert.Equal(t, models.AlertAmarelo, ClassifyAging(created, leadTime, yellow, testBands))

	// Prazo vencido: vermelho
	late := created.AddDate(0, 0, 25)
	assert.Equal(t, models.AlertVermelho, ClassifyAging(created, leadTime, late, testBands))
}

func TestClassifyAgingMonotonic(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	leadTime := 15

	severity := map[models.AlertColor]int{
		models.AlertVerde:    0,
		models.AlertAmarelo:  1,
		models.AlertVermelho: 2,
	}

	// Avançar o relógio nunca pode reduzir a severidade
	prev := -1
	for hours := 0; hours <= 30*24; hours += 6 {
		now := created.Add(time.Duration(hours) * time.Hour)
		color := ClassifyAging(created, leadTime, now, testBands)
		cur, ok := severity[color]
		assert.True(t, ok, "cor inesperada: %s", color)
		assert.GreaterOrEqual(t, cur, prev, "severidade regrediu em t+%dh", hours)
		prev = cur
	}
}

func TestClassifyAgingCustomYellowWindow(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	leadTime := 20
	now := created.AddDate(0, 0, 10) // faltam 10 dias

	assert.Equal(t, models.AlertVerde, ClassifyAging(created, leadTime, now, AgingBands{YellowDays: 7}))
	assert.Equal(t, models.AlertAmarelo, ClassifyAging(created, leadTime, now, AgingBands{YellowDays: 14}))
}
