package terminal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSaleDraftTotalAndChange(t *testing.T) {
	draft := NewSaleDraft()
	require.NoError(t, draft.AddLine(DraftLine{ProductID: "p1", Quantity: 2, UnitPrice: price("10.00")}))
	require.NoError(t, draft.AddLine(DraftLine{ProductID: "p2", Quantity: 1, UnitPrice: price("5.00")}))

	assert.True(t, draft.Total().Equal(price("25.00")))

	change, err := draft.ChangeFor(price("30.00"))
	require.NoError(t, err)
	assert.True(t, change.Equal(price("5.00")))

	// Pagamento exato: troco zero
	change, err = draft.ChangeFor(price("25.00"))
	require.NoError(t, err)
	assert.True(t, change.IsZero())
}

func TestSaleDraftInsufficientTender(t *testing.T) {
	draft := NewSaleDraft()
	require.NoError(t, draft.AddLine(DraftLine{ProductID: "p1", Quantity: 2, UnitPrice: price("10.00")}))

	_, err := draft.ChangeFor(price("19.99"))
	assert.ErrorIs(t, err, ErrInsufficientTender)
}

func TestSaleDraftEmpty(t *testing.T) {
	draft := NewSaleDraft()
	assert.True(t, draft.Empty())

	_, err := draft.ChangeFor(price("10.00"))
	assert.ErrorIs(t, err, ErrEmptyDraft)
}

func TestSaleDraftLineEdits(t *testing.T) {
	draft := NewSaleDraft()
	require.NoError(t, draft.AddLine(DraftLine{ProductID: "p1", Quantity: 1, UnitPrice: price("3.50")}))
	require.NoError(t, draft.AddLine(DraftLine{ProductID: "p2", Quantity: 4, UnitPrice: price("2.00")}))

	require.NoError(t, draft.UpdateQuantity(0, 3))
	assert.True(t, draft.Total().Equal(price("18.50")))

	require.NoError(t, draft.RemoveLine(1))
	assert.Len(t, draft.Lines(), 1)
	assert.True(t, draft.Total().Equal(price("10.50")))

	assert.ErrorIs(t, draft.UpdateQuantity(5, 1), ErrInvalidLine)
	assert.ErrorIs(t, draft.UpdateQuantity(0, 0), ErrInvalidLine)
	assert.ErrorIs(t, draft.RemoveLine(-1), ErrInvalidLine)
}

func TestSaleDraftRejectsInvalidLines(t *testing.T) {
	draft := NewSaleDraft()
	assert.ErrorIs(t, draft.AddLine(DraftLine{Quantity: 0, UnitPrice: price("1.00")}), ErrInvalidLine)
	assert.ErrorIs(t, draft.AddLine(DraftLine{Quantity: 1, UnitPrice: price("-1.00")}), ErrInvalidLine)
}
