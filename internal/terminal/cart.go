package terminal

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyDraft         = errors.New("venda sem itens")
	ErrInvalidLine        = errors.New("item de venda inválido")
	ErrInsufficientTender = errors.New("valor recebido insuficiente")
)

// DraftLine: um item do carrinho, já com os dados do produto congelados
type DraftLine struct {
	ProductID    string
	ProductCode  string
	ProductName  string
	ProductColor string
	Quantity     int
	UnitPrice    decimal.Decimal
}

func (l DraftLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))).Round(2)
}

// SaleDraft: o carrinho em andamento de uma venda no terminal. É um agregado
// explícito, pertencente à requisição que finaliza a venda. Nada de estado
// global compartilhado entre sessões.
type SaleDraft struct {
	lines []DraftLine
}

func NewSaleDraft() *SaleDraft {
	return &SaleDraft{}
}

func (d *SaleDraft) AddLine(line DraftLine) error {
	if line.Quantity <= 0 || line.UnitPrice.Sign() < 0 {
		return ErrInvalidLine
	}
	d.lines = append(d.lines, line)
	return nil
}

func (d *SaleDraft) UpdateQuantity(index, quantity int) error {
	if index < 0 || index >= len(d.lines) || quantity <= 0 {
		return ErrInvalidLine
	}
	d.lines[index].Quantity = quantity
	return nil
}

func (d *SaleDraft) RemoveLine(index int) error {
	if index < 0 || index >= len(d.lines) {
		return ErrInvalidLine
	}
	d.lines = append(d.lines[:index], d.lines[index+1:]...)
	return nil
}

func (d *SaleDraft) Lines() []DraftLine {
	return d.lines
}

func (d *SaleDraft) Empty() bool {
	return len(d.lines) == 0
}

func (d *SaleDraft) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range d.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// ChangeFor valida o valor recebido contra o total e devolve o troco.
// A validação acontece antes de qualquer persistência.
func (d *SaleDraft) ChangeFor(tendered decimal.Decimal) (decimal.Decimal, error) {
	if d.Empty() {
		return decimal.Zero, ErrEmptyDraft
	}
	total := d.Total()
	if tendered.LessThan(total) {
		return decimal.Zero, ErrInsufficientTender
	}
	return tendered.Sub(total), nil
}
