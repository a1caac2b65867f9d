package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product usa os nomes de coluna do esquema original para permitir apontar
// este serviço para um banco já existente sem migração de dados.
type Product struct {
	ID           string              `gorm:"type:uuid;primaryKey" json:"id"`
	Code         string              `gorm:"column:codigo;size:20;uniqueIndex;not null" json:"codigo"`
	Name         string              `gorm:"column:nome;size:150;not null" json:"nome"`
	Barcode      string              `gorm:"column:codigo_barras;size:50;index" json:"codigo_barras"`
	Color        string              `gorm:"column:cor;size:50" json:"cor"`
	CurrentStock int                 `gorm:"column:estoque_atual;not null;default:0" json:"estoque_atual"` // pode ficar negativo em venda acima do estoque
	UnitCost     decimal.Decimal     `gorm:"column:valor_unitario;type:numeric(12,2);not null" json:"valor_unitario"`
	SalePrice    decimal.Decimal     `gorm:"column:valor_venda;type:numeric(12,2);not null" json:"valor_venda"`
	Markup       decimal.NullDecimal `gorm:"column:markup;type:numeric(8,2)" json:"markup"`
	Supplier     string              `gorm:"column:fornecedor;size:100" json:"fornecedor"`
	PhotoURL     string              `gorm:"column:foto_url;size:255" json:"foto_url"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

func (Product) TableName() string { return "produtos" }

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
