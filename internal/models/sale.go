package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Sale struct {
	ID             string          `gorm:"type:uuid;primaryKey" json:"id"`
	Total          decimal.Decimal `gorm:"column:valor_total;type:numeric(12,2);not null" json:"valor_total"`
	AmountTendered decimal.Decimal `gorm:"column:valor_recebido;type:numeric(12,2);not null" json:"valor_recebido"`
	Change         decimal.Decimal `gorm:"column:troco;type:numeric(12,2);not null" json:"troco"`
	UserID         string          `gorm:"column:usuario_id;type:uuid;index" json:"usuario_id"`
	CreatedAt      time.Time       `json:"created_at"`

	Items []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"itens"`
}

func (Sale) TableName() string { return "vendas" }

func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// SaleItem: item vendido com código/nome/cor congelados no momento da venda
type SaleItem struct {
	ID           string          `gorm:"type:uuid;primaryKey" json:"id"`
	SaleID       string          `gorm:"column:venda_id;type:uuid;index;not null" json:"venda_id"`
	ProductID    string          `gorm:"column:produto_id;type:uuid;index" json:"produto_id"`
	ProductCode  string          `gorm:"column:codigo_produto;size:20;not null" json:"codigo_produto"`
	ProductName  string          `gorm:"column:nome_produto;size:150;not null" json:"nome_produto"`
	ProductColor string          `gorm:"column:cor_produto;size:50" json:"cor_produto"`
	Quantity     int             `gorm:"column:quantidade;not null" json:"quantidade"`
	UnitPrice    decimal.Decimal `gorm:"column:valor_unitario;type:numeric(12,2);not null" json:"valor_unitario"`
	Subtotal     decimal.Decimal `gorm:"column:subtotal;type:numeric(12,2);not null" json:"subtotal"`
	CreatedAt    time.Time       `json:"created_at"`
}

func (SaleItem) TableName() string { return "itens_venda" }

func (i *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
