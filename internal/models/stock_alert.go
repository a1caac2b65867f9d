package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StockAlert: faixas de alerta de estoque configuradas por produto (1:1).
// As faixas deveriam ser disjuntas e ordenadas (vermelho < amarelo < verde),
// mas a camada de dados aceita qualquer valor: a ordem de avaliação do
// classificador define o comportamento em caso de sobreposição.
type StockAlert struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID string    `gorm:"column:produto_id;type:uuid;uniqueIndex;not null" json:"produto_id"`
	GreenMin  int       `gorm:"column:limite_verde_min;not null" json:"limite_verde_min"`
	GreenMax  int       `gorm:"column:limite_verde_max;not null" json:"limite_verde_max"`
	YellowMin int       `gorm:"column:limite_amarelo_min;not null" json:"limite_amarelo_min"`
	YellowMax int       `gorm:"column:limite_amarelo_max;not null" json:"limite_amarelo_max"`
	RedMin    int       `gorm:"column:limite_vermelho_min;not null" json:"limite_vermelho_min"`
	RedMax    int       `gorm:"column:limite_vermelho_max;not null" json:"limite_vermelho_max"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StockAlert) TableName() string { return "alertas_estoque" }

func (a *StockAlert) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
