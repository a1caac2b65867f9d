package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

type AuditLog struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID   string `gorm:"type:uuid;index" json:"usuario_id"`
	UserName string `gorm:"size:100" json:"nome_usuario"` // denormalizado

	// Entidade afetada (ex: "produto", "alerta_estoque", "pedido", "venda")
	EntityType string `gorm:"size:50;index" json:"tipo_entidade"`
	EntityID   string `gorm:"size:64;index" json:"entidade_id"`

	Action      AuditAction `gorm:"size:20" json:"acao"`
	Description string      `gorm:"size:255" json:"descricao"`

	// Estado anterior e posterior (JSON)
	BeforeData string `gorm:"type:jsonb" json:"dados_antes"`
	AfterData  string `gorm:"type:jsonb" json:"dados_depois"`
}

func (l *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
