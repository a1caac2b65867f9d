package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Permissions: mapa de funcionalidades liberadas por usuário (coluna jsonb)
type Permissions map[string]bool

// Chaves de permissão conhecidas pelo sistema
const (
	PermVisualizarEstoque  = "visualizar_estoque"
	PermVisualizarAlertas  = "visualizar_alertas"
	PermVisualizarCadastro = "visualizar_cadastro"
	PermVisualizarTerminal = "visualizar_terminal"
	PermVisualizarPedidos  = "visualizar_pedidos"
	PermEditarValores      = "editar_valores"
	PermEditarAlertas      = "editar_alertas"
	PermEditarEstoque      = "editar_estoque"
	PermEditarPedidos      = "editar_pedidos"
	PermGerenciarAdmin     = "gerenciar_admin"
)

// FullPermissions retorna todas as permissões habilitadas (admin master)
func FullPermissions() Permissions {
	return Permissions{
		PermVisualizarEstoque:  true,
		PermVisualizarAlertas:  true,
		PermVisualizarCadastro: true,
		PermVisualizarTerminal: true,
		PermVisualizarPedidos:  true,
		PermEditarValores:      true,
		PermEditarAlertas:      true,
		PermEditarEstoque:      true,
		PermEditarPedidos:      true,
		PermGerenciarAdmin:     true,
	}
}

func (p Permissions) Value() (driver.Value, error) {
	if p == nil {
		return "{}", nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (p *Permissions) Scan(src any) error {
	if src == nil {
		*p = Permissions{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("tipo inesperado para permissões: %T", src)
	}
	if len(data) == 0 {
		*p = Permissions{}
		return nil
	}
	return json.Unmarshal(data, p)
}

type User struct {
	ID                string      `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string      `gorm:"column:nome;size:100;not null" json:"nome"`
	Email             string      `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash      string      `gorm:"column:senha_hash;size:255;not null" json:"-"`
	AccessType        AccessType  `gorm:"column:tipo_acesso;size:20;not null;default:comum" json:"tipo_acesso"`
	Permissions       Permissions `gorm:"column:permissoes;type:jsonb" json:"permissoes"`
	TemporaryPassword bool        `gorm:"column:senha_temporaria;default:false" json:"senha_temporaria"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

func (User) TableName() string { return "profiles" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// IsAdmin: admins ignoram a checagem de permissões individuais
func (u *User) IsAdmin() bool {
	return u.AccessType == AccessAdmin
}

func (u *User) HasPermission(key string) bool {
	if u.IsAdmin() {
		return true
	}
	return u.Permissions[key]
}
