package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order: pedido de compra feito a um fornecedor.
// AlertColor persiste apenas um retrato do último cálculo; a fonte de verdade
// é sempre a função de envelhecimento (data de criação + prazo + agora).
type Order struct {
	ID           string      `gorm:"type:uuid;primaryKey" json:"id"`
	Number       string      `gorm:"column:numero_pedido;size:30;uniqueIndex;not null" json:"numero_pedido"`
	CreatedDate  time.Time   `gorm:"column:data_criacao;not null" json:"data_criacao"`
	PromisedDate time.Time   `gorm:"column:data_prevista_entrega;not null" json:"data_prevista_entrega"`
	LeadTimeDays int         `gorm:"column:prazo_entrega_dias;not null" json:"prazo_entrega_dias"`
	Status       OrderStatus `gorm:"column:status;size:20;not null;default:emitido" json:"status"`
	// Marca se os itens deste pedido já deram entrada no estoque. Evita
	// reaplicar a entrada quando o pedido volta para "recebido" depois de
	// uma correção de status.
	StockApplied bool       `gorm:"column:estoque_aplicado;not null;default:false" json:"estoque_aplicado"`
	AlertColor   AlertColor `gorm:"column:cor_alerta;size:10;default:sem_cor" json:"cor_alerta"`
	UserID       string      `gorm:"column:usuario_id;type:uuid;index" json:"usuario_id"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"itens"`
}

func (Order) TableName() string { return "pedidos" }

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderItem: item do pedido com dados do produto congelados no momento da
// compra (o cadastro pode mudar depois sem reescrever o histórico)
type OrderItem struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID      string    `gorm:"column:pedido_id;type:uuid;index;not null" json:"pedido_id"`
	ProductID    string    `gorm:"column:produto_id;type:uuid;index" json:"produto_id"`
	ProductCode  string    `gorm:"column:codigo_produto;size:20;not null" json:"codigo_produto"`
	ProductName  string    `gorm:"column:nome_produto;size:150;not null" json:"nome_produto"`
	ProductColor string    `gorm:"column:cor_produto;size:50" json:"cor_produto"`
	Quantity     int       `gorm:"column:quantidade_pedida;not null" json:"quantidade_pedida"`
	CreatedAt    time.Time `json:"created_at"`
}

func (OrderItem) TableName() string { return "itens_pedido" }

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
