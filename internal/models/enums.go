package models

// AlertColor: cor de severidade usada tanto para estoque quanto para pedidos
type AlertColor string

const (
	AlertVerde    AlertColor = "verde"
	AlertAmarelo  AlertColor = "amarelo"
	AlertVermelho AlertColor = "vermelho"
	AlertSemCor   AlertColor = "sem_cor"
)

type OrderStatus string

const (
	OrderEmitido    OrderStatus = "emitido"
	OrderEmTransito OrderStatus = "em_transito"
	OrderAtrasado   OrderStatus = "atrasado"
	OrderRecebido   OrderStatus = "recebido"
	OrderDevolvido  OrderStatus = "devolvido"
	OrderCancelado  OrderStatus = "cancelado"
)

// ValidOrderStatus verifica se o status informado pertence ao conjunto aceito
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderEmitido, OrderEmTransito, OrderAtrasado, OrderRecebido, OrderDevolvido, OrderCancelado:
		return true
	}
	return false
}

type AccessType string

const (
	AccessAdmin AccessType = "admin"
	AccessComum AccessType = "comum"
)
