package orders

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"estoque-backend/internal/models"

	"gorm.io/gorm"
)

// GenerateOrderNumber produz o próximo número legível do dia
// ("PED-20260115-0001"). Deve rodar dentro da transação do insert.
// O próximo número vem do maior sufixo existente, não da contagem de
// linhas: pedidos excluídos não podem fazer o gerador reemitir um número
// que ainda está em uso.
func GenerateOrderNumber(tx *gorm.DB, now time.Time) (string, error) {
	prefix := "PED-" + now.Format("20060102") + "-"

	var last models.Order
	err := tx.
		Where("numero_pedido LIKE ?", prefix+"%").
		Order("length(numero_pedido) DESC").
		Order("numero_pedido DESC").
		First(&last).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nextOrderNumber(prefix, ""), nil
		}
		return "", err
	}

	return nextOrderNumber(prefix, last.Number), nil
}

// nextOrderNumber incrementa o sufixo numérico do último número emitido.
// Largura mínima de 4 dígitos; acima de 9999 o sufixo cresce (por isso a
// busca ordena por comprimento antes da ordem lexicográfica).
func nextOrderNumber(prefix, last string) string {
	next := 1
	if n, err := strconv.Atoi(strings.TrimPrefix(last, prefix)); err == nil {
		next = n + 1
	}
	return fmt.Sprintf("%s%04d", prefix, next)
}
