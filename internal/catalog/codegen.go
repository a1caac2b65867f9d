package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"estoque-backend/internal/models"

	"gorm.io/gorm"
)

const productCodePrefix = "EST-"

// GenerateProductCode produz o próximo código sequencial ("EST-0001",
// "EST-0002", ...). Deve rodar dentro da mesma transação do insert para
// evitar código duplicado entre dois cadastros simultâneos.
// A busca do maior código ordena por comprimento antes da ordem
// lexicográfica: "EST-10000" vem depois de "EST-9999".
func GenerateProductCode(tx *gorm.DB) (string, error) {
	var last models.Product
	err := tx.
		Where("codigo LIKE ?", productCodePrefix+"%").
		Order("length(codigo) DESC").
		Order("codigo DESC").
		First(&last).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nextProductCode(""), nil
		}
		return "", err
	}

	return nextProductCode(last.Code), nil
}

// nextProductCode incrementa o sufixo numérico do último código; largura
// mínima de 4 dígitos, crescendo além de 9999
func nextProductCode(last string) string {
	next := 1
	if n, err := strconv.Atoi(strings.TrimPrefix(last, productCodePrefix)); err == nil {
		next = n + 1
	}
	return fmt.Sprintf("%s%04d", productCodePrefix, next)
}
