package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextOrderNumber(t *testing.T) {
	prefix := "PED-20260831-"

	assert.Equal(t, "PED-20260831-0001", nextOrderNumber(prefix, ""))
	assert.Equal(t, "PED-20260831-0002", nextOrderNumber(prefix, "PED-20260831-0001"))

	// Excluir o primeiro pedido do dia não pode reemitir o número do
	// sobrevivente: o próximo sempre passa do maior sufixo em uso
	assert.Equal(t, "PED-20260831-0003", nextOrderNumber(prefix, "PED-20260831-0002"))
}

func TestNextOrderNumberBeyondFourDigits(t *testing.T) {
	prefix := "PED-20260831-"

	assert.Equal(t, "PED-20260831-10000", nextOrderNumber(prefix, "PED-20260831-9999"))
	assert.Equal(t, "PED-20260831-10001", nextOrderNumber(prefix, "PED-20260831-10000"))
}
