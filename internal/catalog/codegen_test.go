package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextProductCode(t *testing.T) {
	assert.Equal(t, "EST-0001", nextProductCode(""))
	assert.Equal(t, "EST-0002", nextProductCode("EST-0001"))
	assert.Equal(t, "EST-0100", nextProductCode("EST-0099"))
}

func TestNextProductCodeBeyondFourDigits(t *testing.T) {
	assert.Equal(t, "EST-10000", nextProductCode("EST-9999"))
	assert.Equal(t, "EST-10001", nextProductCode("EST-10000"))
}
