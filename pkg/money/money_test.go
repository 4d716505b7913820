package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chatard/storefront/pkg/money"
)

func TestFormatARS(t *testing.T) {
	got := money.FormatARS(1250.50)
	assert.NotEmpty(t, got)
	assert.NotEqual(t, got, money.FormatARS(3751.50))
}

func TestFormatARSZero(t *testing.T) {
	assert.NotEmpty(t, money.FormatARS(0))
}
