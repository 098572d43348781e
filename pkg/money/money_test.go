package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrFallback(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{
			name:     "Stored code passes through",
			code:     "USD",
			expected: "USD",
		},
		{
			name:     "Home currency passes through",
			code:     "GMD",
			expected: "GMD",
		},
		{
			name:     "Unknown code passes through",
			code:     "XXX",
			expected: "XXX",
		},
		{
			name:     "Empty falls back",
			code:     "",
			expected: "GMD",
		},
		{
			name:     "Whitespace falls back",
			code:     "   ",
			expected: "GMD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, OrFallback(tt.code))
		})
	}
}

func TestOrZero(t *testing.T) {
	amount := decimal.RequireFromString("12.34")

	assert.True(t, OrZero(nil).IsZero())
	assert.True(t, OrZero(&amount).Equal(amount))
}
