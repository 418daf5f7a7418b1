package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInCents(t *testing.T) {
	tests := []struct {
		price float64
		want  int64
	}{
		{300, 30000},
		{19.99, 1999},
		{0.01, 1},
		{149.95, 14995},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, amountInCents(tt.price), "price %v", tt.price)
	}
}
