package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMWK(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "MK 0"},
		{590, "MK 590"},
		{8850, "MK 8,850"},
		{1250000, "MK 1,250,000"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, MWK(tt.in))
		})
	}
}

func TestUSDT(t *testing.T) {
	assert.Equal(t, "2.50 USDT", USDT(decimal.RequireFromString("2.5")))
	assert.Equal(t, "0.33 USDT", USDT(decimal.RequireFromString("0.333333")))
}
