package commands

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "Rp0"},
		{"500", "Rp500"},
		{"1500", "Rp1.500"},
		{"1500000", "Rp1.500.000"},
		{"1234567.89", "Rp1.234.567,89"},
		{"-250000", "-Rp250.000"},
	}

	for _, tt := range tests {
		got := formatRupiah(decimal.RequireFromString(tt.in))
		assert.Equal(t, tt.want, got, "formatRupiah(%s)", tt.in)
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "50.0%", formatPercent(decimal.RequireFromString("50")))
	assert.Equal(t, "0.0%", formatPercent(decimal.Zero))
	assert.Equal(t, "33.3%", formatPercent(decimal.RequireFromString("33.33")))
}
