package commands

import (
	"strings"

	"github.com/shopspring/decimal"
)

// formatRupiah renders an amount the way the sheets do: "Rp" prefix,
// "." grouping thousands, "," before any decimals. Negative balances
// keep their sign.
func formatRupiah(d decimal.Decimal) string {
	neg := d.IsNegative()
	abs := d.Abs()

	whole := abs.Truncate(0)
	frac := abs.Sub(whole)

	grouped := groupThousands(whole.StringFixed(0))

	out := "Rp" + grouped
	if !frac.IsZero() {
		cents := abs.StringFixed(2)
		out += "," + cents[strings.LastIndexByte(cents, '.')+1:]
	}
	if neg {
		out = "-" + out
	}
	return out
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// formatPercent renders a realization percentage with one decimal.
func formatPercent(d decimal.Decimal) string {
	return d.StringFixed(1) + "%"
}
