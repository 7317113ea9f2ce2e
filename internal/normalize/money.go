package normalize

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Locale selects the separator convention for money strings.
type Locale string

const (
	// LocaleID is the Indonesian convention: "." groups thousands and
	// "," marks decimals, as in "Rp1.234.567,89".
	LocaleID Locale = "id"
	// LocaleEN is the inverse convention: "," groups thousands and "."
	// marks decimals, as in "Rp1,234,567.89".
	LocaleEN Locale = "en"
)

// ParseAmount converts a raw money cell into a non-negative amount.
// Currency markers, whitespace and grouping separators are stripped,
// the locale's decimal separator becomes ".". Empty or unparseable
// input maps to zero, never to an error; negative input is clamped to
// zero so amounts stay non-negative.
func ParseAmount(raw string, loc Locale) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}

	// Strip the currency marker wherever it appears ("Rp1.000",
	// "Rp 1.000" and "1.000 Rp" all occur in the sheets).
	for _, marker := range []string{"Rp", "RP", "rp", "IDR"} {
		s = strings.ReplaceAll(s, marker, "")
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")

	switch loc {
	case LocaleEN:
		s = strings.ReplaceAll(s, ",", "")
	default:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	if s == "" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}
