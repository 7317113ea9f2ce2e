package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one row in cashflow.csv: a cash advance (UMK), a
// settlement against a prior advance (SPJ), or both on the same row.
type Transaction struct {
	Date         time.Time // zero value = undated
	Category     string
	Cashier      string
	Description  string
	Disbursement decimal.Decimal // UMK, never negative after normalization
	Settlement   decimal.Decimal // SPJ, never negative after normalization
	Note         string
}

// Dated reports whether the row carries a usable date. Undated rows
// sort after all dated rows within a group and never receive a
// settlement deadline.
func (t Transaction) Dated() bool {
	return !t.Date.IsZero()
}
