package model

import "github.com/shopspring/decimal"

// ReportRow is one line of a reconciliation report sheet: the original row
// plus the Amount column (the row's net value). Balance rows reattached to
// the unmatched sheet carry a null Amount.
type ReportRow struct {
	Row
	Amount decimal.NullDecimal
}
