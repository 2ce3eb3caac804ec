package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Row is one statement line as parsed from the uploaded file. Deposit and
// Withdrawal are nullable; a row with neither is a balance-only row. Identity
// is positional: row order in the statement is significant.
type Row struct {
	Date        time.Time
	Reference   string
	Description string // empty = absent
	Value       decimal.NullDecimal
	Deposit     decimal.NullDecimal
	Withdrawal  decimal.NullDecimal
	Balance     decimal.NullDecimal
}

// IsBalance reports whether the row carries only a running balance
// (no deposit and no withdrawal).
func (r Row) IsBalance() bool {
	return !r.Deposit.Valid && !r.Withdrawal.Valid
}

// Net returns deposit minus withdrawal, treating absent sides as zero.
func (r Row) Net() decimal.Decimal {
	net := decimal.Zero
	if r.Deposit.Valid {
		net = net.Add(r.Deposit.Decimal)
	}
	if r.Withdrawal.Valid {
		net = net.Sub(r.Withdrawal.Decimal)
	}
	return net
}

// Statement is an ordered table of rows plus the header it was read under.
// Columns is kept verbatim so schema validation can name what is missing.
type Statement struct {
	Columns []string
	Rows    []Row
}
