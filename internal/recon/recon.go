// Package recon pairs statement entries that net to zero under a derived
// grouping key, splitting a statement into matched (explained) and unmatched
// (residual) rows. The pipeline is a pure in-memory computation: it never
// mutates its input, performs no I/O, and the same statement always produces
// the same result.
package recon

import (
	"github.com/shopspring/decimal"

	"github.com/netproof-dev/netproof/internal/model"
)

// Summary holds the headline counts for a reconciliation run.
type Summary struct {
	Transactions int
	Matched      int
	Unmatched    int
	UnmatchedNet decimal.Decimal
}

// Result is the matched/unmatched partition of a statement.
type Result struct {
	// Unmatched is the residual statement: opening balance row (if any),
	// unexplained transactions in original order, closing balance row (if
	// any). Balance rows carry a null Amount.
	Unmatched []model.ReportRow
	// Matched holds the explained transactions sorted by match key.
	Matched []model.ReportRow
	Summary Summary
}

// Reconcile runs the full pipeline over a statement: validate the header,
// split off the opening/closing balance rows, derive a match key and net
// value per body row, and partition the body into groups that net to zero
// and groups that do not.
func Reconcile(st model.Statement) (*Result, error) {
	if err := Validate(st); err != nil {
		return nil, err
	}

	segs := Segment(st.Rows)

	entries := make([]entry, 0, len(segs.Body))
	for _, r := range segs.Body {
		net := r.Net()
		entries = append(entries, entry{
			row:      r,
			net:      net,
			matchKey: MatchKey(NumericKey(r.Description), TextKey(r.Description), net),
		})
	}

	matched, unmatched := partition(entries)

	res := &Result{
		Unmatched: make([]model.ReportRow, 0, len(unmatched)+2),
		Matched:   make([]model.ReportRow, 0, len(matched)),
		Summary: Summary{
			Transactions: len(entries),
			Matched:      len(matched),
			Unmatched:    len(unmatched),
		},
	}

	if segs.Opening != nil {
		res.Unmatched = append(res.Unmatched, model.ReportRow{Row: *segs.Opening})
	}
	for _, e := range unmatched {
		res.Unmatched = append(res.Unmatched, reportRow(e))
		res.Summary.UnmatchedNet = res.Summary.UnmatchedNet.Add(e.net)
	}
	if segs.Closing != nil {
		res.Unmatched = append(res.Unmatched, model.ReportRow{Row: *segs.Closing})
	}
	for _, e := range matched {
		res.Matched = append(res.Matched, reportRow(e))
	}
	return res, nil
}

// RowKeys describes the derived fields for one body row. It exists so the
// grouping policy can be audited, in particular the rule that an 8+ digit
// reference overrides the amount when two rows share it.
type RowKeys struct {
	Row        model.Row
	NumericKey string
	TextKey    string
	Net        decimal.Decimal
	MatchKey   string
}

// DeriveKeys validates and segments the statement and returns the derived
// key fields for every body row, in statement order.
func DeriveKeys(st model.Statement) ([]RowKeys, error) {
	if err := Validate(st); err != nil {
		return nil, err
	}

	segs := Segment(st.Rows)
	keys := make([]RowKeys, 0, len(segs.Body))
	for _, r := range segs.Body {
		net := r.Net()
		num := NumericKey(r.Description)
		txt := TextKey(r.Description)
		keys = append(keys, RowKeys{
			Row:        r,
			NumericKey: num,
			TextKey:    txt,
			Net:        net,
			MatchKey:   MatchKey(num, txt, net),
		})
	}
	return keys, nil
}

func reportRow(e entry) model.ReportRow {
	return model.ReportRow{
		Row:    e.row,
		Amount: decimal.NullDecimal{Decimal: e.net, Valid: true},
	}
}
