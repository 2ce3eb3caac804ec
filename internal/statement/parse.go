package statement

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/netproof-dev/netproof/internal/model"
)

// ParseError reports a malformed cell in a statement file.
type ParseError struct {
	Row    int // 1-based, header included, as displayed in a spreadsheet
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d, column %s: %v", e.Row, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// buildStatement converts a raw cell grid (header row first) into a
// Statement. Columns the header does not name are left absent in every row;
// the core reports those through its schema check, so no error is raised
// here for a missing column.
func buildStatement(records [][]string, layouts []string) (model.Statement, error) {
	if len(records) == 0 {
		return model.Statement{}, errors.New("statement file is empty")
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		if _, ok := idx[h]; !ok {
			idx[h] = i
		}
	}

	cell := func(rec []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	st := model.Statement{Columns: header}
	for n, rec := range records[1:] {
		rowNum := n + 2
		row := model.Row{
			Reference:   cell(rec, "Reference"),
			Description: cell(rec, "Description"),
		}

		if s := cell(rec, "Date"); s != "" {
			d, err := parseDate(s, layouts)
			if err != nil {
				return model.Statement{}, &ParseError{Row: rowNum, Column: "Date", Err: err}
			}
			row.Date = d
		}

		for _, c := range []struct {
			name string
			dst  *decimal.NullDecimal
		}{
			{"Value", &row.Value},
			{"Deposit", &row.Deposit},
			{"Withdrawal", &row.Withdrawal},
			{"Balance", &row.Balance},
		} {
			s := cell(rec, c.name)
			if s == "" {
				continue
			}
			d, err := parseAmount(s)
			if err != nil {
				return model.Statement{}, &ParseError{Row: rowNum, Column: c.name, Err: err}
			}
			*c.dst = decimal.NullDecimal{Decimal: d, Valid: true}
		}

		st.Rows = append(st.Rows, row)
	}
	return st, nil
}

// parseAmount reads a numeric cell, tolerating thousands separators.
func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
}

// parseDate tries each configured layout in order, then falls back to an
// Excel date serial number (how excelize surfaces unformatted date cells).
func parseDate(s string, layouts []string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return excelize.ExcelDateToTime(serial, false)
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
