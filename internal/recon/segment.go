package recon

import (
	"strings"

	"github.com/netproof-dev/netproof/internal/model"
)

// RequiredColumns are the named columns every statement must carry.
var RequiredColumns = []string{"Date", "Reference", "Description", "Value", "Deposit", "Withdrawal", "Balance"}

// SchemaError reports required columns absent from the input table. It is
// raised before any row processing begins.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "statement missing required columns: " + strings.Join(e.Missing, ", ")
}

// Validate checks that every required column appears in the statement
// header. Names are compared exactly after trimming surrounding whitespace.
func Validate(st model.Statement) error {
	present := make(map[string]bool, len(st.Columns))
	for _, c := range st.Columns {
		present[strings.TrimSpace(c)] = true
	}
	var missing []string
	for _, c := range RequiredColumns {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

// Segments is a statement split around its balance-only rows.
type Segments struct {
	Opening *model.Row
	Body    []model.Row
	Closing *model.Row
}

// Segment splits rows into opening balance, transaction body and closing
// balance. The first balance-only row is the opening balance, the last is
// the closing balance (the same row when only one exists), and the body is
// the rows strictly between the two positions, in input order. With no
// balance rows the whole input is body and opening/closing are nil.
func Segment(rows []model.Row) Segments {
	first, last := -1, -1
	for i, r := range rows {
		if r.IsBalance() {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return Segments{Body: rows}
	}
	opening := rows[first]
	closing := rows[last]
	var body []model.Row
	if last > first+1 {
		body = rows[first+1 : last]
	}
	return Segments{Opening: &opening, Body: body, Closing: &closing}
}
