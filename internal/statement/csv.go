package statement

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/netproof-dev/netproof/internal/model"
)

// CSVReader parses a comma-separated statement export.
type CSVReader struct {
	Options Options
}

// Ext returns the file extension this reader handles.
func (r *CSVReader) Ext() string { return ".csv" }

// Read parses a CSV statement. The first record is the header row.
func (r *CSVReader) Read(rd io.Reader) (model.Statement, error) {
	cr := csv.NewReader(rd)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return model.Statement{}, fmt.Errorf("reading statement CSV: %w", err)
	}
	return buildStatement(records, r.Options.DateLayouts)
}
