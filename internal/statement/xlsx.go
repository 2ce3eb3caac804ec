package statement

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/netproof-dev/netproof/internal/model"
)

// XLSXReader parses an Excel workbook statement.
type XLSXReader struct {
	Options Options
}

// Ext returns the file extension this reader handles.
func (r *XLSXReader) Ext() string { return ".xlsx" }

// Read parses the configured sheet (first sheet by default) of an xlsx
// workbook. The first row is the header row.
func (r *XLSXReader) Read(rd io.Reader) (model.Statement, error) {
	f, err := excelize.OpenReader(rd)
	if err != nil {
		return model.Statement{}, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := r.Options.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return model.Statement{}, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return buildStatement(rows, r.Options.DateLayouts)
}
