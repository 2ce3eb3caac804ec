package statement

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/netproof-dev/netproof/internal/model"
	"github.com/netproof-dev/netproof/internal/recon"
)

// ReportColumns is the column order of both report sheets.
var ReportColumns = []string{"Date", "Reference", "Description", "Value", "Deposit", "Withdrawal", "Amount", "Balance"}

// Default report sheet names.
const (
	DefaultUnmatchedSheet = "Unmatched Statement"
	DefaultMatchedSheet   = "Matched Entries"
)

// WriterOptions name the two report sheets. Zero values fall back to the
// defaults.
type WriterOptions struct {
	UnmatchedSheet string
	MatchedSheet   string
}

// WriteReport serializes a reconciliation result to w as one xlsx workbook
// with the unmatched statement on the first sheet and the matched entries on
// the second.
func WriteReport(w io.Writer, res *recon.Result, opts WriterOptions) error {
	if opts.UnmatchedSheet == "" {
		opts.UnmatchedSheet = DefaultUnmatchedSheet
	}
	if opts.MatchedSheet == "" {
		opts.MatchedSheet = DefaultMatchedSheet
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), opts.UnmatchedSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	if _, err := f.NewSheet(opts.MatchedSheet); err != nil {
		return fmt.Errorf("adding sheet: %w", err)
	}

	if err := writeSheet(f, opts.UnmatchedSheet, res.Unmatched); err != nil {
		return err
	}
	if err := writeSheet(f, opts.MatchedSheet, res.Matched); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// WriteReportFile writes the report workbook to path.
func WriteReportFile(path string, res *recon.Result, opts WriterOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer f.Close()

	if err := WriteReport(f, res, opts); err != nil {
		return err
	}
	return f.Close()
}

func writeSheet(f *excelize.File, sheet string, rows []model.ReportRow) error {
	header := make([]interface{}, len(ReportColumns))
	for i, c := range ReportColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing %s header: %w", sheet, err)
	}

	for i, r := range rows {
		cells := []interface{}{
			dateCell(r.Date),
			r.Reference,
			r.Description,
			numCell(r.Value),
			numCell(r.Deposit),
			numCell(r.Withdrawal),
			numCell(r.Amount),
			numCell(r.Balance),
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("addressing %s row %d: %w", sheet, i+2, err)
		}
		if err := f.SetSheetRow(sheet, addr, &cells); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

func dateCell(t time.Time) interface{} {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func numCell(d decimal.NullDecimal) interface{} {
	if !d.Valid {
		return ""
	}
	return d.Decimal.InexactFloat64()
}
