// Package statement parses statement files into the core's input table and
// serializes reconciliation results back out as a two-sheet workbook. All
// typed-field validation (dates, amounts) lives here, at the boundary; the
// core assumes fields arrive already typed.
package statement

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/netproof-dev/netproof/internal/model"
)

// Reader parses one statement file format into a Statement.
type Reader interface {
	Read(r io.Reader) (model.Statement, error)
	Ext() string
}

// Options control how statement cells are interpreted.
type Options struct {
	// DateLayouts are Go reference layouts tried in order against Date cells.
	DateLayouts []string
	// Sheet selects the worksheet to read (xlsx only). Empty = first sheet.
	Sheet string
}

// ForPath returns the reader for a file path's extension, or nil when the
// extension is not supported.
func ForPath(path string, opts Options) Reader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return &CSVReader{Options: opts}
	case ".xlsx":
		return &XLSXReader{Options: opts}
	}
	return nil
}

// ReadFile opens path and parses it with the reader for its extension.
func ReadFile(path string, opts Options) (model.Statement, error) {
	rd := ForPath(path, opts)
	if rd == nil {
		return model.Statement{}, fmt.Errorf("unsupported statement file type %q", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return model.Statement{}, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	st, err := rd.Read(f)
	if err != nil {
		return model.Statement{}, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	return st, nil
}
