// Package snapshot loads one CSV snapshot into an in-memory table and
// exposes column introspection. Header names are taken verbatim from the
// first row; no case or whitespace normalization happens here, so callers
// must match the exact key-column spelling.
package snapshot

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
)

// Table is one loaded tabular snapshot: an ordered header plus rows of
// string scalars. Each row has exactly len(Columns) fields. A Table is
// owned by whoever loaded it; nothing is shared or cached between loads.
type Table struct {
	Columns []string
	Rows    [][]string
}

// LoadError reports a snapshot file that exists but cannot be read or
// parsed as tabular data. It wraps the underlying cause.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string { return fmt.Sprintf("load snapshot %s: %v", e.Path, e.Err) }
func (e *LoadError) Unwrap() error { return e.Err }

// Load reads path as a CSV file with a header row. Malformed rows
// (ragged records, bare quotes) and empty files surface as *LoadError;
// they indicate corrupt data and must not be swallowed.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Default FieldsPerRecord enforces rectangular data against the
	// header; a short or long row fails the load.
	records, err := r.ReadAll()
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if len(records) == 0 {
		return nil, &LoadError{Path: path, Err: errors.New("empty file, no header row")}
	}

	return &Table{Columns: records[0], Rows: records[1:]}, nil
}

// Len reports the number of data rows (the header is not a row).
func (t *Table) Len() int { return len(t.Rows) }

// HasColumn reports whether a column with the exact given name exists.
func (t *Table) HasColumn(name string) bool { return t.ColumnIndex(name) >= 0 }

// ColumnIndex returns the position of the named column, or -1. When a
// header repeats a name the first occurrence wins.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns the values of the named column in row order, or nil if
// the column does not exist.
func (t *Table) Column(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	out := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, row[idx])
	}
	return out
}

// RenderCSV writes the table back out as canonical CSV (header first,
// rows in order, LF line endings). Two tables with equal content render
// byte-identically, which is what the diff and export paths rely on.
func (t *Table) RenderCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Columns); err != nil {
		return nil, err
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
