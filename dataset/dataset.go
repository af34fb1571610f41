package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Row maps a column name to the raw string value parsed from the source.
type Row map[string]string

// Dataset holds parsed tabular data with the header order preserved.
type Dataset struct {
	Columns []string
	Rows    []Row
}

// ColumnNotFoundError reports a referenced column missing from the
// dataset's schema for the requested year.
type ColumnNotFoundError struct {
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("expected column %q not found in dataset", e.Column)
}

// FromCSV parses CSV content into a Dataset. The first record is the
// header; every following record becomes one Row keyed by header name.
func FromCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv parse: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv parse: no header row")
	}
	header := records[0]
	ds := &Dataset{
		Columns: append([]string(nil), header...),
		Rows:    make([]Row, 0, len(records)-1),
	}
	for _, rec := range records[1:] {
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds, nil
}

// Len returns the number of data rows.
func (d *Dataset) Len() int { return len(d.Rows) }

// HasColumn reports whether the named column exists.
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// RequireColumns fails with a *ColumnNotFoundError naming the first
// missing column, so that schema drift across years surfaces clearly
// instead of producing empty values everywhere.
func (d *Dataset) RequireColumns(names ...string) error {
	for _, n := range names {
		if !d.HasColumn(n) {
			return &ColumnNotFoundError{Column: n}
		}
	}
	return nil
}

// AddColumns registers derived column names, keeping header order stable.
// Row values are set by the caller.
func (d *Dataset) AddColumns(names ...string) {
	for _, n := range names {
		if !d.HasColumn(n) {
			d.Columns = append(d.Columns, n)
		}
	}
}

// Filter returns a new Dataset holding only the rows for which keep
// returns true. The column set is shared with the receiver.
func (d *Dataset) Filter(keep func(Row) bool) *Dataset {
	out := &Dataset{Columns: d.Columns}
	for _, row := range d.Rows {
		if keep(row) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// Project returns a new Dataset containing exactly the named columns,
// dropping all others. Missing columns fail with *ColumnNotFoundError.
func (d *Dataset) Project(cols ...string) (*Dataset, error) {
	if err := d.RequireColumns(cols...); err != nil {
		return nil, err
	}
	out := &Dataset{Columns: append([]string(nil), cols...)}
	for _, row := range d.Rows {
		proj := make(Row, len(cols))
		for _, c := range cols {
			proj[c] = row[c]
		}
		out.Rows = append(out.Rows, proj)
	}
	return out, nil
}
