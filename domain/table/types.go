package table

import "fmt"

// Dataset is an immutable rectangular frame: an ordered list of unique
// column names and, for each name, one cell per row. It is built once per
// analysis request and never shared across requests.
type Dataset struct {
	columns []string
	cells   map[string][]Value
	rows    int

	// Source metadata passed through to the report
	SourceName string
	SheetName  string
	SheetNames []string
}

// NewDataset builds a dataset from declared column order and cell columns.
// Every column must be present in cells and hold the same number of rows.
func NewDataset(columns []string, cells map[string][]Value) (*Dataset, error) {
	seen := make(map[string]bool, len(columns))
	rows := -1
	for _, name := range columns {
		if seen[name] {
			return nil, fmt.Errorf("duplicate column name: %q", name)
		}
		seen[name] = true

		col, ok := cells[name]
		if !ok {
			return nil, fmt.Errorf("missing cells for column %q", name)
		}
		if rows == -1 {
			rows = len(col)
		} else if len(col) != rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d", name, len(col), rows)
		}
	}
	if rows == -1 {
		rows = 0
	}

	copied := make(map[string][]Value, len(columns))
	names := make([]string, len(columns))
	copy(names, columns)
	for _, name := range names {
		col := make([]Value, len(cells[name]))
		copy(col, cells[name])
		copied[name] = col
	}

	return &Dataset{columns: names, cells: copied, rows: rows}, nil
}

// Columns returns the declared column order
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.columns))
	copy(out, d.columns)
	return out
}

// ColumnCount returns the number of declared columns
func (d *Dataset) ColumnCount() int {
	return len(d.columns)
}

// RowCount returns the number of rows
func (d *Dataset) RowCount() int {
	return d.rows
}

// Column returns the cells of a named column in row order
func (d *Dataset) Column(name string) ([]Value, bool) {
	col, ok := d.cells[name]
	if !ok {
		return nil, false
	}
	out := make([]Value, len(col))
	copy(out, col)
	return out, true
}

// IsEmpty reports whether the dataset has no rows or no columns
func (d *Dataset) IsEmpty() bool {
	return d.rows == 0 || len(d.columns) == 0
}
