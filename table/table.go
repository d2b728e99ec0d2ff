// Package table provides core tabular data structures and operations.
package table

import (
	"errors"
	"fmt"
)

var (
	// ErrColumnNotFound is returned when a named column does not exist.
	ErrColumnNotFound = errors.New("column not found")
	// ErrDuplicateColumn is returned when two columns share a name.
	ErrDuplicateColumn = errors.New("duplicate column name")
	// ErrLengthMismatch is returned when row-aligned data differ in length.
	ErrLengthMismatch = errors.New("length mismatch")
)

// Column is a named sequence of cells.
type Column struct {
	Name   string
	Values []Value
}

// Table is an immutable collection of named, row-aligned columns.
type Table struct {
	names []string
	cols  map[string][]Value
	index []int
	rows  int
}

// New creates a table from columns. Row labels default to positions 0..n-1.
func New(cols ...Column) (*Table, error) {
	return NewWithIndex(nil, cols...)
}

// NewWithIndex creates a table with explicit row labels.
// A nil index means positional labels.
func NewWithIndex(index []int, cols ...Column) (*Table, error) {
	rows := 0
	switch {
	case index != nil:
		rows = len(index)
	case len(cols) > 0:
		rows = len(cols[0].Values)
	}

	t := &Table{
		names: make([]string, 0, len(cols)),
		cols:  make(map[string][]Value, len(cols)),
		rows:  rows,
	}
	for _, c := range cols {
		if _, ok := t.cols[c.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name)
		}
		if len(c.Values) != rows {
			return nil, fmt.Errorf("%w: column %q has %d rows, want %d", ErrLengthMismatch, c.Name, len(c.Values), rows)
		}
		t.names = append(t.names, c.Name)
		t.cols[c.Name] = copyValues(c.Values)
	}

	if index == nil {
		t.index = positions(rows)
	} else {
		t.index = make([]int, rows)
		copy(t.index, index)
	}
	return t, nil
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return t.rows
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return len(t.names)
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// Index returns the row labels.
func (t *Table) Index() []int {
	index := make([]int, len(t.index))
	copy(index, t.index)
	return index
}

// Has reports whether the table has a column called name.
func (t *Table) Has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Column returns a copy of the named column's cells.
func (t *Table) Column(name string) ([]Value, error) {
	values, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return copyValues(values), nil
}

// MissingCount returns the number of missing cells in the named column.
func (t *Table) MissingCount(name string) (int, error) {
	values, ok := t.cols[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	n := 0
	for _, v := range values {
		if v.IsMissing() {
			n++
		}
	}
	return n, nil
}

// Copy creates a deep copy of the table.
func (t *Table) Copy() *Table {
	out := &Table{
		names: t.Names(),
		cols:  make(map[string][]Value, len(t.cols)),
		index: t.Index(),
		rows:  t.rows,
	}
	for name, values := range t.cols {
		out.cols[name] = copyValues(values)
	}
	return out
}

// Take returns the rows at the given positions, in the given order.
// Row labels travel with their rows. Positions must be in range.
func (t *Table) Take(rows []int) *Table {
	out := &Table{
		names: t.Names(),
		cols:  make(map[string][]Value, len(t.cols)),
		index: make([]int, len(rows)),
		rows:  len(rows),
	}
	for i, r := range rows {
		out.index[i] = t.index[r]
	}
	for name, values := range t.cols {
		taken := make([]Value, len(rows))
		for i, r := range rows {
			taken[i] = values[r]
		}
		out.cols[name] = taken
	}
	return out
}

// Drop returns a table without the named columns.
func (t *Table) Drop(names ...string) (*Table, error) {
	drop := make(map[string]bool, len(names))
	for _, name := range names {
		if !t.Has(name) {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
		}
		drop[name] = true
	}

	out := &Table{
		names: make([]string, 0, len(t.names)),
		cols:  make(map[string][]Value, len(t.cols)),
		index: t.Index(),
		rows:  t.rows,
	}
	for _, name := range t.names {
		if drop[name] {
			continue
		}
		out.names = append(out.names, name)
		out.cols[name] = copyValues(t.cols[name])
	}
	return out, nil
}

// Equal reports whether both tables have the same columns, labels and cells.
func (t *Table) Equal(o *Table) bool {
	if t.rows != o.rows || len(t.names) != len(o.names) {
		return false
	}
	for i, name := range t.names {
		if o.names[i] != name {
			return false
		}
	}
	for i := range t.index {
		if t.index[i] != o.index[i] {
			return false
		}
	}
	for name, values := range t.cols {
		other := o.cols[name]
		for i := range values {
			if !values[i].Equal(other[i]) {
				return false
			}
		}
	}
	return true
}

func positions(n int) []int {
	index := make([]int, n)
	for i := range index {
		index[i] = i
	}
	return index
}
