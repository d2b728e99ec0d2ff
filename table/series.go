package table

import (
	"errors"
	"fmt"
)

// ErrNotNumeric is returned when a cell cannot be read as a number.
var ErrNotNumeric = errors.New("value is not numeric")

// Series is a labelled sequence of cells, typically the target column
// that accompanies a feature table.
type Series struct {
	Name   string
	Index  []int
	Values []Value
}

// NewSeries creates a series with positional labels.
func NewSeries(name string, values []Value) *Series {
	return &Series{
		Name:   name,
		Index:  positions(len(values)),
		Values: copyValues(values),
	}
}

// NewFloatSeries creates a numeric series with positional labels.
func NewFloatSeries(name string, values []float64) *Series {
	return &Series{
		Name:   name,
		Index:  positions(len(values)),
		Values: Floats(values),
	}
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Take returns the elements at the given positions, in the given order.
func (s *Series) Take(rows []int) *Series {
	out := &Series{
		Name:   s.Name,
		Index:  make([]int, len(rows)),
		Values: make([]Value, len(rows)),
	}
	for i, r := range rows {
		out.Values[i] = s.Values[r]
		if r < len(s.Index) {
			out.Index[i] = s.Index[r]
		} else {
			out.Index[i] = r
		}
	}
	return out
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	index := make([]int, len(s.Index))
	copy(index, s.Index)
	return &Series{
		Name:   s.Name,
		Index:  index,
		Values: copyValues(s.Values),
	}
}

// Floats converts the series to numbers. Missing, text and time cells
// fail with ErrNotNumeric.
func (s *Series) Floats() ([]float64, error) {
	out := make([]float64, len(s.Values))
	for i, v := range s.Values {
		f, ok := v.Float()
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] is %s", ErrNotNumeric, s.Name, i, v.Kind())
		}
		out[i] = f
	}
	return out, nil
}

// Equal reports whether both series have the same name, labels and cells.
func (s *Series) Equal(o *Series) bool {
	if s.Name != o.Name || len(s.Values) != len(o.Values) || len(s.Index) != len(o.Index) {
		return false
	}
	for i := range s.Index {
		if s.Index[i] != o.Index[i] {
			return false
		}
	}
	for i := range s.Values {
		if !s.Values[i].Equal(o.Values[i]) {
			return false
		}
	}
	return true
}
