package table

import (
	"errors"
	"fmt"
)

// ErrInvalidFill is returned when the fill value is itself missing.
var ErrInvalidFill = errors.New("fill value must not be missing")

// Impute returns a copy of t in which every missing cell of the named
// columns holds fill. Columns not named keep their missing cells.
func Impute(t *Table, cols []string, fill Value) (*Table, error) {
	if fill.IsMissing() {
		return nil, ErrInvalidFill
	}
	for _, name := range cols {
		if !t.Has(name) {
			return nil, fmt.Errorf("impute: %w: %q", ErrColumnNotFound, name)
		}
	}

	out := t.Copy()
	for _, name := range cols {
		values := out.cols[name]
		for i, v := range values {
			if v.IsMissing() {
				values[i] = fill
			}
		}
	}
	return out, nil
}

// ImputeZero fills missing cells of the named columns with 0.
func ImputeZero(t *Table, cols []string) (*Table, error) {
	return Impute(t, cols, Float(0))
}
