// Package split partitions feature tables into train, test and validation
// sets by date range.
package split

import (
	"errors"
	"fmt"
	"time"

	"github.com/sartorproj/tabkit/logger"
	"github.com/sartorproj/tabkit/table"
)

// ErrNilInput is returned when the feature table or labels are nil.
var ErrNilInput = errors.New("features and labels must not be nil")

// Partition is one split: features without the date column, and labels.
type Partition struct {
	X *table.Table
	Y *table.Series
}

// Len returns the number of rows in the partition.
func (p Partition) Len() int {
	return p.X.NumRows()
}

// Result holds the three partitions.
type Result struct {
	Train Partition
	Test  Partition
	Val   Partition
}

// Unpack returns the partitions in train, test, val order.
func (r *Result) Unpack() (xTrain *table.Table, yTrain *table.Series, xTest *table.Table, yTest *table.Series, xVal *table.Table, yVal *table.Series) {
	return r.Train.X, r.Train.Y, r.Test.X, r.Test.Y, r.Val.X, r.Val.Y
}

// Split selects, for each configured period independently, the rows of x
// whose date falls inside the period, together with the same rows of y.
// Overlapping periods put a row in more than one partition. Row order and
// row labels are preserved. A nil cfg uses DefaultConfig.
func Split(x *table.Table, y *table.Series, cfg *Config) (*Result, error) {
	if x == nil || y == nil {
		return nil, ErrNilInput
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.DateColumn == "" {
		return nil, fmt.Errorf("%w: date column is empty", ErrInvalidConfig)
	}
	if y.Len() != x.NumRows() {
		return nil, fmt.Errorf("split: %w: %d feature rows, %d labels", table.ErrLengthMismatch, x.NumRows(), y.Len())
	}

	cells, err := x.Column(cfg.DateColumn)
	if err != nil {
		return nil, fmt.Errorf("split: %w", err)
	}
	dates, err := parseDates(cells)
	if err != nil {
		return nil, fmt.Errorf("split: column %q: %w", cfg.DateColumn, err)
	}
	features, err := x.Drop(cfg.DateColumn)
	if err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = logger.NopLogger{}
	}

	var res Result
	for _, s := range []struct {
		name   string
		period Period
		out    *Partition
	}{
		{"train", cfg.Train, &res.Train},
		{"test", cfg.Test, &res.Test},
		{"val", cfg.Val, &res.Val},
	} {
		start, end, err := s.period.Bounds()
		if err != nil {
			return nil, fmt.Errorf("split: %s %w", s.name, err)
		}
		rows := selectRows(dates, start, end)
		*s.out = Partition{X: features.Take(rows), Y: y.Take(rows)}
		log.Debugw("partition selected", map[string]any{
			"partition": s.name,
			"period":    s.period.String(),
			"rows":      len(rows),
		})
	}
	return &res, nil
}

// parseDates reads a date column. Missing cells become nil and match no period.
func parseDates(cells []table.Value) ([]*time.Time, error) {
	dates := make([]*time.Time, len(cells))
	for i, v := range cells {
		switch v.Kind() {
		case table.KindMissing:
			continue
		case table.KindTime:
			t, _ := v.Time()
			dates[i] = &t
		case table.KindString:
			s, _ := v.Str()
			t, err := ParseDate(s)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			dates[i] = &t
		default:
			return nil, fmt.Errorf("row %d: %w: %s value %s", i, ErrInvalidDate, v.Kind(), v)
		}
	}
	return dates, nil
}

// selectRows returns the positions whose date lies in [start, end], in order.
func selectRows(dates []*time.Time, start, end time.Time) []int {
	rows := make([]int, 0, len(dates))
	for i, d := range dates {
		if d != nil && contains(start, end, *d) {
			rows = append(rows, i)
		}
	}
	return rows
}
