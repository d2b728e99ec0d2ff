package split

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a period bound or date cell cannot be parsed.
var ErrInvalidDate = errors.New("invalid date")

// dateLayouts are tried in order. Layouts without a zone parse as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02-Jan-2006",
	"2006-01",
	"2006",
}

// Period is a closed date range; both bounds are inclusive.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PeriodOf builds a Period from date values.
func PeriodOf(start, end time.Time) Period {
	return Period{
		Start: start.Format(time.RFC3339Nano),
		End:   end.Format(time.RFC3339Nano),
	}
}

// Bounds parses both ends of the period.
func (p Period) Bounds() (start, end time.Time, err error) {
	if start, err = ParseDate(p.Start); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("period start: %w", err)
	}
	if end, err = ParseDate(p.End); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("period end: %w", err)
	}
	return start, end, nil
}

// String formats the period as [start, end].
func (p Period) String() string {
	return "[" + p.Start + ", " + p.End + "]"
}

// ParseDate parses s using the supported date layouts.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// contains reports whether start <= t <= end.
func contains(start, end, t time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
