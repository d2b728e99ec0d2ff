package table

import (
	"math"
	"strconv"
	"time"
)

// Kind identifies the type of a cell value.
type Kind uint8

const (
	KindMissing Kind = iota
	KindFloat
	KindString
	KindTime
	KindBool
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindTime:
		return "time"
	case KindBool:
		return "bool"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a single table cell. The zero Value is missing.
type Value struct {
	kind Kind
	f    float64
	s    string
	t    time.Time
}

// Missing returns the missing marker.
func Missing() Value {
	return Value{}
}

// Float returns a numeric value. NaN is a valid float, not a missing marker.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// Int returns a numeric value holding i.
func Int(i int) Value {
	return Float(float64(i))
}

// String returns a text value.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Time returns a date/time value.
func Time(t time.Time) Value {
	return Value{kind: KindTime, t: t}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.f = 1
	}
	return v
}

// Kind returns the kind of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsMissing reports whether v is the missing marker.
func (v Value) IsMissing() bool {
	return v.kind == KindMissing
}

// Float returns the numeric payload. Bool values convert to 1 or 0.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindFloat, KindBool:
		return v.f, true
	default:
		return 0, false
	}
}

// Str returns the text payload.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// Time returns the date/time payload.
func (v Value) Time() (time.Time, bool) {
	if v.kind != KindTime {
		return time.Time{}, false
	}
	return v.t, true
}

// Bool returns the boolean payload.
func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.f != 0, true
}

// Equal reports whether v and o hold the same kind and payload.
// Two NaN floats are equal; times are compared as instants.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindMissing:
		return true
	case KindFloat:
		if math.IsNaN(v.f) && math.IsNaN(o.f) {
			return true
		}
		return v.f == o.f
	case KindBool:
		return v.f == o.f
	case KindString:
		return v.s == o.s
	case KindTime:
		return v.t.Equal(o.t)
	}
	return false
}

// String formats v for display. Missing values print as "NA".
func (v Value) String() string {
	switch v.kind {
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindTime:
		return v.t.Format(time.RFC3339)
	case KindBool:
		return strconv.FormatBool(v.f != 0)
	default:
		return "NA"
	}
}

// Floats wraps a float slice as values.
func Floats(fs []float64) []Value {
	values := make([]Value, len(fs))
	for i, f := range fs {
		values[i] = Float(f)
	}
	return values
}

func copyValues(values []Value) []Value {
	out := make([]Value, len(values))
	copy(out, values)
	return out
}
