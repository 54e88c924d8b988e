package featstore

import (
	"math"
	"strconv"

	"github.com/reoring/featstore/internal/numfmt"
)

// Kind enumerates the scalar kinds a parameter can hold.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindFloat
	KindBool
	KindText
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	default:
		return "invalid"
	}
}

// Value is an immutable tagged scalar. The zero Value is invalid.
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
}

// Int creates an integer value.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float creates a floating-point value.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// Bool creates a boolean value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Text creates a string value.
func Text(v string) Value { return Value{kind: KindText, s: v} }

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v was built by one of the constructors.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// Int returns the integer payload, or 0 for other kinds.
func (v Value) Int() int64 { return v.i }

// Float returns the floating-point payload, or 0 for other kinds.
func (v Value) Float() float64 { return v.f }

// Bool returns the boolean payload, or false for other kinds.
func (v Value) Bool() bool { return v.b }

// Text returns the string payload, or "" for other kinds.
func (v Value) Text() string { return v.s }

// Float32 returns the floating-point payload rounded to single precision.
func (v Value) Float32() float32 { return float32(v.f) }

// Equal reports whether both values have the same kind and payload. Floats
// compare by bit pattern, except that every NaN equals every other NaN.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == o.i
	case KindFloat:
		if math.IsNaN(v.f) && math.IsNaN(o.f) {
			return true
		}
		return math.Float64bits(v.f) == math.Float64bits(o.f)
	case KindBool:
		return v.b == o.b
	case KindText:
		return v.s == o.s
	default:
		return true
	}
}

// String renders the value the way the codecs write it at double precision.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return numfmt.FormatInt(v.i)
	case KindFloat:
		return numfmt.FormatFloat(v.f, 64, numfmt.Canonical, false)
	case KindBool:
		return numfmt.FormatBool(v.b)
	case KindText:
		return strconv.Quote(v.s)
	default:
		return "<invalid>"
	}
}

// Any returns the payload as int64, float64, bool or string (nil when invalid).
func (v Value) Any() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	case KindText:
		return v.s
	default:
		return nil
	}
}
