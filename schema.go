package featstore

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/reoring/featstore/internal/numfmt"
)

// Reserved keys written ahead of the parameter fields of every document.
const (
	FieldFormat = "format"
	FieldName   = "name"
)

// FieldSpec declares one parameter: its name, kind, bit width and default.
type FieldSpec struct {
	Name    string
	Kind    Kind
	Bits    int // 32 or 64 for int and float fields; 0 otherwise
	Default Value
}

// Pointer returns the path used for this field in Issues and PresenceMap.
func (f FieldSpec) Pointer() string { return "/" + f.Name }

// Coerce checks v against the declared kind and width. Floats are rounded to
// the declared precision; integers outside the declared width are rejected.
func (f FieldSpec) Coerce(v Value) (Value, error) {
	if v.Kind() != f.Kind {
		return Value{}, Issues{newIssue(f.Pointer(), CodeInvalidType, v.String(), 0, nil,
			map[string]string{"expected": f.Kind.String(), "got": v.Kind().String()})}
	}
	switch f.Kind {
	case KindFloat:
		return Float(numfmt.Normalize(v.Float(), f.Bits)), nil
	case KindInt:
		if f.Bits == 32 && (v.Int() < math.MinInt32 || v.Int() > math.MaxInt32) {
			return Value{}, Issues{newIssue(f.Pointer(), CodeOverflow, v.String(), 0, nil,
				map[string]string{"bits": "32"})}
		}
	}
	return v, nil
}

// Parse converts user-supplied text into a value of the field's kind. Booleans
// accept true/false as well as integers; text is taken verbatim.
func (f FieldSpec) Parse(text string) (Value, error) {
	var (
		v   Value
		err error
	)
	switch f.Kind {
	case KindInt:
		var n int64
		if n, err = numfmt.ParseInt(text, f.Bits); err == nil {
			v = Int(n)
		}
	case KindFloat:
		var x float64
		if x, err = numfmt.ParseFloat(text, f.Bits); err == nil {
			v = Float(x)
		}
	case KindBool:
		switch strings.TrimSpace(text) {
		case "true":
			v = Bool(true)
		case "false":
			v = Bool(false)
		default:
			var b bool
			if b, err = numfmt.ParseBool(text); err == nil {
				v = Bool(b)
			}
		}
	default:
		v = Text(text)
	}
	if err != nil {
		var re *numfmt.RangeError
		if errors.As(err, &re) {
			return Value{}, Issues{newIssue(f.Pointer(), CodeOverflow, text, 0, err,
				map[string]string{"bits": strconv.Itoa(re.Bits)})}
		}
		return Value{}, Issues{newIssue(f.Pointer(), CodeInvalidType, text, 0, err,
			map[string]string{"expected": f.Kind.String()})}
	}
	return f.Coerce(v)
}

// Schema is the fixed, ordered parameter catalogue of one algorithm variant.
// Schemas are immutable once built and shared by pointer.
type Schema struct {
	name   string
	format int
	fields []FieldSpec
	index  map[string]int
}

// Name returns the registered type tag, e.g. "Feature2D.AKAZE".
func (s *Schema) Name() string { return s.name }

// FormatVersion returns the version written under the "format" key, or 0 when
// the variant does not carry one.
func (s *Schema) FormatVersion() int { return s.format }

// Len returns the number of parameter fields.
func (s *Schema) Len() int { return len(s.fields) }

// Fields returns a copy of the catalogue in declaration order.
func (s *Schema) Fields() []FieldSpec {
	out := make([]FieldSpec, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field looks up a parameter by name.
func (s *Schema) Field(name string) (FieldSpec, bool) {
	i, ok := s.index[name]
	if !ok {
		return FieldSpec{}, false
	}
	return s.fields[i], true
}

// Defaults returns a fresh Document holding every default value.
func (s *Schema) Defaults() Document {
	values := make([]Value, len(s.fields))
	for i, f := range s.fields {
		values[i] = f.Default
	}
	return Document{schema: s, values: values}
}

// SchemaBuilder assembles a Schema. Errors are deferred to Build.
type SchemaBuilder struct {
	s   *Schema
	err error
}

// NewSchema starts a schema for the given type tag.
func NewSchema(name string) *SchemaBuilder {
	b := &SchemaBuilder{s: &Schema{name: name, index: map[string]int{}}}
	if name == "" || strings.ContainsAny(name, " \t\r\n\"'<>&") {
		b.err = fmt.Errorf("featstore: invalid schema name %q", name)
	}
	return b
}

// Format sets the version written under the "format" key.
func (b *SchemaBuilder) Format(v int) *SchemaBuilder {
	if v <= 0 && b.err == nil {
		b.err = fmt.Errorf("featstore: %s: format version must be positive, got %d", b.s.name, v)
	}
	b.s.format = v
	return b
}

// Int declares a 32-bit integer parameter.
func (b *SchemaBuilder) Int(name string, def int32) *SchemaBuilder {
	return b.add(FieldSpec{Name: name, Kind: KindInt, Bits: 32, Default: Int(int64(def))})
}

// Float32 declares a single-precision parameter.
func (b *SchemaBuilder) Float32(name string, def float32) *SchemaBuilder {
	return b.add(FieldSpec{Name: name, Kind: KindFloat, Bits: 32, Default: Float(float64(def))})
}

// Float64 declares a double-precision parameter.
func (b *SchemaBuilder) Float64(name string, def float64) *SchemaBuilder {
	return b.add(FieldSpec{Name: name, Kind: KindFloat, Bits: 64, Default: Float(def)})
}

// Bool declares a boolean parameter (stored as 1/0).
func (b *SchemaBuilder) Bool(name string, def bool) *SchemaBuilder {
	return b.add(FieldSpec{Name: name, Kind: KindBool, Default: Bool(def)})
}

// Text declares a string parameter.
func (b *SchemaBuilder) Text(name string, def string) *SchemaBuilder {
	return b.add(FieldSpec{Name: name, Kind: KindText, Default: Text(def)})
}

func (b *SchemaBuilder) add(f FieldSpec) *SchemaBuilder {
	if b.err != nil {
		return b
	}
	switch {
	case !validFieldName(f.Name):
		b.err = fmt.Errorf("featstore: %s: invalid field name %q", b.s.name, f.Name)
	case f.Name == FieldName || f.Name == FieldFormat:
		b.err = fmt.Errorf("featstore: %s: field name %q is reserved", b.s.name, f.Name)
	default:
		if _, dup := b.s.index[f.Name]; dup {
			b.err = fmt.Errorf("featstore: %s: duplicate field %q", b.s.name, f.Name)
			return b
		}
		b.s.index[f.Name] = len(b.s.fields)
		b.s.fields = append(b.s.fields, f)
	}
	return b
}

// Build returns the schema or the first declaration error.
func (b *SchemaBuilder) Build() (*Schema, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.s, nil
}

// MustBuild is like Build but panics on error. Schemas are static tables, so
// a declaration error is a programming error.
func (b *SchemaBuilder) MustBuild() *Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

func validFieldName(n string) bool {
	if n == "" {
		return false
	}
	for i := 0; i < len(n); i++ {
		c := n[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9', c == '-':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
