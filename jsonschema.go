package featstore

import (
	"math"

	js "github.com/reoring/featstore/jsonschema"
)

// JSONSchema projects the catalogue onto JSON Schema, as accepted by the JSON
// codec: a flat object whose "name" is the type tag, with no other keys than
// the declared fields. Booleans are written as 1/0 and read as either form.
func (s *Schema) JSONSchema() (*js.Schema, error) {
	props := map[string]*js.Schema{
		FieldName: {Type: "string", Const: s.name},
	}
	if s.format > 0 {
		props[FieldFormat] = &js.Schema{
			Type:    "integer",
			Minimum: js.Float(1),
			Maximum: js.Float(float64(s.format)),
			Default: s.format,
		}
	}
	for _, f := range s.fields {
		props[f.Name] = fieldJSONSchema(f)
	}
	return &js.Schema{
		SchemaURI:            js.Draft,
		Title:                s.name,
		Type:                 "object",
		Properties:           props,
		AdditionalProperties: false,
	}, nil
}

func fieldJSONSchema(f FieldSpec) *js.Schema {
	switch f.Kind {
	case KindInt:
		out := &js.Schema{Type: "integer", Default: f.Default.Int()}
		if f.Bits == 32 {
			out.Format = "int32"
			out.Minimum, out.Maximum = js.Float(math.MinInt32), js.Float(math.MaxInt32)
		}
		return out
	case KindFloat:
		out := &js.Schema{Type: "number", Format: "double", Default: f.Default.Float()}
		if f.Bits == 32 {
			out.Format = "float"
		}
		return out
	case KindBool:
		return &js.Schema{Enum: []any{0, 1, false, true}, Default: numBool(f.Default.Bool())}
	default:
		return &js.Schema{Type: "string", Default: f.Default.Text()}
	}
}

func numBool(b bool) int {
	if b {
		return 1
	}
	return 0
}
