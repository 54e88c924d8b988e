package featstore

// Field is one named parameter value.
type Field struct {
	Name  string
	Value Value
}

// Document is a snapshot of one variant's parameters: the type tag, the
// optional format version and every schema field in declaration order. The
// field set always equals the schema's. Documents are values; Set returns a
// modified copy.
type Document struct {
	schema *Schema
	values []Value
}

// Schema returns the catalogue the document conforms to (nil for the zero Document).
func (d Document) Schema() *Schema { return d.schema }

// Name returns the type tag.
func (d Document) Name() string {
	if d.schema == nil {
		return ""
	}
	return d.schema.name
}

// FormatVersion returns the version written under "format", or 0.
func (d Document) FormatVersion() int {
	if d.schema == nil {
		return 0
	}
	return d.schema.format
}

// Len returns the number of parameter fields.
func (d Document) Len() int { return len(d.values) }

// Get returns the value of a parameter.
func (d Document) Get(name string) (Value, bool) {
	if d.schema == nil {
		return Value{}, false
	}
	i, ok := d.schema.index[name]
	if !ok {
		return Value{}, false
	}
	return d.values[i], true
}

// Fields returns the parameters in schema order.
func (d Document) Fields() []Field {
	out := make([]Field, len(d.values))
	for i, v := range d.values {
		out[i] = Field{Name: d.schema.fields[i].Name, Value: v}
	}
	return out
}

// Set returns a copy of d with one parameter replaced. The value is checked
// and normalized by FieldSpec.Coerce.
func (d Document) Set(name string, v Value) (Document, error) {
	if d.schema == nil {
		return d, Issues{newIssue("/"+name, CodeUnknownField, "", 0, nil, nil)}
	}
	i, ok := d.schema.index[name]
	if !ok {
		return d, Issues{newIssue("/"+name, CodeUnknownField, "", 0, nil,
			map[string]string{"schema": d.schema.name})}
	}
	cv, err := d.schema.fields[i].Coerce(v)
	if err != nil {
		return d, err
	}
	values := make([]Value, len(d.values))
	copy(values, d.values)
	values[i] = cv
	return Document{schema: d.schema, values: values}, nil
}

// Merge returns a copy of d where every field marked seen in pres takes its
// value from src. Fields not seen keep the value they have in d. src and d
// must share a schema; otherwise d is returned unchanged.
func (d Document) Merge(src Document, pres PresenceMap) Document {
	if d.schema == nil || src.schema != d.schema {
		return d
	}
	values := make([]Value, len(d.values))
	copy(values, d.values)
	for i, f := range d.schema.fields {
		if pres.Seen(f.Pointer()) {
			values[i] = src.values[i]
		}
	}
	return Document{schema: d.schema, values: values}
}

// Equal reports whether both documents share a schema and hold equal values.
func (d Document) Equal(o Document) bool {
	if d.schema != o.schema || len(d.values) != len(o.values) {
		return false
	}
	for i := range d.values {
		if !d.values[i].Equal(o.values[i]) {
			return false
		}
	}
	return true
}

// Diff lists the fields whose values differ between d and o. Both documents
// must share a schema.
func (d Document) Diff(o Document) []string {
	if d.schema != o.schema {
		return nil
	}
	var names []string
	for i := range d.values {
		if !d.values[i].Equal(o.values[i]) {
			names = append(names, d.schema.fields[i].Name)
		}
	}
	return names
}
