// Package binding couples a parameter Schema with the current values of one
// algorithm instance, and persists them through the codecs.
//
// A Binding is not safe for concurrent mutation; callers serialize access.
package binding

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	featstore "github.com/reoring/featstore"
	"github.com/reoring/featstore/codec"
)

const component = "binding"

// Binding holds the parameters of one algorithm instance.
type Binding struct {
	schema *featstore.Schema
	doc    featstore.Document
	log    zerolog.Logger
	parse  featstore.ParseOpt
	encode featstore.EncodeOpt
}

type settings struct {
	params []featstore.Field
	log    zerolog.Logger
	parse  featstore.ParseOpt
	encode featstore.EncodeOpt
}

// Option configures Create.
type Option func(*settings)

// WithParam overrides the default of one parameter.
func WithParam(name string, v featstore.Value) Option {
	return func(s *settings) { s.params = append(s.params, featstore.Field{Name: name, Value: v}) }
}

// WithLogger sets the logger used for read/write events. The default discards.
func WithLogger(l zerolog.Logger) Option { return func(s *settings) { s.log = l } }

// WithParseOpt sets the options used by Read and ReadStream.
func WithParseOpt(o featstore.ParseOpt) Option { return func(s *settings) { s.parse = o } }

// WithEncodeOpt sets the options used by Write and WriteStream.
func WithEncodeOpt(o featstore.EncodeOpt) Option { return func(s *settings) { s.encode = o } }

// Create returns a Binding holding the schema defaults with any WithParam
// overrides applied. Unknown parameter names and kind mismatches are errors.
func Create(s *featstore.Schema, opts ...Option) (*Binding, error) {
	if s == nil {
		return nil, fmt.Errorf("binding: nil schema")
	}
	st := settings{log: zerolog.Nop(), parse: featstore.DefaultParseOpt()}
	for _, o := range opts {
		o(&st)
	}
	doc := s.Defaults()
	for _, p := range st.params {
		var err error
		if doc, err = doc.Set(p.Name, p.Value); err != nil {
			return nil, fmt.Errorf("binding: %s: %w", s.Name(), err)
		}
	}
	return &Binding{
		schema: s,
		doc:    doc,
		log:    st.log.With().Str("component", component).Str("variant", s.Name()).Logger(),
		parse:  st.parse,
		encode: st.encode,
	}, nil
}

// MustCreate is like Create but panics on error.
func MustCreate(s *featstore.Schema, opts ...Option) *Binding {
	b, err := Create(s, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// Schema returns the parameter catalogue.
func (b *Binding) Schema() *featstore.Schema { return b.schema }

// Name returns the type tag.
func (b *Binding) Name() string { return b.schema.Name() }

// Snapshot returns the current parameters as an immutable Document.
func (b *Binding) Snapshot() featstore.Document { return b.doc }

// Reset restores every parameter to its schema default.
func (b *Binding) Reset() { b.doc = b.schema.Defaults() }

// Read loads parameters from path, choosing the codec by extension. Fields
// absent from the file keep their current values; on any error the binding
// is left unchanged. File-system errors are returned as is.
func (b *Binding) Read(path string) error {
	c, err := codec.ForPath(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return b.apply(data, c, path)
}

// ReadStream is Read for an already opened stream.
func (b *Binding) ReadStream(r io.Reader, c featstore.Codec) error {
	if b.parse.MaxBytes > 0 {
		r = io.LimitReader(r, b.parse.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return b.apply(data, c, "")
}

func (b *Binding) apply(data []byte, c featstore.Codec, path string) error {
	dec, err := c.Decode(data, b.schema, b.parse)
	if err != nil {
		b.log.Debug().Str("path", path).Str("codec", c.Name()).Err(err).Msg("read rejected")
		return err
	}
	for _, w := range dec.Warnings {
		b.log.Warn().Str("path", path).Str("field", w.Field()).Str("code", w.Code).Msg(w.Message)
	}
	b.doc = b.doc.Merge(dec.Value, dec.Presence)
	b.log.Debug().Str("path", path).Str("codec", c.Name()).
		Strs("fields", dec.Presence.SeenFields()).Msg("parameters read")
	return nil
}

// Write stores the parameters at path, choosing the codec by extension. The
// file is created or truncated.
func (b *Binding) Write(path string) error {
	c, err := codec.ForPath(path)
	if err != nil {
		return err
	}
	data, err := c.Encode(b.doc, b.encode)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	b.log.Debug().Str("path", path).Str("codec", c.Name()).Int("bytes", len(data)).Msg("parameters written")
	return nil
}

// WriteStream is Write for an already opened stream.
func (b *Binding) WriteStream(w io.Writer, c featstore.Codec) error {
	data, err := c.Encode(b.doc, b.encode)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, bytes.NewReader(data))
	return err
}

// Value returns the current value of a parameter. It panics if the schema has
// no such field.
func (b *Binding) Value(name string) featstore.Value {
	v, ok := b.doc.Get(name)
	if !ok {
		panic(fmt.Sprintf("binding: %s has no field %q", b.schema.Name(), name))
	}
	return v
}

func (b *Binding) typed(name string, k featstore.Kind) featstore.Value {
	v := b.Value(name)
	if v.Kind() != k {
		panic(fmt.Sprintf("binding: %s.%s is %s, not %s", b.schema.Name(), name, v.Kind(), k))
	}
	return v
}

// Int returns an integer parameter. It panics on unknown names or other kinds.
func (b *Binding) Int(name string) int64 { return b.typed(name, featstore.KindInt).Int() }

// Float returns a floating-point parameter.
func (b *Binding) Float(name string) float64 { return b.typed(name, featstore.KindFloat).Float() }

// Float32 returns a floating-point parameter at single precision.
func (b *Binding) Float32(name string) float32 { return b.typed(name, featstore.KindFloat).Float32() }

// Bool returns a boolean parameter.
func (b *Binding) Bool(name string) bool { return b.typed(name, featstore.KindBool).Bool() }

// Text returns a string parameter.
func (b *Binding) Text(name string) string { return b.typed(name, featstore.KindText).Text() }

// Set replaces one parameter. Floats are rounded to the field's precision.
func (b *Binding) Set(name string, v featstore.Value) error {
	doc, err := b.doc.Set(name, v)
	if err != nil {
		return err
	}
	b.doc = doc
	return nil
}

// MustSet is like Set but panics on error.
func (b *Binding) MustSet(name string, v featstore.Value) {
	if err := b.Set(name, v); err != nil {
		panic(err)
	}
}
