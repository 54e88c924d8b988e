// Package codec provides the textual encodings of parameter documents: the
// structured-markup (XML) and block-scalar (YAML) formats written by OpenCV
// FileStorage, a flat JSON object form, and gzip framing for any of them.
package codec

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	featstore "github.com/reoring/featstore"
	"github.com/reoring/featstore/internal/engine"
	"github.com/reoring/featstore/internal/numfmt"
)

// textCodec adapts one engine grammar to the featstore.Codec interface.
type textCodec struct {
	g *engine.Grammar
	// explicitZero writes whole floats as "N.0" instead of "N.".
	explicitZero bool
	// finiteOnly rejects NaN and infinities on encode.
	finiteOnly bool
}

var (
	xmlCodec  = &textCodec{g: engine.Markup}
	yamlCodec = &textCodec{g: engine.Block}
	jsonCodec = &textCodec{g: engine.JSON, explicitZero: true, finiteOnly: true}
)

// XML returns the structured-markup codec.
func XML() featstore.Codec { return xmlCodec }

// YAML returns the block-scalar codec.
func YAML() featstore.Codec { return yamlCodec }

// JSON returns the flat JSON object codec.
func JSON() featstore.Codec { return jsonCodec }

func (c *textCodec) Name() string { return c.g.Name }

func (c *textCodec) Encode(doc featstore.Document, opt featstore.EncodeOpt) ([]byte, error) {
	s := doc.Schema()
	if s == nil {
		return nil, errors.New("codec: encode of zero Document")
	}
	entries := make([]engine.Entry, 0, doc.Len()+2)
	if v := doc.FormatVersion(); v > 0 {
		entries = append(entries, engine.Entry{Key: featstore.FieldFormat, Raw: strconv.Itoa(v)})
	}
	entries = append(entries, engine.Entry{Key: featstore.FieldName, Raw: doc.Name(), Literal: engine.LitQuoted})

	style := numfmt.Canonical
	if opt.FloatStyle == featstore.FloatCompact {
		style = numfmt.Compact
	}
	for _, fld := range doc.Fields() {
		e := engine.Entry{Key: fld.Name}
		v := fld.Value
		switch v.Kind() {
		case featstore.KindInt:
			e.Raw = numfmt.FormatInt(v.Int())
		case featstore.KindBool:
			e.Raw = numfmt.FormatBool(v.Bool())
		case featstore.KindText:
			e.Raw, e.Literal = v.Text(), engine.LitQuoted
		case featstore.KindFloat:
			if c.finiteOnly && (math.IsNaN(v.Float()) || math.IsInf(v.Float(), 0)) {
				return nil, fmt.Errorf("codec: %s cannot represent %s = %s", c.g.Name, fld.Name, v)
			}
			spec, _ := s.Field(fld.Name)
			e.Raw = numfmt.FormatFloat(v.Float(), bitsOf(spec), style, c.explicitZero)
		default:
			return nil, fmt.Errorf("codec: field %s holds an invalid value", fld.Name)
		}
		entries = append(entries, e)
	}
	return c.g.Encode(entries), nil
}

func (c *textCodec) Decode(data []byte, s *featstore.Schema, opt featstore.ParseOpt) (featstore.Decoded[featstore.Document], error) {
	if s == nil {
		return featstore.Decoded[featstore.Document]{}, errors.New("codec: nil schema")
	}
	if err := checkSize(len(data), opt); err != nil {
		return featstore.Decoded[featstore.Document]{}, err
	}
	entries, err := c.g.Scan(data)
	if err != nil {
		return featstore.Decoded[featstore.Document]{}, parseIssue(err)
	}
	return resolve(s, entries, opt)
}

func (c *textCodec) Sniff(data []byte) (string, error) {
	entries, err := c.g.Scan(data)
	if err != nil {
		return "", parseIssue(err)
	}
	e, ok := engine.Find(entries, featstore.FieldName)
	if !ok || e.Literal == engine.LitBool || e.Raw == "" {
		return "", featstore.Issues{featstore.NewIssueWith("/", featstore.CodeParseError, "", 0, nil,
			map[string]string{"detail": "document has no type tag"})}
	}
	return e.Raw, nil
}

func checkSize(n int, opt featstore.ParseOpt) error {
	if opt.MaxBytes > 0 && int64(n) > opt.MaxBytes {
		return featstore.Issues{featstore.NewIssueWith("/", featstore.CodeTooBig, "", 0, nil,
			map[string]string{"limit": strconv.FormatInt(opt.MaxBytes, 10)})}
	}
	return nil
}

func parseIssue(err error) error {
	line := 0
	var se *engine.SyntaxError
	if errors.As(err, &se) {
		line = se.Line
	}
	detail := err.Error()
	if se != nil {
		detail = se.Msg
	}
	return featstore.Issues{featstore.NewIssueWith("/", featstore.CodeParseError, "", line, err,
		map[string]string{"detail": detail})}
}
