package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	j "github.com/goccy/go-json"
)

// JSON is the object grammar: a single flat object, four-space indented,
// one member per line.
var JSON = &Grammar{
	Name:      "json",
	Header:    []string{"{"},
	Footer:    []string{"}"},
	Separator: ",",
	Field:     func(k, v string) string { return "    " + jsonString(k) + ": " + v },
	Quote:     jsonString,
	Scanner:   scanJSON,
}

func jsonString(s string) string {
	b, err := j.Marshal(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return string(b)
}

// scanJSON walks the token stream of a flat JSON object. Numbers are kept as
// their source text so that the numeric formatter sees exactly what was written.
func scanJSON(data []byte) ([]Entry, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, jsonSyntax(err)
	}
	if d, ok := tok.(j.Delim); !ok || d != '{' {
		return nil, &SyntaxError{Grammar: "json", Msg: "expected a top-level object"}
	}

	var entries []Entry
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, jsonSyntax(err)
		}
		if d, ok := tok.(j.Delim); ok && d == '}' {
			if _, err := dec.Token(); !errors.Is(err, io.EOF) {
				return nil, &SyntaxError{Grammar: "json", Msg: "unexpected content after object"}
			}
			return entries, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, &SyntaxError{Grammar: "json", Msg: fmt.Sprintf("expected object key, got %v", tok)}
		}
		vt, err := dec.Token()
		if err != nil {
			return nil, jsonSyntax(err)
		}
		e := Entry{Key: key}
		switch v := vt.(type) {
		case j.Number:
			e.Raw = string(v)
		case string:
			e.Raw, e.Literal = v, LitQuoted
		case bool:
			e.Raw, e.Literal = strconv.FormatBool(v), LitBool
		case j.Delim:
			return nil, &SyntaxError{Grammar: "json", Msg: fmt.Sprintf("nested %q value for %s is not supported", rune(v), key)}
		default:
			return nil, &SyntaxError{Grammar: "json", Msg: "null value for " + key}
		}
		entries = append(entries, e)
	}
}

func jsonSyntax(err error) error {
	if errors.Is(err, io.EOF) {
		return &SyntaxError{Grammar: "json", Msg: "unexpected end of input"}
	}
	return &SyntaxError{Grammar: "json", Msg: err.Error()}
}
