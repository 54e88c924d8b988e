// Package engine implements the line-oriented encode/decode machinery shared by
// every parameter codec. A Grammar describes the tokens of one encoding (header
// and footer lines, the field-line template, quoting); the engine itself only
// knows about flat key/value entries.
package engine

import (
	"bytes"
	"fmt"
	"strings"
)

// Literal records how a value was written in the source text.
type Literal uint8

const (
	LitBare   Literal = iota // Unquoted token (numbers, or text in markup).
	LitQuoted                // Double- or single-quoted string.
	LitBool                  // Native boolean token (JSON only); Raw is "true" or "false".
)

// Entry is one key/value pair in document order.
type Entry struct {
	Key     string
	Raw     string
	Literal Literal
	Line    int // 1-based source line; 0 when the scanner does not track lines.
}

// SyntaxError reports structurally malformed input.
type SyntaxError struct {
	Grammar string
	Line    int
	Msg     string
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", e.Grammar, e.Line, e.Msg)
	}
	return e.Grammar + ": " + e.Msg
}

// Marker is a header or footer line matched during decoding.
type Marker struct {
	Text     string
	Prefix   bool // match lines that start with Text instead of equal to it
	Optional bool
}

func (m Marker) match(line string) bool {
	if m.Prefix {
		return strings.HasPrefix(line, m.Text)
	}
	return line == m.Text
}

// Grammar is the token descriptor of one encoding.
type Grammar struct {
	Name string

	// Encoding side.
	Header    []string
	Footer    []string
	Separator string // written after every field line but the last
	Field     func(key, value string) string
	Quote     func(text string) string

	// Decoding side for line grammars.
	Open    []Marker
	Close   []Marker
	Comment func(line string) bool
	Split   func(line string) (key, raw string, lit Literal, err error)

	// Scanner replaces the line-based decoder for token-stream grammars.
	Scanner func(data []byte) ([]Entry, error)
}

// Encode renders entries one per line between the grammar's header and footer.
// Every line, including the last, is newline-terminated.
func (g *Grammar) Encode(entries []Entry) []byte {
	var b bytes.Buffer
	for _, h := range g.Header {
		b.WriteString(h)
		b.WriteByte('\n')
	}
	for i, e := range entries {
		v := e.Raw
		if e.Literal == LitQuoted {
			v = g.Quote(v)
		}
		b.WriteString(g.Field(e.Key, v))
		if i < len(entries)-1 {
			b.WriteString(g.Separator)
		}
		b.WriteByte('\n')
	}
	for _, f := range g.Footer {
		b.WriteString(f)
		b.WriteByte('\n')
	}
	return b.Bytes()
}

type line struct {
	n    int
	text string
}

// Scan decodes data into entries in document order. Blank lines and comment
// lines are skipped anywhere in the input.
func (g *Grammar) Scan(data []byte) ([]Entry, error) {
	if g.Scanner != nil {
		return g.Scanner(data)
	}
	lines := g.significantLines(data)

	i := 0
	for _, m := range g.Open {
		if i < len(lines) && m.match(lines[i].text) {
			i++
			continue
		}
		if m.Optional {
			continue
		}
		return nil, &SyntaxError{Grammar: g.Name, Line: lineAt(lines, i), Msg: "expected " + quoteMarker(m)}
	}
	end := len(lines)
	for j := len(g.Close) - 1; j >= 0; j-- {
		m := g.Close[j]
		if end > i && m.match(lines[end-1].text) {
			end--
			continue
		}
		if m.Optional {
			continue
		}
		return nil, &SyntaxError{Grammar: g.Name, Line: lineAt(lines, end-1), Msg: "missing " + quoteMarker(m)}
	}

	entries := make([]Entry, 0, end-i)
	for _, ln := range lines[i:end] {
		key, raw, lit, err := g.Split(ln.text)
		if err != nil {
			return nil, &SyntaxError{Grammar: g.Name, Line: ln.n, Msg: err.Error()}
		}
		entries = append(entries, Entry{Key: key, Raw: raw, Literal: lit, Line: ln.n})
	}
	return entries, nil
}

func (g *Grammar) significantLines(data []byte) []line {
	raw := strings.Split(string(data), "\n")
	out := make([]line, 0, len(raw))
	for n, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" || (g.Comment != nil && g.Comment(s)) {
			continue
		}
		out = append(out, line{n: n + 1, text: s})
	}
	return out
}

func lineAt(lines []line, i int) int {
	if i >= 0 && i < len(lines) {
		return lines[i].n
	}
	if len(lines) > 0 {
		return lines[len(lines)-1].n
	}
	return 0
}

func quoteMarker(m Marker) string {
	if m.Prefix {
		return fmt.Sprintf("%q...", m.Text)
	}
	return fmt.Sprintf("%q", m.Text)
}

// Find returns the first entry with the given key.
func Find(entries []Entry, key string) (Entry, bool) {
	for _, e := range entries {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}
