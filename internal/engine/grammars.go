package engine

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Markup is the structured-markup grammar: one <key>value</key> element per
// line inside a fixed root element.
var Markup = &Grammar{
	Name:   "xml",
	Header: []string{`<?xml version="1.0"?>`, "<opencv_storage>"},
	Footer: []string{"</opencv_storage>"},
	Field:  func(k, v string) string { return "<" + k + ">" + v + "</" + k + ">" },
	Quote:  quoteIfSpaced,
	Open: []Marker{
		{Text: "<?xml", Prefix: true, Optional: true},
		{Text: "<opencv_storage>"},
	},
	Close: []Marker{{Text: "</opencv_storage>"}},
	Comment: func(s string) bool {
		return strings.HasPrefix(s, "<!--") && strings.HasSuffix(s, "-->")
	},
	Split: splitMarkup,
}

// Block is the block-scalar grammar: "key: value" lines after a two-line
// directive header.
var Block = &Grammar{
	Name:   "yaml",
	Header: []string{"%YAML:1.0", "---"},
	Field:  func(k, v string) string { return k + ": " + v },
	Quote:  func(s string) string { return `"` + s + `"` },
	Open: []Marker{
		{Text: "%YAML", Prefix: true},
		{Text: "---", Optional: true},
	},
	Comment: func(s string) bool { return strings.HasPrefix(s, "#") },
	Split:   splitBlock,
}

func quoteIfSpaced(s string) string {
	if s == "" || strings.ContainsAny(s, " \t") {
		return `"` + s + `"`
	}
	return s
}

func splitMarkup(s string) (string, string, Literal, error) {
	if !strings.HasPrefix(s, "<") || !strings.HasSuffix(s, ">") {
		return "", "", LitBare, errors.New("expected <name>value</name>")
	}
	j := strings.IndexByte(s, '>')
	key := s[1:j]
	if !validKey(key) {
		return "", "", LitBare, fmt.Errorf("invalid element name %q", key)
	}
	closeTag := "</" + key + ">"
	if len(s) < j+1+len(closeTag) || !strings.HasSuffix(s, closeTag) {
		return "", "", LitBare, fmt.Errorf("element <%s> is not closed on the same line", key)
	}
	raw := strings.TrimSpace(s[j+1 : len(s)-len(closeTag)])
	if strings.HasPrefix(raw, `"`) {
		if len(raw) < 2 || !strings.HasSuffix(raw, `"`) {
			return "", "", LitBare, fmt.Errorf("unterminated quoted value for <%s>", key)
		}
		return key, raw[1 : len(raw)-1], LitQuoted, nil
	}
	return key, raw, LitBare, nil
}

func splitBlock(s string) (string, string, Literal, error) {
	idx := strings.IndexByte(s, ':')
	if idx <= 0 {
		return "", "", LitBare, errors.New("expected key: value")
	}
	key := strings.TrimSpace(s[:idx])
	if !validKey(key) {
		return "", "", LitBare, fmt.Errorf("invalid key %q", key)
	}
	raw := strings.TrimSpace(s[idx+1:])
	if raw != "" && (raw[0] == '"' || raw[0] == '\'') {
		var text string
		if err := yaml.Unmarshal([]byte(raw), &text); err != nil {
			return "", "", LitBare, fmt.Errorf("invalid quoted value for %s: %v", key, err)
		}
		return key, text, LitQuoted, nil
	}
	return key, stripComment(raw), LitBare, nil
}

// stripComment drops a trailing "# ..." comment, which must be preceded by
// whitespace.
func stripComment(raw string) string {
	for i := 1; i < len(raw); i++ {
		if raw[i] == '#' && (raw[i-1] == ' ' || raw[i-1] == '\t') {
			return strings.TrimSpace(raw[:i])
		}
	}
	return raw
}

func validKey(k string) bool {
	if k == "" {
		return false
	}
	for i := 0; i < len(k); i++ {
		c := k[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case (c >= '0' && c <= '9') || c == '-' || c == '.':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
