// Package jsonschema holds the JSON Schema representation used to export
// parameter catalogues for editors and external validators.
package jsonschema

import j "github.com/goccy/go-json"

// Draft is the dialect written under "$schema".
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Schema is a minimal JSON Schema representation used for export.
type Schema struct {
	// Meta
	SchemaURI   string `json:"$schema,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	// Core
	Type    string `json:"type,omitempty"`
	Format  string `json:"format,omitempty"`
	Default any    `json:"default,omitempty"`
	Const   any    `json:"const,omitempty"`
	Enum    []any  `json:"enum,omitempty"`

	// Numeric
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`
}

// Marshal renders s as indented JSON with a trailing newline. Object keys are
// sorted, so the output is stable.
func Marshal(s *Schema) ([]byte, error) {
	b, err := j.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// Float returns a pointer to v, for Minimum and Maximum.
func Float(v float64) *float64 { return &v }
