// Package config loads the optional YAML settings file of the featstore CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	featstore "github.com/reoring/featstore"
)

// Config holds CLI settings. Keys absent from the file keep their defaults.
type Config struct {
	LogLevel      string `yaml:"log_level"`
	Lang          string `yaml:"lang"`
	DefaultFormat string `yaml:"default_format"`
	FloatStyle    string `yaml:"float_style"`
	UnknownFields string `yaml:"unknown_fields"`
	MaxBytes      int64  `yaml:"max_bytes"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:      "info",
		Lang:          "en",
		DefaultFormat: "yml",
		FloatStyle:    "canonical",
		UnknownFields: "strict",
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	switch c.Lang {
	case "en", "ja":
	default:
		return fmt.Errorf("lang: unsupported language %q", c.Lang)
	}
	switch c.DefaultFormat {
	case "xml", "yml", "yaml", "json":
	default:
		return fmt.Errorf("default_format: unsupported format %q", c.DefaultFormat)
	}
	switch c.FloatStyle {
	case "canonical", "compact":
	default:
		return fmt.Errorf("float_style: must be canonical or compact, got %q", c.FloatStyle)
	}
	switch c.UnknownFields {
	case "strict", "strip":
	default:
		return fmt.Errorf("unknown_fields: must be strict or strip, got %q", c.UnknownFields)
	}
	if c.MaxBytes < 0 {
		return fmt.Errorf("max_bytes: must not be negative, got %d", c.MaxBytes)
	}
	return nil
}

// Level returns the configured log level. Validate must have passed.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// ParseOpt returns the decoding options implied by the settings.
func (c Config) ParseOpt() featstore.ParseOpt {
	opt := featstore.DefaultParseOpt()
	if c.UnknownFields == "strip" {
		opt.Unknown = featstore.UnknownStrip
	}
	opt.MaxBytes = c.MaxBytes
	return opt
}

// EncodeOpt returns the encoding options implied by the settings.
func (c Config) EncodeOpt() featstore.EncodeOpt {
	if c.FloatStyle == "compact" {
		return featstore.EncodeOpt{FloatStyle: featstore.FloatCompact}
	}
	return featstore.EncodeOpt{}
}
