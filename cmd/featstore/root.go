package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	featstore "github.com/reoring/featstore"
	"github.com/reoring/featstore/binding"
	"github.com/reoring/featstore/codec"
	_ "github.com/reoring/featstore/features2d"
	"github.com/reoring/featstore/i18n"
	"github.com/reoring/featstore/internal/config"
)

// Featstore holds the global flags and the state derived from them.
type Featstore struct {
	ConfigPath string
	LogLevel   string
	Lang       string
	Compact    bool
	Lenient    bool

	cfg config.Config
	log zerolog.Logger
}

// NewRoot builds the command tree.
func NewRoot() *cobra.Command {
	f := &Featstore{}
	cmd := &cobra.Command{
		Use:               "featstore",
		Short:             "Inspect, convert and edit feature-detector parameter files",
		SilenceUsage:      true,
		PersistentPreRunE: f.setup,
		RunE:              func(cmd *cobra.Command, _ []string) error { return cmd.Usage() },
	}
	cmd.CompletionOptions.HiddenDefaultCmd = true

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.ConfigPath, "config", "", "settings file (YAML)")
	pf.StringVar(&f.LogLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	pf.StringVar(&f.Lang, "lang", "", "message language (en, ja)")
	pf.BoolVar(&f.Compact, "compact", false, "write floats in shortest round-trip form")
	pf.BoolVar(&f.Lenient, "lenient", false, "drop unknown fields instead of failing")

	cmd.AddCommand(
		NewVariants(f),
		NewDefaults(f),
		NewConvert(f),
		NewValidate(f),
		NewShow(f),
		NewSet(f),
		NewSchema(f),
	)
	return cmd
}

func (f *Featstore) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = f.LogLevel
	}
	if flags.Changed("lang") {
		cfg.Lang = f.Lang
	}
	if flags.Changed("compact") && f.Compact {
		cfg.FloatStyle = "compact"
	}
	if flags.Changed("lenient") && f.Lenient {
		cfg.UnknownFields = "strip"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	f.cfg = cfg
	i18n.SetLanguage(cfg.Lang)
	f.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(cfg.Level()).
		With().
		Timestamp().
		Logger()
	return nil
}

func (f *Featstore) options(extra ...binding.Option) []binding.Option {
	return append([]binding.Option{
		binding.WithLogger(f.log),
		binding.WithParseOpt(f.cfg.ParseOpt()),
		binding.WithEncodeOpt(f.cfg.EncodeOpt()),
	}, extra...)
}

// lookupVariant accepts a full type tag or the part after "Feature2D.",
// case-insensitively.
func lookupVariant(name string) (*featstore.Schema, error) {
	if s, ok := featstore.Lookup(name); ok {
		return s, nil
	}
	if s, ok := featstore.Lookup("Feature2D." + strings.ToUpper(name)); ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", codec.ErrUnknownVariant, name)
}

// open loads a parameter file of any registered variant.
func (f *Featstore) open(path string) (*binding.Binding, error) {
	c, err := codec.ForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tag, err := c.Sniff(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s, err := lookupVariant(tag)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	b, err := binding.Create(s, f.options()...)
	if err != nil {
		return nil, err
	}
	if err := b.ReadStream(bytes.NewReader(data), c); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}
