package main

import (
	"github.com/spf13/cobra"

	"github.com/reoring/featstore/binding"
	"github.com/reoring/featstore/codec"
)

type Defaults struct {
	root *Featstore

	Output string
	Format string
}

func NewDefaults(root *Featstore) *cobra.Command {
	d := &Defaults{root: root}
	cmd := &cobra.Command{
		Use:   "defaults [flags] VARIANT",
		Short: "Write the default parameters of a variant",
		Args:  cobra.ExactArgs(1),
		RunE:  d.Run,
	}
	cmd.Flags().StringVarP(&d.Output, "output", "o", "", "output file; the extension selects the encoding")
	cmd.Flags().StringVarP(&d.Format, "format", "f", "", "encoding for standard output (xml, yml, json)")
	return cmd
}

func (d *Defaults) Run(cmd *cobra.Command, args []string) error {
	s, err := lookupVariant(args[0])
	if err != nil {
		return err
	}
	b, err := binding.Create(s, d.root.options()...)
	if err != nil {
		return err
	}
	if d.Output != "" {
		return b.Write(d.Output)
	}
	format := d.Format
	if format == "" {
		format = d.root.cfg.DefaultFormat
	}
	c, err := codec.ByName(format)
	if err != nil {
		return err
	}
	return b.WriteStream(cmd.OutOrStdout(), c)
}
