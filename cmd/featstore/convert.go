package main

import (
	"github.com/spf13/cobra"
)

type Convert struct {
	root *Featstore
}

func NewConvert(root *Featstore) *cobra.Command {
	c := &Convert{root: root}
	return &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Re-encode a parameter file; extensions select both encodings",
		Args:  cobra.ExactArgs(2),
		RunE:  c.Run,
	}
}

func (c *Convert) Run(cmd *cobra.Command, args []string) error {
	b, err := c.root.open(args[0])
	if err != nil {
		return err
	}
	return b.Write(args[1])
}
