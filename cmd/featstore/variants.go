package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	featstore "github.com/reoring/featstore"
)

type Variants struct {
	root *Featstore
}

func NewVariants(root *Featstore) *cobra.Command {
	v := &Variants{root: root}
	return &cobra.Command{
		Use:   "variants",
		Short: "List the registered variants",
		Args:  cobra.NoArgs,
		RunE:  v.Run,
	}
}

func (v *Variants) Run(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VARIANT\tFIELDS\tFORMAT")
	for _, s := range featstore.Schemas() {
		format := "-"
		if s.FormatVersion() > 0 {
			format = fmt.Sprint(s.FormatVersion())
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", s.Name(), s.Len(), format)
	}
	return w.Flush()
}
