package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type Show struct {
	root *Featstore
}

func NewShow(root *Featstore) *cobra.Command {
	s := &Show{root: root}
	return &cobra.Command{
		Use:   "show FILE",
		Short: "Print the parameters of a file next to their defaults",
		Args:  cobra.ExactArgs(1),
		RunE:  s.Run,
	}
}

func (s *Show) Run(cmd *cobra.Command, args []string) error {
	b, err := s.root.open(args[0])
	if err != nil {
		return err
	}
	defaults := b.Schema().Defaults()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "# %s\n", b.Name())
	fmt.Fprintln(w, "FIELD\tKIND\tVALUE\tDEFAULT")
	for _, f := range b.Snapshot().Fields() {
		def, _ := defaults.Get(f.Name)
		mark := ""
		if !f.Value.Equal(def) {
			mark = " *"
		}
		fmt.Fprintf(w, "%s\t%s\t%s%s\t%s\n", f.Name, f.Value.Kind(), f.Value, mark, def)
	}
	return w.Flush()
}
