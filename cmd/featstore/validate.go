package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	featstore "github.com/reoring/featstore"
)

var errInvalid = errors.New("validation failed")

type Validate struct {
	root *Featstore
}

func NewValidate(root *Featstore) *cobra.Command {
	v := &Validate{root: root}
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check parameter files and report every problem",
		Args:  cobra.MinimumNArgs(1),
		RunE:  v.Run,
	}
}

func (v *Validate) Run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		b, err := v.root.open(path)
		if err != nil {
			failed++
			report(out, path, err)
			continue
		}
		fmt.Fprintf(out, "%s: ok (%s)\n", path, b.Name())
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", errInvalid, failed, len(args))
	}
	return nil
}

func report(w io.Writer, path string, err error) {
	iss, ok := featstore.AsIssues(err)
	if !ok {
		fmt.Fprintf(w, "%s: %v\n", path, err)
		return
	}
	for _, it := range iss {
		if it.Line > 0 {
			fmt.Fprintf(w, "%s:%d: %s: %s\n", path, it.Line, it.Code, it.Message)
		} else {
			fmt.Fprintf(w, "%s: %s: %s\n", path, it.Code, it.Message)
		}
	}
}
