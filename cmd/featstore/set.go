package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	featstore "github.com/reoring/featstore"
)

type Set struct {
	root *Featstore
}

func NewSet(root *Featstore) *cobra.Command {
	s := &Set{root: root}
	return &cobra.Command{
		Use:   "set FILE KEY=VALUE...",
		Short: "Update parameters in place",
		Args:  cobra.MinimumNArgs(2),
		RunE:  s.Run,
	}
}

func (s *Set) Run(cmd *cobra.Command, args []string) error {
	path := args[0]
	b, err := s.root.open(path)
	if err != nil {
		return err
	}
	for _, kv := range args[1:] {
		key, text, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("expected KEY=VALUE, got %q", kv)
		}
		f, ok := b.Schema().Field(key)
		if !ok {
			return featstore.Issues{featstore.NewIssueWith("/"+key, featstore.CodeUnknownField, "", 0, nil,
				map[string]string{"schema": b.Name()})}
		}
		v, err := f.Parse(text)
		if err != nil {
			return err
		}
		if err := b.Set(key, v); err != nil {
			return err
		}
	}
	return b.Write(path)
}
