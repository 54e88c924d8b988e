package main

import (
	"github.com/spf13/cobra"

	"github.com/reoring/featstore/jsonschema"
)

type Schema struct {
	root *Featstore
}

func NewSchema(root *Featstore) *cobra.Command {
	s := &Schema{root: root}
	return &cobra.Command{
		Use:   "schema VARIANT",
		Short: "Print the JSON Schema of a variant's JSON encoding",
		Args:  cobra.ExactArgs(1),
		RunE:  s.Run,
	}
}

func (s *Schema) Run(cmd *cobra.Command, args []string) error {
	sc, err := lookupVariant(args[0])
	if err != nil {
		return err
	}
	js, err := sc.JSONSchema()
	if err != nil {
		return err
	}
	out, err := jsonschema.Marshal(js)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
