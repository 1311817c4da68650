package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"param-deserializer/deserializer"
)

func newPermittedCmd(flags *globalFlags) *cobra.Command {
	var schemaName string

	cmd := &cobra.Command{
		Use:   "permitted",
		Short: "print the input keys a definition may read, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSchema(flags.definitions, schemaName)
			if err != nil {
				return err
			}

			for _, key := range deserializer.PermittedInputKeys(s) {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), key); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&schemaName, "schema", "s", "", "definition to inspect")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}
