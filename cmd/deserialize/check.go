package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"param-deserializer/internal/definition"
)

func newCheckCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "validate definition files and print their diagnostics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(cmd, flags.verbose)

			f, err := definition.LoadFiles(flags.definitions...)
			if err != nil {
				return err
			}

			_, res := definition.Check(f, nil)

			out := cmd.OutOrStdout()
			for _, d := range res.All() {
				fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
			}

			log.WithField("errors", len(res.Errors)).
				WithField("warnings", len(res.Warnings)).
				Debug("definitions checked")

			if res.HasErrors() {
				return errInvalidDefinitions
			}

			fmt.Fprintf(out, "ok: %d definitions\n", len(f.Definitions))

			return nil
		},
	}
}
