// Package main provides the deserialize CLI.
//
// deserialize runs deserializer definitions written in YAML against request
// params:
//   - run: deserialize params (JSON or YAML, plain or JSON:API) and print JSON
//   - permitted: list the input keys a schema may read
//   - check: validate a definition file and print diagnostics
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := execRootCmd(os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	definitions []string
	verbose     bool
}

func execRootCmd(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:           "deserialize",
		Short:         "turn request params into model attributes with YAML deserializer definitions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringSliceVarP(&flags.definitions, "definitions", "d", nil, "YAML definition files, repeat or comma-separate for several")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log every field resolution")
	_ = rootCmd.MarkPersistentFlagRequired("definitions")

	rootCmd.AddCommand(
		newRunCmd(flags),
		newPermittedCmd(flags),
		newCheckCmd(flags),
	)

	rootCmd.SetArgs(args[1:])
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	return rootCmd.Execute()
}

func newLogger(cmd *cobra.Command, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

var errInvalidDefinitions = errors.New("definition file has errors")
