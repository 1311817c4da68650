package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"param-deserializer/deserializer"
)

type runParams struct {
	schema      string
	params      string
	format      string
	jsonapi     bool
	dasherized  bool
	parallelism int
}

func newRunCmd(flags *globalFlags) *cobra.Command {
	p := runParams{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "deserialize params with a definition and print the result as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDeserialize(cmd, flags, p)
		},
	}
	cmd.Flags().StringVarP(&p.schema, "schema", "s", "", "definition to deserialize with")
	cmd.Flags().StringVarP(&p.params, "params", "p", "-", `params file, or "-" for stdin`)
	cmd.Flags().StringVar(&p.format, "format", "", "params format: json or yaml (default: by file extension)")
	cmd.Flags().BoolVar(&p.jsonapi, "jsonapi", false, "read params as a JSON:API resource document")
	cmd.Flags().BoolVar(&p.dasherized, "dasherized", false, "convert JSON:API attribute keys to snake_case")
	cmd.Flags().IntVar(&p.parallelism, "parallelism", 1, "has_many elements resolved concurrently")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}

func runDeserialize(cmd *cobra.Command, flags *globalFlags, p runParams) error {
	log := newLogger(cmd, flags.verbose)

	s, err := loadSchema(flags.definitions, p.schema)
	if err != nil {
		return err
	}

	in, err := readParams(cmd.InOrStdin(), p.params, p.format, s.Name())
	if err != nil {
		return err
	}

	opts := []deserializer.Option{
		deserializer.WithLogger(log),
		deserializer.WithParallelism(p.parallelism),
	}
	if p.dasherized {
		opts = append(opts, deserializer.WithDasherizedAttributes())
	}

	d := deserializer.New(opts...)

	var out any

	if p.jsonapi {
		out, err = d.DeserializeJSONAPI(s, in, func(id, typ any) {
			log.WithField("id", id).WithField("type", typ).Debug("JSON:API resource")
		})
	} else {
		out, err = d.Deserialize(s, in)
	}

	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))

	return err
}
