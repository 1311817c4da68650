package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"param-deserializer/deserializer"
	"param-deserializer/internal/definition"
	"param-deserializer/internal/match"
	"param-deserializer/params"
	"param-deserializer/schema"
)

// loadSchema compiles the definition files and picks the named schema.
func loadSchema(paths []string, name string) (*schema.Schema, error) {
	f, err := definition.LoadFiles(paths...)
	if err != nil {
		return nil, err
	}

	schemas, err := definition.Compile(f, nil)
	if err != nil {
		return nil, err
	}

	s, ok := schemas[name]
	if !ok {
		msg := fmt.Sprintf("no definition named %q in %s", name, f.Source)
		if suggestions := match.Suggest(name, f.Names()); len(suggestions) > 0 {
			msg += " (did you mean " + strings.Join(suggestions, ", ") + "?)"
		}

		return nil, errors.New(msg)
	}

	return s, nil
}

// readParams reads params from path, or from stdin when path is "-".
// YAML is chosen by the .yaml/.yml extension or format "yaml"; anything
// else is JSON.
func readParams(stdin io.Reader, path, format, schemaName string) (*params.Map, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read params: %w", err)
	}

	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "json"
		}
	}

	var p *params.Map

	switch format {
	case "yaml":
		p, err = params.ParseYAML(data)
	case "json":
		p, err = params.ParseJSON(data)
	default:
		return nil, fmt.Errorf("unknown params format %q", format)
	}

	if err != nil {
		return nil, &deserializer.InputError{Schema: schemaName, Message: err.Error()}
	}

	return p, nil
}
