package definition

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the only definition file format understood.
const CurrentVersion = "1"

// ErrUnsupportedVersion is returned for files declaring another version.
var ErrUnsupportedVersion = errors.New("unsupported definition file version")

// LoadFile reads one definition file. Every definition remembers the path
// it came from, so diagnostics can point back at it.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f.Source = path
	for i := range f.Definitions {
		f.Definitions[i].Source = path
	}

	return f, nil
}

// LoadFiles reads several definition files into one File, in argument
// order. Definitions may reference deserializers declared in any of them;
// a name declared twice is left for Validate to report.
func LoadFiles(paths ...string) (*File, error) {
	if len(paths) == 0 {
		return nil, errors.New("no definition files given")
	}

	if len(paths) == 1 {
		return LoadFile(paths[0])
	}

	combined := &File{Version: CurrentVersion, Source: strings.Join(paths, ",")}

	for _, path := range paths {
		f, err := LoadFile(path)
		if err != nil {
			return nil, err
		}

		combined.Definitions = append(combined.Definitions, f.Definitions...)
		combined.Converters = append(combined.Converters, f.Converters...)
	}

	return combined, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse definition YAML: %w", err)
	}

	if err := applyDefaults(&f); err != nil {
		return nil, err
	}

	return &f, nil
}

// applyDefaults fills in the version and trims names and expressions, which
// YAML block scalars tend to pad.
func applyDefaults(f *File) error {
	switch f.Version {
	case "":
		f.Version = CurrentVersion
	case CurrentVersion:
	default:
		return fmt.Errorf("%w %q", ErrUnsupportedVersion, f.Version)
	}

	for i := range f.Definitions {
		d := &f.Definitions[i]
		d.Name = strings.TrimSpace(d.Name)

		for j := range d.Fields {
			d.Fields[j].Deserializer = strings.TrimSpace(d.Fields[j].Deserializer)
		}
	}

	for i := range f.Converters {
		c := &f.Converters[i]
		c.Name = strings.TrimSpace(c.Name)
		c.Expr = strings.TrimSpace(c.Expr)
	}

	return nil
}

// Marshal serializes a File to YAML. Source paths are not written.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal definitions: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write definition file %s: %w", path, err)
	}

	return nil
}
