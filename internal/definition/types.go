package definition

import (
	"param-deserializer/schema"
)

// ObjectTarget is the has_one target that merges the association into the
// parent object instead of nesting it.
const ObjectTarget = "@object"

// Relation keys accepted in a field mapping.
const (
	RelationAttribute = "attribute"
	RelationHasOne    = "has_one"
	RelationHasMany   = "has_many"
	RelationNests     = "nests"
	RelationBelongsTo = "belongs_to"
)

// File is the root of a YAML definition file.
type File struct {
	// Version of the file format.
	Version string `yaml:"version,omitempty"`

	// Definitions declares the deserializers, in any order.
	Definitions []Definition `yaml:"definitions"`

	// Converters declares CEL converters usable by attributes.
	Converters []ConverterDef `yaml:"converters,omitempty"`

	// Source is the path the file was loaded from, if any.
	Source string `yaml:"-"`
}

// Definition declares one deserializer.
type Definition struct {
	Name   string     `yaml:"name"`
	Fields []FieldDef `yaml:"fields,omitempty"`

	// Source is the path of the file declaring the definition, if any.
	Source string `yaml:"-"`
}

// FieldDef declares one field of a definition. In YAML it is either a bare
// attribute name or a mapping keyed by its relation.
type FieldDef struct {
	// Relation is the YAML key the field was declared with, e.g. "has_one".
	Relation string
	// Name is the output key.
	Name string

	// Attribute options.
	Key         string
	IgnoreEmpty bool
	ConvertWith string

	// Association options.
	Deserializer string
	Target       string
}

// ConverterDef declares a converter as a CEL expression over "value".
type ConverterDef struct {
	Name        string `yaml:"name"`
	Expr        string `yaml:"expr"`
	Description string `yaml:"description,omitempty"`
}

// Kind maps the relation to a schema kind. belongs_to and unknown
// relations have none.
func (f FieldDef) Kind() (schema.Kind, bool) {
	switch f.Relation {
	case RelationAttribute:
		return schema.KindValue, true
	case RelationHasOne:
		return schema.KindHasOne, true
	case RelationHasMany:
		return schema.KindHasMany, true
	case RelationNests:
		return schema.KindNested, true
	default:
		return 0, false
	}
}

// IsShorthand reports whether the field round-trips as a bare name.
func (f FieldDef) IsShorthand() bool {
	return f.Relation == RelationAttribute && f.Key == "" && !f.IgnoreEmpty && f.ConvertWith == ""
}

// Lookup returns the definition with the given name.
func (f *File) Lookup(name string) (*Definition, bool) {
	for i := range f.Definitions {
		if f.Definitions[i].Name == name {
			return &f.Definitions[i], true
		}
	}

	return nil, false
}

// Names lists the definition names in file order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Definitions))
	for _, d := range f.Definitions {
		names = append(names, d.Name)
	}

	return names
}

// Dependencies lists the deserializers the definition's associations
// reference, in field order and without repeats.
func (d Definition) Dependencies() []string {
	var deps []string

	seen := map[string]struct{}{}

	for _, f := range d.Fields {
		kind, ok := f.Kind()
		if !ok || !kind.IsAssociation() || f.Deserializer == "" {
			continue
		}

		if _, ok := seen[f.Deserializer]; ok {
			continue
		}

		seen[f.Deserializer] = struct{}{}
		deps = append(deps, f.Deserializer)
	}

	return deps
}
