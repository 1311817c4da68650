package definition

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// fieldDefYAML is the mapping form of a FieldDef. Exactly one relation key
// is expected to be set.
type fieldDefYAML struct {
	Attribute    string `yaml:"attribute,omitempty"`
	HasOne       string `yaml:"has_one,omitempty"`
	HasMany      string `yaml:"has_many,omitempty"`
	Nests        string `yaml:"nests,omitempty"`
	BelongsTo    string `yaml:"belongs_to,omitempty"`
	Key          string `yaml:"key,omitempty"`
	IgnoreEmpty  bool   `yaml:"ignore_empty,omitempty"`
	ConvertWith  string `yaml:"convert_with,omitempty"`
	Deserializer string `yaml:"deserializer,omitempty"`
	Target       string `yaml:"target,omitempty"`
}

func (y fieldDefYAML) relations() map[string]string {
	set := map[string]string{}

	for rel, name := range map[string]string{
		RelationAttribute: y.Attribute,
		RelationHasOne:    y.HasOne,
		RelationHasMany:   y.HasMany,
		RelationNests:     y.Nests,
		RelationBelongsTo: y.BelongsTo,
	} {
		if name != "" {
			set[rel] = name
		}
	}

	return set
}

var errNoRelation = errors.New("field needs one of attribute, has_one, has_many, nests")

// UnmarshalYAML implements custom YAML unmarshaling for FieldDef.
// Accepts:
//   - Bare name: user_id
//   - Mapping: {attribute: text, key: body}
//   - Association: {has_one: thing, deserializer: Basic, target: info}
func (f *FieldDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}

		*f = FieldDef{Relation: RelationAttribute, Name: name}

		return nil

	case yaml.MappingNode:
		var raw fieldDefYAML
		if err := node.Decode(&raw); err != nil {
			return err
		}

		rels := raw.relations()
		switch len(rels) {
		case 0:
			return fmt.Errorf("line %d: %w", node.Line, errNoRelation)
		case 1:
		default:
			keys := make([]string, 0, len(rels))
			for rel := range rels {
				keys = append(keys, rel)
			}

			slices.Sort(keys)

			return fmt.Errorf("line %d: field declares several relations: %s", node.Line, strings.Join(keys, ", "))
		}

		for rel, name := range rels {
			*f = FieldDef{
				Relation:     rel,
				Name:         name,
				Key:          raw.Key,
				IgnoreEmpty:  raw.IgnoreEmpty,
				ConvertWith:  raw.ConvertWith,
				Deserializer: raw.Deserializer,
				Target:       raw.Target,
			}
		}

		return nil

	default:
		return fmt.Errorf("line %d: expected field name or mapping, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for FieldDef.
// Plain attributes are written back as a bare name.
func (f FieldDef) MarshalYAML() (any, error) {
	if f.IsShorthand() {
		return f.Name, nil
	}

	out := fieldDefYAML{
		Key:          f.Key,
		IgnoreEmpty:  f.IgnoreEmpty,
		ConvertWith:  f.ConvertWith,
		Deserializer: f.Deserializer,
		Target:       f.Target,
	}

	switch f.Relation {
	case RelationAttribute:
		out.Attribute = f.Name
	case RelationHasOne:
		out.HasOne = f.Name
	case RelationHasMany:
		out.HasMany = f.Name
	case RelationNests:
		out.Nests = f.Name
	case RelationBelongsTo:
		out.BelongsTo = f.Name
	default:
		return nil, fmt.Errorf("field %q: unknown relation %q", f.Name, f.Relation)
	}

	return out, nil
}
