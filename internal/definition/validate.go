package definition

import (
	"errors"
	"fmt"

	"param-deserializer/internal/diagnostic"
	"param-deserializer/internal/match"
)

// Validate checks a definition file against the converters available in
// registry. It reports every problem it finds instead of stopping at the
// first one.
func Validate(f *File, registry *ConverterRegistry) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("definition_file_is_nil", "definition file is nil", "", "")
		return res
	}

	known := map[string]struct{}{}
	sources := map[string]string{}

	for i := range f.Definitions {
		d := &f.Definitions[i]

		switch {
		case d.Name == "":
			res.AddError("definition_name_empty", fmt.Sprintf("definition #%d has no name", i+1), "", "")
		case hasKey(known, d.Name):
			msg := fmt.Sprintf("definition %q is declared more than once", d.Name)
			if first := sources[d.Name]; first != d.Source {
				msg += fmt.Sprintf(" (in %s and %s)", first, d.Source)
			}

			res.AddError("duplicate_definition", msg, d.Name, "")
		default:
			known[d.Name] = struct{}{}
			sources[d.Name] = d.Source
		}

		if len(d.Fields) == 0 {
			res.AddWarning("empty_definition", "definition has no fields and always deserializes to an empty object", d.Name, "")
		}
	}

	names := f.Names()
	converters := registry.Names()

	for i := range f.Definitions {
		d := &f.Definitions[i]

		seen := map[string]struct{}{}

		for j := range d.Fields {
			fd := &d.Fields[j]

			if fd.Name != "" {
				if hasKey(seen, fd.Name) {
					res.AddWarning("duplicate_field",
						fmt.Sprintf("field %q is declared more than once; later declarations win", fd.Name), d.Name, fd.Name)
				}

				seen[fd.Name] = struct{}{}
			}

			validateField(res, d.Name, fd, known, names, registry, converters)
		}
	}

	if _, err := dependencyOrder(f.Definitions); err != nil {
		var cycle *cycleError
		if errors.As(err, &cycle) {
			for _, i := range cycle.nodes {
				d := f.Definitions[i]
				res.AddError("dependency_cycle",
					fmt.Sprintf("definition is part of a dependency cycle through %v", d.Dependencies()), d.Name, "")
			}
		} else {
			res.AddError("dependency_order", err.Error(), "", "")
		}
	}

	return res
}

func validateField(
	res *diagnostic.Diagnostics,
	def string,
	fd *FieldDef,
	known map[string]struct{},
	names []string,
	registry *ConverterRegistry,
	converters []string,
) {
	if fd.Name == "" {
		res.AddError("field_name_empty", fmt.Sprintf("%s field has no name", fd.Relation), def, "")
	}

	kind, ok := fd.Kind()
	if !ok {
		if fd.Relation == RelationBelongsTo {
			res.AddError("unsupported_relation", "belongs_to is unsupported.", def, fd.Name)
		} else {
			res.AddError("unknown_relation", fmt.Sprintf("unknown relation %q", fd.Relation), def, fd.Name)
		}

		return
	}

	if !kind.IsAssociation() {
		if fd.Deserializer != "" {
			res.AddError("option_not_supported", "deserializer only applies to associations", def, fd.Name)
		}

		if fd.Target != "" {
			res.AddError("option_not_supported", "target only applies to has_one associations", def, fd.Name)
		}

		if fd.ConvertWith != "" && !registry.Has(fd.ConvertWith) {
			res.AddError("unknown_converter", fmt.Sprintf("unknown converter %q", fd.ConvertWith), def, fd.Name,
				match.Suggest(fd.ConvertWith, converters)...)
		}

		return
	}

	if fd.Key != "" && fd.Relation != RelationHasMany {
		res.AddError("option_not_supported", "key only applies to attributes and has_many associations", def, fd.Name)
	}

	if fd.IgnoreEmpty {
		res.AddError("option_not_supported", "ignore_empty only applies to attributes", def, fd.Name)
	}

	if fd.ConvertWith != "" {
		res.AddError("option_not_supported", "convert_with only applies to attributes", def, fd.Name)
	}

	if fd.Target != "" && fd.Relation != RelationHasOne {
		res.AddError("option_not_supported", "target only applies to has_one associations", def, fd.Name)
	}

	switch {
	case fd.Deserializer == "":
		res.AddError("missing_deserializer", fmt.Sprintf("%s associations need a deserializer", kind), def, fd.Name)
	case !hasKey(known, fd.Deserializer):
		res.AddError("unknown_deserializer", fmt.Sprintf("unknown deserializer %q", fd.Deserializer), def, fd.Name,
			match.Suggest(fd.Deserializer, names)...)
	}
}

func hasKey(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
