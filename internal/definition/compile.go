package definition

import (
	"errors"
	"fmt"

	"param-deserializer/internal/diagnostic"
	"param-deserializer/schema"
)

// ErrInvalidDefinitions is returned by Compile when validation fails.
var ErrInvalidDefinitions = errors.New("invalid definitions")

// Check builds the converter registry for f on top of base and validates
// the file against it. CEL compile failures are reported as
// invalid_converter errors.
func Check(f *File, base *ConverterRegistry) (*ConverterRegistry, *diagnostic.Diagnostics) {
	if f == nil {
		return base.clone(), Validate(nil, nil)
	}

	registry, errs := BuildRegistry(f, base)
	res := &diagnostic.Diagnostics{}

	for _, err := range errs {
		res.AddError("invalid_converter", err.Error(), "", "")
	}

	res.Merge(*Validate(f, registry))

	return registry, res
}

// Compile validates f and builds one schema per definition. Converters
// come from the file's CEL declarations and from base, which may be nil.
func Compile(f *File, base *ConverterRegistry) (map[string]*schema.Schema, error) {
	registry, diags := Check(f, base)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinitions, diags.Error())
	}

	order, err := dependencyOrder(f.Definitions)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinitions, err)
	}

	schemas := make(map[string]*schema.Schema, len(order))

	for _, i := range order {
		d := &f.Definitions[i]

		s, err := buildSchema(d, schemas, registry)
		if err != nil {
			return nil, err
		}

		schemas[d.Name] = s
	}

	return schemas, nil
}

func buildSchema(d *Definition, built map[string]*schema.Schema, registry *ConverterRegistry) (*schema.Schema, error) {
	b := schema.NewBuilder(d.Name)

	for _, fd := range d.Fields {
		switch fd.Relation {
		case RelationAttribute:
			var opts []schema.ValueOption
			if fd.Key != "" {
				opts = append(opts, schema.Key(fd.Key))
			}

			if fd.IgnoreEmpty {
				opts = append(opts, schema.IgnoreEmpty())
			}

			if fd.ConvertWith != "" {
				opts = append(opts, schema.ConvertWith(fd.ConvertWith))

				if c, ok := registry.Get(fd.ConvertWith); ok {
					_ = b.Converter(c.Name, c.Fn)
				}
			}

			_ = b.Attribute(fd.Name, opts...)
		case RelationHasOne:
			_ = b.HasOne(fd.Name, built[fd.Deserializer])

			if fd.Target != "" {
				_ = b.Override(fd.Name, staticTarget(fd.Target))
			}
		case RelationHasMany:
			var opts []schema.ValueOption
			if fd.Key != "" {
				opts = append(opts, schema.Key(fd.Key))
			}

			_ = b.HasMany(fd.Name, built[fd.Deserializer], opts...)
		case RelationNests:
			_ = b.Nests(fd.Name, built[fd.Deserializer])
		case RelationBelongsTo:
			_ = b.BelongsTo(fd.Name, fd.Deserializer)
		}
	}

	return b.Build()
}

// staticTarget turns a YAML target into an override.
func staticTarget(target string) schema.TargetFunc {
	if target == ObjectTarget {
		return schema.Identity
	}

	return func() schema.Target {
		return schema.AliasKey(target)
	}
}
