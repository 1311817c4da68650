package schema

import (
	"errors"
	"fmt"
)

// Builder declares the fields of a schema. Every declaration error is
// returned immediately and also remembered, so Build fails on it too.
type Builder struct {
	name       string
	fields     []FieldSpec
	converters map[string]Converter
	overrides  map[string]TargetFunc
	errs       []error
}

// NewBuilder starts a schema with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:       name,
		converters: make(map[string]Converter),
		overrides:  make(map[string]TargetFunc),
	}
}

func (b *Builder) fail(message string) error {
	err := newConfigError(b.name, message)
	b.errs = append(b.errs, err)

	return err
}

// Attribute declares a value field.
func (b *Builder) Attribute(name string, opts ...ValueOption) error {
	if name == "" {
		return b.fail("attribute name cannot be empty")
	}

	f := FieldSpec{name: name, kind: KindValue}
	for _, opt := range opts {
		opt(&f)
	}

	b.fields = append(b.fields, f)

	return nil
}

// Attributes declares several plain value fields.
func (b *Builder) Attributes(names ...string) error {
	var errs []error

	for _, name := range names {
		if err := b.Attribute(name); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// HasOne declares a one-to-one association deserialized by sub.
func (b *Builder) HasOne(name string, sub *Schema) error {
	return b.association(KindHasOne, name, sub)
}

// HasMany declares a one-to-many association, each element deserialized
// by sub. Key is the only option it accepts: it reads the list from a
// differently named input key while still writing under name.
func (b *Builder) HasMany(name string, sub *Schema, opts ...ValueOption) error {
	declared := FieldSpec{}
	for _, opt := range opts {
		opt(&declared)
	}

	if declared.ignoreEmpty || declared.converterName != "" {
		return b.fail(fmt.Sprintf("has_many %q only accepts the Key option", name))
	}

	if err := b.association(KindHasMany, name, sub); err != nil {
		return err
	}

	b.fields[len(b.fields)-1].inputKey = declared.inputKey

	return nil
}

// Nests declares a nested association: the whole input is deserialized by
// sub and stored under name.
func (b *Builder) Nests(name string, sub *Schema) error {
	return b.association(KindNested, name, sub)
}

// BelongsTo is not supported and always fails.
func (b *Builder) BelongsTo(...any) error {
	return b.fail("belongs_to is unsupported.")
}

func (b *Builder) association(kind Kind, name string, sub *Schema) error {
	if sub == nil {
		return b.fail(kind.String() + " associations need a deserializer")
	}

	if name == "" {
		return b.fail(kind.String() + " association name cannot be empty")
	}

	b.fields = append(b.fields, FieldSpec{name: name, kind: kind, sub: sub})

	return nil
}

// Converter registers a converter capability referenced by ConvertWith.
func (b *Builder) Converter(name string, fn Converter) error {
	if fn == nil {
		return b.fail(fmt.Sprintf("converter %q is nil", name))
	}

	b.converters[name] = fn

	return nil
}

// Override registers the target override of the has-one named name.
// Overrides for names that are not has-one fields are never consulted.
func (b *Builder) Override(name string, fn TargetFunc) error {
	if fn == nil {
		return b.fail(fmt.Sprintf("override %q is nil", name))
	}

	b.overrides[name] = fn

	return nil
}

// Build freezes the declarations into a Schema. Converter references are
// resolved here, so a Schema never fails on configuration later.
func (b *Builder) Build() (*Schema, error) {
	errs := append([]error(nil), b.errs...)
	fields := make([]FieldSpec, len(b.fields))

	for i, f := range b.fields {
		if f.converterName != "" {
			conv, ok := b.converters[f.converterName]
			if !ok {
				errs = append(errs, newConfigError(b.name,
					fmt.Sprintf("attribute %q converts with unknown converter %q", f.name, f.converterName)))
			}

			f.converter = conv
		}

		if f.kind == KindHasOne {
			f.override = b.overrides[f.name]
		}

		fields[i] = f
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Schema{name: b.name, fields: fields}, nil
}

// Must panics if err is non-nil. It is meant for package-level schema
// variables.
func Must(s *Schema, err error) *Schema {
	if err != nil {
		panic(err)
	}

	return s
}
