package schema

import (
	"slices"

	"github.com/samber/lo"
)

// Schema is an ordered sequence of field declarations. Two fields may write
// to the same output key; they are resolved in declaration order.
//
// A Schema is immutable and safe for concurrent use.
type Schema struct {
	name   string
	fields []FieldSpec
}

// Name is the schema name used in error messages.
func (s *Schema) Name() string {
	return s.name
}

// Fields returns the field declarations in declaration order.
func (s *Schema) Fields() []FieldSpec {
	return slices.Clone(s.fields)
}

// Len returns the number of declared fields.
func (s *Schema) Len() int {
	return len(s.fields)
}

// PermittedInputKeys returns, in declaration order and without duplicates,
// every input key a deserialization pass may read: the input key of value
// and has-many fields, the name of has-one fields, and for nested fields the
// keys permitted by the nested schema, since it reads the same input.
func (s *Schema) PermittedInputKeys() []string {
	var keys []string

	for _, f := range s.fields {
		switch f.kind {
		case KindValue, KindHasMany:
			keys = append(keys, f.InputKey())
		case KindHasOne:
			keys = append(keys, f.name)
		case KindNested:
			keys = append(keys, f.sub.PermittedInputKeys()...)
		}
	}

	return lo.Uniq(keys)
}

func (s *Schema) String() string {
	return s.name
}
