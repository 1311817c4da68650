package schema

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind is the closed set of field kinds a schema can declare.
type Kind int

const (
	_ Kind = iota // zero value is not a valid kind

	KindValue   // value
	KindHasOne  // has_one
	KindHasMany // has_many
	KindNested  // nested

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsAssociation reports whether fields of this kind are resolved through a
// sub-schema.
func (k Kind) IsAssociation() bool {
	switch k {
	default:
		return false
	case KindHasOne, KindHasMany, KindNested:
		return true
	}
}

// ParseKind maps a kind name as printed by String back to a Kind.
func ParseKind(s string) (Kind, bool) {
	for k := KindValue; int(k) < KindTotal; k++ {
		if k.String() == s {
			return k, true
		}
	}

	return 0, false
}
