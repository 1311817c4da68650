package schema

import "fmt"

// TargetKind tells where a has-one result is written.
type TargetKind int

const (
	// TargetDefault writes under the association's own name.
	TargetDefault TargetKind = iota
	// TargetIdentity merges the result into the current output object.
	TargetIdentity
	// TargetAlias writes, or merges, under another key.
	TargetAlias
)

// Target is the result of a has-one target override.
type Target struct {
	kind TargetKind
	key  string
}

// TargetFunc is a target-override capability for the has-one of the same
// name. It is evaluated once per resolution of that association.
type TargetFunc func() Target

// NoOverride keeps the default target.
func NoOverride() Target { return Target{kind: TargetDefault} }

// Identity targets the output object being built.
func Identity() Target { return Target{kind: TargetIdentity} }

// AliasKey targets another output key.
func AliasKey(key string) Target { return Target{kind: TargetAlias, key: key} }

// Kind returns the target kind.
func (t Target) Kind() TargetKind { return t.kind }

// Key returns the alias key; it is empty unless Kind is TargetAlias.
func (t Target) Key() string { return t.key }

func (t Target) String() string {
	switch t.kind {
	case TargetIdentity:
		return "identity"
	case TargetAlias:
		return fmt.Sprintf("alias(%s)", t.key)
	default:
		return "default"
	}
}
