package params

import (
	"fmt"
	"iter"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// Map is an insertion-ordered mapping of string keys to values.
//
// A nil *Map stands for "no input" and is distinct from an empty Map.
// Read methods are safe on a nil receiver and behave as on an empty Map.
type Map struct {
	keys   []string
	values map[string]any
}

// New returns an empty Map.
func New() *Map {
	return &Map{values: make(map[string]any)}
}

// FromPairs builds a Map from alternating key/value arguments.
// It panics on an odd number of arguments or a non-string key.
func FromPairs(kv ...any) *Map {
	if len(kv)%2 != 0 {
		panic("params: FromPairs requires an even number of arguments")
	}

	m := New()

	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("params: FromPairs key at %d is %T, not string", i, kv[i]))
		}

		m.Set(key, kv[i+1])
	}

	return m
}

// FromPlain converts a plain map into a Map. Keys are sorted since Go maps
// carry no order; nested plain maps and slices are converted recursively.
func FromPlain(src map[string]any) *Map {
	if src == nil {
		return nil
	}

	m := New()
	for _, key := range slices.Sorted(maps.Keys(src)) {
		m.Set(key, Normalize(src[key]))
	}

	return m
}

// Normalize converts plain maps found anywhere in v into *Map values.
func Normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return FromPlain(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Normalize(item)
		}

		return out
	default:
		return v
	}
}

// AsMap reports whether v is a mapping and returns it as a *Map.
func AsMap(v any) (*Map, bool) {
	switch val := v.(type) {
	case *Map:
		return val, val != nil
	case map[string]any:
		return FromPlain(val), val != nil
	default:
		return nil, false
	}
}

// AsList reports whether v is a sequence and returns it as a []any.
func AsList(v any) ([]any, bool) {
	switch val := v.(type) {
	case []any:
		return val, true
	case []*Map:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = item
		}

		return out, true
	case []map[string]any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = item
		}

		return out, true
	default:
		return nil, false
	}
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Has reports whether key is present, regardless of its value.
func (m *Map) Has(key string) bool {
	if m == nil {
		return false
	}

	_, ok := m.values[key]

	return ok
}

// Get returns the value stored under key and whether it was present.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}

	v, ok := m.values[key]

	return v, ok
}

// Set stores value under key. An existing key keeps its position.
func (m *Map) Set(key string, value any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}

	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.values[key] = value
}

// Delete removes key if present.
func (m *Map) Delete(key string) {
	if m == nil {
		return
	}

	if _, ok := m.values[key]; !ok {
		return
	}

	delete(m.values, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })
}

// Keys returns a copy of the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}

	return slices.Clone(m.keys)
}

// All iterates over key/value pairs in insertion order.
func (m *Map) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if m == nil {
			return
		}

		for _, key := range m.keys {
			if !yield(key, m.values[key]) {
				return
			}
		}
	}
}

// Clone returns a deep copy. Nested maps and slices are copied too,
// scalars are shared.
func (m *Map) Clone() *Map {
	if m == nil {
		return nil
	}

	out := &Map{
		keys:   slices.Clone(m.keys),
		values: make(map[string]any, len(m.values)),
	}

	for key, v := range m.values {
		out.values[key] = cloneValue(v)
	}

	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case *Map:
		return val.Clone()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}

		return out
	default:
		return v
	}
}

// Plain converts the Map into nested map[string]any / []any values.
func (m *Map) Plain() map[string]any {
	if m == nil {
		return nil
	}

	out := make(map[string]any, len(m.keys))
	for key, v := range m.All() {
		out[key] = PlainValue(v)
	}

	return out
}

// PlainValue converts any *Map found in v into map[string]any.
func PlainValue(v any) any {
	switch val := v.(type) {
	case *Map:
		return val.Plain()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = PlainValue(item)
		}

		return out
	default:
		return v
	}
}

// Equal reports structural equality, ignoring key order.
func (m *Map) Equal(other *Map) bool {
	if m.Len() != other.Len() {
		return false
	}

	if m == nil || other == nil {
		return m == other
	}

	for key, v := range m.All() {
		ov, ok := other.Get(key)
		if !ok || !valuesEqual(v, ov) {
			return false
		}
	}

	return true
}

func valuesEqual(a, b any) bool {
	am, aIsMap := AsMap(a)
	bm, bIsMap := AsMap(b)

	if aIsMap || bIsMap {
		return aIsMap && bIsMap && am.Equal(bm)
	}

	al, aIsList := a.([]any)
	bl, bIsList := b.([]any)

	if aIsList || bIsList {
		return aIsList && bIsList && slices.EqualFunc(al, bl, valuesEqual)
	}

	return reflect.DeepEqual(a, b)
}

// String renders the Map in insertion order, e.g. {a: 1, b: {c: x}}.
func (m *Map) String() string {
	if m == nil {
		return "<nil>"
	}

	var sb strings.Builder

	sb.WriteByte('{')

	first := true
	for key, v := range m.All() {
		if !first {
			sb.WriteString(", ")
		}

		first = false

		fmt.Fprintf(&sb, "%s: %v", key, v)
	}

	sb.WriteByte('}')

	return sb.String()
}
