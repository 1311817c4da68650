package params

// IsEmpty reports whether v counts as empty for ignore-empty filtering:
// nil, false, "", an empty sequence or an empty mapping.
// Zero numbers are not empty.
func IsEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case string:
		return val == ""
	case []any:
		return len(val) == 0
	case []*Map:
		return len(val) == 0
	case []map[string]any:
		return len(val) == 0
	case *Map:
		return val.Len() == 0
	case map[string]any:
		return len(val) == 0
	default:
		return false
	}
}

// Merge folds src into dst in src's key order and returns dst.
//
// A key missing from dst is appended. When both sides hold mappings they are
// merged recursively into a fresh Map, so mappings shared with the caller are
// never modified. Any other collision is won by the src value.
func Merge(dst, src *Map) *Map {
	if dst == nil {
		dst = New()
	}

	for key, incoming := range src.All() {
		existing, ok := dst.Get(key)
		if !ok {
			dst.Set(key, incoming)
			continue
		}

		dst.Set(key, MergeValue(existing, incoming))
	}

	return dst
}

// MergeValue reconciles two values written to the same key: mappings merge
// key by key, anything else is replaced by incoming.
func MergeValue(existing, incoming any) any {
	em, eIsMap := AsMap(existing)
	im, iIsMap := AsMap(incoming)

	if !eIsMap || !iIsMap {
		return incoming
	}

	merged := New()
	Merge(merged, em)

	return Merge(merged, im)
}
