// Package params holds the value model shared by schemas and the
// deserializer: an insertion-ordered Map, the emptiness predicate used by
// ignore-empty fields, and the deep merge that reconciles writes to the same
// output key.
//
// Values are nil, scalars, *Map, []any or plain map[string]any (accepted on
// input and normalized on demand). JSON and YAML documents decode into a Map
// without losing key order.
package params
