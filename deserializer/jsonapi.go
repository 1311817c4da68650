package deserializer

import (
	"param-deserializer/params"
	"param-deserializer/schema"
)

// DeserializeJSONAPI reads a JSON:API resource document. The resource id and
// type from "data" are passed to yield when it is non-nil, then
// "data.attributes" is deserialized by s. A document without attributes is
// an InputError, like nil params.
func (d *Deserializer) DeserializeJSONAPI(
	s *schema.Schema, doc *params.Map, yield func(id, typ any),
) (*params.Map, error) {
	if doc == nil {
		return nil, newInputError(s.Name(), "JSON:API document cannot be nil")
	}

	data := params.New()
	if raw, ok := doc.Get("data"); ok {
		if m, isMap := params.AsMap(raw); isMap {
			data = m
		}
	}

	if yield != nil {
		id, _ := data.Get("id")
		typ, _ := data.Get("type")
		yield(id, typ)
	}

	raw, _ := data.Get("attributes")

	attributes, ok := params.AsMap(raw)
	if !ok {
		return nil, newInputError(s.Name(), "params cannot be nil")
	}

	if d.attributeKey != nil {
		attributes = rekey(attributes, d.attributeKey)
	}

	return d.Deserialize(s, attributes)
}

// DeserializeJSONAPI reads a JSON:API document with the default Deserializer.
func DeserializeJSONAPI(s *schema.Schema, doc *params.Map, yield func(id, typ any)) (*params.Map, error) {
	return defaultDeserializer.DeserializeJSONAPI(s, doc, yield)
}

// rekey returns a copy of m with every mapping key, at any depth, passed
// through fn.
func rekey(m *params.Map, fn func(string) string) *params.Map {
	out := params.New()
	for key, v := range m.All() {
		out.Set(fn(key), rekeyValue(v, fn))
	}

	return out
}

func rekeyValue(v any, fn func(string) string) any {
	if m, ok := params.AsMap(v); ok {
		return rekey(m, fn)
	}

	if list, ok := v.([]any); ok {
		out := make([]any, len(list))
		for i, item := range list {
			out[i] = rekeyValue(item, fn)
		}

		return out
	}

	return v
}
