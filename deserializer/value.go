package deserializer

import (
	"fmt"

	"param-deserializer/params"
	"param-deserializer/schema"
)

// resolveValue copies one value field. A key that was not sent produces
// nothing, while a key sent as false or nil is copied through unless the
// field ignores empty values.
func (r *run) resolveValue(f schema.FieldSpec) (*params.Map, error) {
	raw, ok := r.input.Get(f.InputKey())
	if !ok {
		return nil, nil
	}

	if f.IgnoreEmpty() && params.IsEmpty(raw) {
		return nil, nil
	}

	value := raw

	if conv := f.Converter(); conv != nil {
		converted, err := conv(raw)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: convert with %s: %w", r.schema.Name(), f.Name(), f.ConverterName(), err)
		}

		value = converted
	}

	return single(f.Name(), value), nil
}
