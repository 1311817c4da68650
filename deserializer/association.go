package deserializer

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"param-deserializer/params"
	"param-deserializer/schema"
)

// sent reports whether an association received data under key. A missing
// key, nil or false all mean nothing was sent.
func (r *run) sent(key string) (any, bool) {
	v, ok := r.input.Get(key)
	if !ok || v == nil || v == false {
		return nil, false
	}

	return v, true
}

// subInput returns the mapping a sub-schema runs over. Values that are not
// mappings are read as an empty mapping, so only declared keys ever matter.
func subInput(v any) *params.Map {
	if m, ok := params.AsMap(v); ok {
		return m
	}

	return params.New()
}

// resolveHasOne deserializes the association and decides where the result
// lands: under its own name, under an alias key, or flattened into the
// output object itself. Collisions with earlier writes are deep-merged by
// the caller.
func (r *run) resolveHasOne(f schema.FieldSpec, log logrus.FieldLogger) (*params.Map, error) {
	raw, ok := r.sent(f.Name())
	if !ok {
		return nil, nil
	}

	sub, err := r.d.Deserialize(f.SubSchema(), subInput(raw))
	if err != nil {
		return nil, err
	}

	target := schema.NoOverride()
	if f.HasOverride() {
		target = f.Override()()
	}

	log.WithField("target", target.String()).Debug("has_one resolved")

	switch target.Kind() {
	case schema.TargetIdentity:
		return sub, nil
	case schema.TargetAlias:
		return single(target.Key(), sub), nil
	default:
		return single(f.Name(), sub), nil
	}
}

// resolveHasMany deserializes every element in input order. A single
// mapping sent instead of a list is read as a list of one.
func (r *run) resolveHasMany(f schema.FieldSpec) (*params.Map, error) {
	raw, ok := r.sent(f.InputKey())
	if !ok {
		return nil, nil
	}

	items, ok := params.AsList(raw)
	if !ok {
		items = []any{raw}
	}

	results := make([]any, len(items))

	if r.d.parallelism < 2 {
		for i, item := range items {
			out, err := r.d.Deserialize(f.SubSchema(), subInput(item))
			if err != nil {
				return nil, err
			}

			results[i] = out
		}

		return single(f.Name(), results), nil
	}

	var g errgroup.Group

	g.SetLimit(r.d.parallelism)

	for i, item := range items {
		g.Go(func() error {
			out, err := r.d.Deserialize(f.SubSchema(), subInput(item))
			if err != nil {
				return err
			}

			results[i] = out

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return single(f.Name(), results), nil
}

// resolveNested runs the whole current input through the nested schema.
// The result is always written, even when empty.
func (r *run) resolveNested(f schema.FieldSpec) (*params.Map, error) {
	sub, err := r.d.Deserialize(f.SubSchema(), r.input)
	if err != nil {
		return nil, err
	}

	return single(f.Name(), sub), nil
}
