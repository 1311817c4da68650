package deserializer

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"param-deserializer/params"
	"param-deserializer/schema"
)

// run is the state of one Deserialize call. It is owned by that call only.
type run struct {
	d      *Deserializer
	schema *schema.Schema
	input  *params.Map
	output *params.Map
	log    logrus.FieldLogger
}

func (r *run) resolve() error {
	for _, f := range r.schema.Fields() {
		log := r.log.WithFields(logrus.Fields{"field": f.Name(), "kind": f.Kind().String()})

		partial, err := r.resolveField(f, log)
		if err != nil {
			return err
		}

		if partial == nil {
			log.Debug("field skipped")
			continue
		}

		params.Merge(r.output, partial)
		log.Debug("field resolved")
	}

	return nil
}

func (r *run) resolveField(f schema.FieldSpec, log logrus.FieldLogger) (*params.Map, error) {
	switch f.Kind() {
	case schema.KindValue:
		return r.resolveValue(f)
	case schema.KindHasOne:
		return r.resolveHasOne(f, log)
	case schema.KindHasMany:
		return r.resolveHasMany(f)
	case schema.KindNested:
		return r.resolveNested(f)
	default:
		return nil, fmt.Errorf("%s.%s: unexpected field kind %s", r.schema.Name(), f.Name(), f.Kind())
	}
}

// single wraps one resolved value as a partial output.
func single(key string, value any) *params.Map {
	m := params.New()
	m.Set(key, value)

	return m
}
