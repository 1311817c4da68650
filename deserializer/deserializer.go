package deserializer

import (
	"github.com/sirupsen/logrus"

	"param-deserializer/params"
	"param-deserializer/schema"
)

// Deserializer turns input params into output objects according to a
// schema. It holds configuration only and is safe for concurrent use. The
// zero value resolves sequentially and logs to the standard logger.
type Deserializer struct {
	log          logrus.FieldLogger
	parallelism  int
	attributeKey func(string) string
}

// New returns a Deserializer configured by opts.
func New(opts ...Option) *Deserializer {
	d := &Deserializer{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

var defaultDeserializer = New()

// logger falls back to the standard logger for a zero Deserializer.
func (d *Deserializer) logger() logrus.FieldLogger {
	if d.log == nil {
		return logrus.StandardLogger()
	}

	return d.log
}

// Deserialize runs s over p with the default Deserializer.
func Deserialize(s *schema.Schema, p *params.Map) (*params.Map, error) {
	return defaultDeserializer.Deserialize(s, p)
}

// PermittedInputKeys returns the input keys a pass of s may read, for
// allow-listing request params.
func PermittedInputKeys(s *schema.Schema) []string {
	return s.PermittedInputKeys()
}

// Deserialize resolves every field of s against p in declaration order and
// returns the output mapping. p is never modified. A nil p is an InputError;
// an empty one is valid. Any error aborts the call without partial output.
func (d *Deserializer) Deserialize(s *schema.Schema, p *params.Map) (*params.Map, error) {
	if p == nil {
		return nil, newInputError(s.Name(), "params cannot be nil")
	}

	r := &run{
		d:      d,
		schema: s,
		input:  p,
		output: params.New(),
		log:    d.logger().WithField("schema", s.Name()),
	}

	if err := r.resolve(); err != nil {
		return nil, err
	}

	return r.output, nil
}
