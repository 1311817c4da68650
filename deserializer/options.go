package deserializer

import (
	"github.com/iancoleman/strcase"
	"github.com/sirupsen/logrus"
)

// Option configures a Deserializer.
type Option func(*Deserializer)

// WithLogger sets the logger that receives per-field debug entries.
func WithLogger(log logrus.FieldLogger) Option {
	return func(d *Deserializer) {
		if log != nil {
			d.log = log
		}
	}
}

// WithParallelism resolves up to n has-many elements concurrently.
// Values below 2 keep resolution sequential. Element order is preserved.
func WithParallelism(n int) Option {
	return func(d *Deserializer) {
		d.parallelism = n
	}
}

// WithDasherizedAttributes converts JSON:API attribute keys such as
// "user-id" or "userId" to snake_case before resolution.
func WithDasherizedAttributes() Option {
	return func(d *Deserializer) {
		d.attributeKey = strcase.ToSnake
	}
}
