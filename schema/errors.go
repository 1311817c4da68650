package schema

import "errors"

// ErrConfiguration is matched by every ConfigurationError.
var ErrConfiguration = errors.New("schema configuration error")

// ConfigurationError reports a schema declared incorrectly. It is only ever
// returned while a schema is built.
type ConfigurationError struct {
	Schema  string
	Message string
}

func newConfigError(schema, message string) *ConfigurationError {
	return &ConfigurationError{Schema: schema, Message: message}
}

func (e *ConfigurationError) Error() string {
	return e.Schema + ": " + e.Message
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}
