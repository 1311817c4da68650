package deserializer

import "errors"

// ErrInput is matched by every InputError.
var ErrInput = errors.New("invalid deserializer input")

// InputError reports input the deserializer cannot start from, such as nil
// params.
type InputError struct {
	Schema  string
	Message string
}

func newInputError(schema, message string) *InputError {
	return &InputError{Schema: schema, Message: message}
}

func (e *InputError) Error() string {
	return e.Schema + ": " + e.Message
}

func (e *InputError) Unwrap() error {
	return ErrInput
}
