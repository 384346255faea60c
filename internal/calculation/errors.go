package calculation

import "errors"

// ErrInvalidInput is the single failure kind of the calculators: a
// non-positive primary amount or term, or an amount too large to represent.
var ErrInvalidInput = errors.New("invalid input")

// InputError carries the user-facing message shown in place of a result.
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }

// Unwrap lets callers match with errors.Is(err, ErrInvalidInput).
func (e *InputError) Unwrap() error { return ErrInvalidInput }

func invalidInput(msg string) error { return &InputError{Message: msg} }

// UserMessage extracts the message to display for err. Errors that are not
// input errors yield a generic message.
func UserMessage(err error) string {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie.Message
	}
	return "Unable to calculate an illustration for these values."
}
