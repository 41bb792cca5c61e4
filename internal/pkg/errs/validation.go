package errs

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError collects per-field validation messages. Fields keep the
// order in which their first message was added so responses are stable.
//
// Example:
//
//	verr := errs.NewValidationError()
//	if name == "" {
//	    verr.Add("name", "The name field is required.")
//	}
//	if err := verr.ErrorOrNil(); err != nil {
//	    return err
//	}
type ValidationError struct {
	fields   map[string][]string
	ordering []string
}

// NewValidationError creates an empty collector.
func NewValidationError() *ValidationError {
	return &ValidationError{fields: make(map[string][]string)}
}

// NewFieldError is a shortcut for a ValidationError with a single message.
func NewFieldError(field, message string) *ValidationError {
	verr := NewValidationError()
	verr.Add(field, message)
	return verr
}

// Add appends a message for field.
func (e *ValidationError) Add(field, message string) {
	if e.fields == nil {
		e.fields = make(map[string][]string)
	}
	if _, ok := e.fields[field]; !ok {
		e.ordering = append(e.ordering, field)
	}
	e.fields[field] = append(e.fields[field], message)
}

// Merge copies every field message of err into e when err is (or wraps) a
// ValidationError. Any other non-nil error is returned unchanged so callers
// can abort on infrastructure failures.
func (e *ValidationError) Merge(err error) error {
	if err == nil {
		return nil
	}
	var other *ValidationError
	if !errors.As(err, &other) {
		return err
	}
	for _, field := range other.ordering {
		for _, msg := range other.fields[field] {
			e.Add(field, msg)
		}
	}
	return nil
}

// Has reports whether field has at least one message.
func (e *ValidationError) Has(field string) bool {
	return len(e.fields[field]) > 0
}

// HasErrors reports whether any field failed.
func (e *ValidationError) HasErrors() bool {
	return len(e.ordering) > 0
}

// Fields returns a copy of the field messages.
func (e *ValidationError) Fields() map[string][]string {
	out := make(map[string][]string, len(e.fields))
	for field, msgs := range e.fields {
		out[field] = append([]string(nil), msgs...)
	}
	return out
}

// FieldNames returns failed fields in insertion order.
func (e *ValidationError) FieldNames() []string {
	return append([]string(nil), e.ordering...)
}

// ErrorOrNil returns e when it holds messages, nil otherwise.
func (e *ValidationError) ErrorOrNil() error {
	if e == nil || !e.HasErrors() {
		return nil
	}
	return e
}

// Message returns the first message, followed by a count of the remaining
// ones, in the form API clients display next to a form.
func (e *ValidationError) Message() string {
	if !e.HasErrors() {
		return ErrValidationFailed.Error()
	}
	first := e.fields[e.ordering[0]][0]
	rest := -1
	for _, msgs := range e.fields {
		rest += len(msgs)
	}
	switch rest {
	case 0:
		return first
	case 1:
		return fmt.Sprintf("%s (and 1 more error)", first)
	default:
		return fmt.Sprintf("%s (and %d more errors)", first, rest)
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(e.ordering, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
