package schema

import (
	"errors"
	"fmt"
	"strconv"
)

// Static errors for err113 compliance.
var (
	ErrMissingField   = errors.New("missing required field")
	ErrUnexpectedNull = errors.New("unexpected null")
	ErrTypeMismatch   = errors.New("unexpected JSON type")
	ErrNotAnObject    = errors.New("JSON value is not an object")
)

// MissingFieldError reports a required property that was absent, either in a
// decoded payload or in a model being encoded.
type MissingFieldError struct {
	Model string
	Path  string
	Op    string
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s %s: %s: %s", e.Op, e.Model, e.Path, ErrMissingField)
}

// Unwrap allows errors.Is(err, ErrMissingField).
func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// FieldError reports a property whose value could not be coerced.
type FieldError struct {
	Model string
	Path  string
	Op    string
	Err   error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Model, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FieldError) Unwrap() error {
	return e.Err
}

func typeError(want string, got any) error {
	return fmt.Errorf("%w: want %s, got %T", ErrTypeMismatch, want, got)
}

// prefix rewrites path-carrying errors so that nested failures report the full
// dotted path from the outermost model.
func prefix(err error, model, op, segment string) error {
	var missing *MissingFieldError
	if errors.As(err, &missing) {
		return &MissingFieldError{Model: model, Path: join(segment, missing.Path), Op: op}
	}

	var field *FieldError
	if errors.As(err, &field) {
		return &FieldError{Model: model, Path: join(segment, field.Path), Op: op, Err: field.Err}
	}

	return &FieldError{Model: model, Path: segment, Op: op, Err: err}
}

func join(segment, rest string) string {
	if rest == "" {
		return segment
	}

	if rest[0] == '[' {
		return segment + rest
	}

	return segment + "." + rest
}

func index(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}
