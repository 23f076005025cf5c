package increase

import "github.com/fivetwenty-io/increase/internal/schema"

// Field holds an optional request parameter. The zero value is unset and is
// left out of the request; Null produces an explicit JSON null.
type Field[V any] = schema.Field[V]

// F wraps a value for use in params.
func F[V any](v V) Field[V] {
	return schema.F(v)
}

// Null marks a nullable parameter as explicitly cleared.
func Null[V any]() Field[V] {
	return schema.Null[V]()
}

// String wraps a string.
func String(s string) Field[string] { return F(s) }

// Int wraps an integer amount or count.
func Int(i int64) Field[int64] { return F(i) }

// Bool wraps a boolean.
func Bool(b bool) Field[bool] { return F(b) }
