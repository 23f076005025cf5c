package schema

// State records whether a Field was left unset, explicitly set to null, or
// set to a value.
type State uint8

const (
	// StateUnset is the zero state; unset fields are omitted when encoding.
	StateUnset State = iota
	// StateNull encodes as JSON null.
	StateNull
	// StateSet encodes as the held value.
	StateSet
)

// String returns a short name for the state.
func (s State) String() string {
	switch s {
	case StateNull:
		return "null"
	case StateSet:
		return "set"
	default:
		return "unset"
	}
}

// Field is a tri-state holder used by param objects so that "not provided",
// "explicitly null" and "provided" can be told apart on the wire.
type Field[V any] struct {
	value V
	state State
}

// F returns a Field holding v.
func F[V any](v V) Field[V] {
	return Field[V]{value: v, state: StateSet}
}

// Null returns a Field that encodes as JSON null.
func Null[V any]() Field[V] {
	return Field[V]{state: StateNull}
}

// Get returns the held value and whether one is set.
func (f Field[V]) Get() (V, bool) {
	return f.value, f.state == StateSet
}

// Value returns the held value, or the zero value when unset or null.
func (f Field[V]) Value() V {
	return f.value
}

// State reports the field state.
func (f Field[V]) State() State {
	return f.state
}

// IsSet reports whether a value is held.
func (f Field[V]) IsSet() bool {
	return f.state == StateSet
}

// IsNull reports whether the field was explicitly set to null.
func (f Field[V]) IsNull() bool {
	return f.state == StateNull
}

// IsPresent reports whether the field will appear on the wire.
func (f Field[V]) IsPresent() bool {
	return f.state != StateUnset
}
