// Package schema binds typed Go structs to untyped JSON maps through explicit
// per-model property tables.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Flag modifies a Slot property.
type Flag uint8

const (
	// Required makes an absent key a decode error and an unset slot an encode error.
	Required Flag = 1 << iota
	// Nullable allows JSON null to be stored instead of rejected.
	Nullable
)

// Prop describes one property of model T: its Go name, wire key, payload kind
// and presence rules, plus the accessors the engine uses to read and write it.
type Prop[T any] struct {
	Name     string
	Key      string
	Kind     Kind
	Elem     Kind
	Required bool
	Nullable bool

	set     func(t *T, raw any) error
	setNull func(t *T)
	get     func(t *T) (any, State, error)
}

// Value declares a required, non-nullable property stored as V.
func Value[T, V any](name, key string, c Codec[V], at func(*T) *V) Prop[T] {
	return Prop[T]{
		Name:     name,
		Key:      key,
		Kind:     c.Kind,
		Elem:     c.Elem,
		Required: true,
		set: func(t *T, raw any) error {
			v, err := c.Decode(raw)
			if err != nil {
				return err
			}

			*at(t) = v

			return nil
		},
		get: func(t *T) (any, State, error) {
			enc, err := c.Encode(*at(t))

			return enc, StateSet, err
		},
	}
}

// Pointer declares a required, nullable property stored as *V; nil is JSON null.
func Pointer[T, V any](name, key string, c Codec[V], at func(*T) **V) Prop[T] {
	return Prop[T]{
		Name:     name,
		Key:      key,
		Kind:     c.Kind,
		Elem:     c.Elem,
		Required: true,
		Nullable: true,
		set: func(t *T, raw any) error {
			v, err := c.Decode(raw)
			if err != nil {
				return err
			}

			*at(t) = &v

			return nil
		},
		setNull: func(t *T) { *at(t) = nil },
		get: func(t *T) (any, State, error) {
			p := *at(t)
			if p == nil {
				return nil, StateNull, nil
			}

			enc, err := c.Encode(*p)

			return enc, StateSet, err
		},
	}
}

// Optional declares a property stored as *V that may be absent or null. Nil
// is left out when encoding.
func Optional[T, V any](name, key string, c Codec[V], at func(*T) **V) Prop[T] {
	p := Pointer(name, key, c, at)
	p.Required = false
	p.get = func(t *T) (any, State, error) {
		v := *at(t)
		if v == nil {
			return nil, StateUnset, nil
		}

		enc, err := c.Encode(*v)

		return enc, StateSet, err
	}

	return p
}

// Slot declares a property stored as Field[V], keeping the unset, null and set
// states apart.
func Slot[T, V any](name, key string, c Codec[V], at func(*T) *Field[V], flags ...Flag) Prop[T] {
	var f Flag
	for _, fl := range flags {
		f |= fl
	}

	return Prop[T]{
		Name:     name,
		Key:      key,
		Kind:     c.Kind,
		Elem:     c.Elem,
		Required: f&Required != 0,
		Nullable: f&Nullable != 0,
		set: func(t *T, raw any) error {
			v, err := c.Decode(raw)
			if err != nil {
				return err
			}

			*at(t) = F(v)

			return nil
		},
		setNull: func(t *T) { *at(t) = Null[V]() },
		get: func(t *T) (any, State, error) {
			field := *at(t)

			v, ok := field.Get()
			if !ok {
				return nil, field.State(), nil
			}

			enc, err := c.Encode(v)

			return enc, StateSet, err
		},
	}
}

// Schema is the ordered property table of model T.
type Schema[T any] struct {
	name  string
	props []Prop[T]
}

// New builds a schema. It is meant to be called once per model at package init.
func New[T any](name string, props ...Prop[T]) *Schema[T] {
	return &Schema[T]{name: name, props: props}
}

// Name returns the model name used in error messages.
func (s *Schema[T]) Name() string {
	return s.name
}

// Props returns a copy of the property table.
func (s *Schema[T]) Props() []Prop[T] {
	out := make([]Prop[T], len(s.props))
	copy(out, s.props)

	return out
}

// Decode populates t from a JSON-decoded object. Unknown keys are ignored.
func (s *Schema[T]) Decode(raw map[string]any, t *T) error {
	for _, p := range s.props {
		value, ok := raw[p.Key]

		switch {
		case !ok:
			if p.Required {
				return &MissingFieldError{Model: s.name, Path: p.Key, Op: "decode"}
			}
		case value == nil:
			if !p.Nullable || p.setNull == nil {
				return &FieldError{Model: s.name, Path: p.Key, Op: "decode", Err: ErrUnexpectedNull}
			}

			p.setNull(t)
		default:
			if err := p.set(t, value); err != nil {
				return prefix(err, s.name, "decode", p.Key)
			}
		}
	}

	return nil
}

// Encode renders t as a JSON-ready object keyed by wire names.
func (s *Schema[T]) Encode(t *T) (map[string]any, error) {
	out := make(map[string]any, len(s.props))

	for _, p := range s.props {
		value, state, err := p.get(t)
		if err != nil {
			return nil, prefix(err, s.name, "encode", p.Key)
		}

		switch state {
		case StateUnset:
			if p.Required {
				return nil, &MissingFieldError{Model: s.name, Path: p.Key, Op: "encode"}
			}
		case StateNull:
			out[p.Key] = nil
		case StateSet:
			out[p.Key] = value
		}
	}

	return out, nil
}

// Unmarshal decodes a JSON document into t. Numbers are kept as json.Number so
// that integer amounts survive without float rounding.
func (s *Schema[T]) Unmarshal(data []byte, t *T) error {
	raw, err := DecodeObject(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", s.name, err)
	}

	return s.Decode(raw, t)
}

// Marshal encodes t as a JSON document.
func (s *Schema[T]) Marshal(t *T) ([]byte, error) {
	out, err := s.Encode(t)
	if err != nil {
		return nil, err
	}

	return json.Marshal(out)
}

// DecodeObject parses a JSON object with json.Number preserved.
func DecodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotAnObject, raw)
	}

	return obj, nil
}
