package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"time"
)

// Kind classifies the payload of a property.
type Kind uint8

const (
	KindPrimitive Kind = iota
	KindEnum
	KindModel
	KindList
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindModel:
		return "model"
	case KindList:
		return "list"
	default:
		return "primitive"
	}
}

// DateLayout is the wire layout of date-only properties.
const DateLayout = "2006-01-02"

// Codec converts between a JSON-decoded value and a typed Go value.
type Codec[V any] struct {
	Kind Kind
	// Elem is the element kind for KindList codecs.
	Elem   Kind
	Decode func(raw any) (V, error)
	Encode func(v V) (any, error)
}

// Mapper is satisfied by pointers to model types that carry a schema table.
type Mapper[M any] interface {
	*M
	FromMap(raw map[string]any) error
	ToMap() (map[string]any, error)
}

// String passes strings through.
func String() Codec[string] {
	return Codec[string]{
		Kind: KindPrimitive,
		Decode: func(raw any) (string, error) {
			s, ok := raw.(string)
			if !ok {
				return "", typeError("string", raw)
			}

			return s, nil
		},
		Encode: func(v string) (any, error) { return v, nil },
	}
}

// Bool passes booleans through.
func Bool() Codec[bool] {
	return Codec[bool]{
		Kind: KindPrimitive,
		Decode: func(raw any) (bool, error) {
			b, ok := raw.(bool)
			if !ok {
				return false, typeError("boolean", raw)
			}

			return b, nil
		},
		Encode: func(v bool) (any, error) { return v, nil },
	}
}

// Int64 accepts json.Number, float64 and native integers without precision loss
// for json.Number input.
func Int64() Codec[int64] {
	return Codec[int64]{
		Kind: KindPrimitive,
		Decode: func(raw any) (int64, error) {
			switch n := raw.(type) {
			case json.Number:
				v, err := n.Int64()
				if err != nil {
					return 0, fmt.Errorf("%w: %q is not an integer", ErrTypeMismatch, n.String())
				}

				return v, nil
			case float64:
				if n != math.Trunc(n) {
					return 0, fmt.Errorf("%w: %v is not an integer", ErrTypeMismatch, n)
				}

				return int64(n), nil
			case int:
				return int64(n), nil
			case int64:
				return n, nil
			default:
				return 0, typeError("integer", raw)
			}
		},
		Encode: func(v int64) (any, error) { return v, nil },
	}
}

// Float64 accepts any JSON number.
func Float64() Codec[float64] {
	return Codec[float64]{
		Kind: KindPrimitive,
		Decode: func(raw any) (float64, error) {
			switch n := raw.(type) {
			case json.Number:
				v, err := n.Float64()
				if err != nil {
					return 0, fmt.Errorf("%w: %q is not a number", ErrTypeMismatch, n.String())
				}

				return v, nil
			case float64:
				return n, nil
			case int:
				return float64(n), nil
			case int64:
				return float64(n), nil
			default:
				return 0, typeError("number", raw)
			}
		},
		Encode: func(v float64) (any, error) { return v, nil },
	}
}

// Time parses RFC 3339 timestamps.
func Time() Codec[time.Time] {
	return timeCodec(time.RFC3339Nano)
}

// Date parses YYYY-MM-DD dates.
func Date() Codec[time.Time] {
	return timeCodec(DateLayout)
}

func timeCodec(layout string) Codec[time.Time] {
	return Codec[time.Time]{
		Kind: KindPrimitive,
		Decode: func(raw any) (time.Time, error) {
			if t, ok := raw.(time.Time); ok {
				return t, nil
			}

			s, ok := raw.(string)
			if !ok {
				return time.Time{}, typeError("timestamp string", raw)
			}

			t, err := time.Parse(layout, s)
			if err != nil {
				return time.Time{}, fmt.Errorf("%w: %w", ErrTypeMismatch, err)
			}

			return t, nil
		},
		Encode: func(v time.Time) (any, error) { return v.Format(layout), nil },
	}
}

// Any keeps the decoded JSON value untouched.
func Any() Codec[any] {
	return Codec[any]{
		Kind:   KindPrimitive,
		Decode: func(raw any) (any, error) { return raw, nil },
		Encode: func(v any) (any, error) { return v, nil },
	}
}

// StringMap decodes a JSON object of strings.
func StringMap() Codec[map[string]string] {
	return Codec[map[string]string]{
		Kind: KindPrimitive,
		Decode: func(raw any) (map[string]string, error) {
			obj, ok := raw.(map[string]any)
			if !ok {
				return nil, typeError("object", raw)
			}

			out := make(map[string]string, len(obj))

			for key, value := range obj {
				s, ok := value.(string)
				if !ok {
					return nil, prefix(typeError("string", value), "", "", key)
				}

				out[key] = s
			}

			return out, nil
		},
		Encode: func(v map[string]string) (any, error) {
			out := make(map[string]any, len(v))
			for key, value := range v {
				out[key] = value
			}

			return out, nil
		},
	}
}

// Enum decodes open enumerations: unrecognised strings are kept verbatim so
// that values added server-side do not break older clients.
func Enum[E ~string]() Codec[E] {
	return Codec[E]{
		Kind: KindEnum,
		Decode: func(raw any) (E, error) {
			if e, ok := raw.(E); ok {
				return e, nil
			}

			s, ok := raw.(string)
			if !ok {
				return "", typeError("enum string", raw)
			}

			return E(s), nil
		},
		Encode: func(v E) (any, error) { return string(v), nil },
	}
}

// Model recurses into a nested model through its schema table. A value that
// already has type M is taken as is, so callers building params in Go may
// supply either the typed value or a map literal.
func Model[M any, PM Mapper[M]]() Codec[M] {
	return Codec[M]{
		Kind: KindModel,
		Decode: func(raw any) (M, error) {
			m, ok := raw.(M)
			if ok {
				return m, nil
			}

			obj, ok := raw.(map[string]any)
			if !ok {
				return m, typeError("object", raw)
			}

			err := PM(&m).FromMap(obj)

			return m, err
		},
		Encode: func(v M) (any, error) {
			return PM(&v).ToMap()
		},
	}
}

// List maps a codec over a JSON array, preserving order. An empty array decodes
// to an empty, non-nil slice.
func List[V any](elem Codec[V]) Codec[[]V] {
	return Codec[[]V]{
		Kind: KindList,
		Elem: elem.Kind,
		Decode: func(raw any) ([]V, error) {
			if typed, ok := raw.([]V); ok {
				return slices.Clone(typed), nil
			}

			arr, ok := raw.([]any)
			if !ok {
				return nil, typeError("array", raw)
			}

			out := make([]V, 0, len(arr))

			for i, item := range arr {
				v, err := elem.Decode(item)
				if err != nil {
					return nil, prefix(err, "", "", index(i))
				}

				out = append(out, v)
			}

			return out, nil
		},
		Encode: func(v []V) (any, error) {
			out := make([]any, 0, len(v))

			for i, item := range slices.Clone(v) {
				enc, err := elem.Encode(item)
				if err != nil {
					return nil, prefix(err, "", "", index(i))
				}

				out = append(out, enc)
			}

			return out, nil
		},
	}
}
