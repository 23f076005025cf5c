package schema

import (
	"encoding/json"
	"fmt"
	"time"
)

// Timestamp is an RFC 3339 instant that remembers the text it was decoded
// from. While the instant and its offset are unchanged, encoding emits that
// text again, so "2024-03-01T12:00:00.000+00:00" is not rewritten as
// "2024-03-01T12:00:00Z".
type Timestamp struct {
	time.Time

	wire    string
	decoded time.Time
}

// NewTimestamp wraps t. It encodes in RFC 3339 with nanoseconds.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// ParseTimestamp parses an RFC 3339 string and keeps its exact text.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Timestamp{}, fmt.Errorf("%w: %w", ErrTypeMismatch, err)
	}

	return Timestamp{Time: t, wire: s, decoded: t}, nil
}

// Wire returns the text sent on encode.
func (t Timestamp) Wire() string {
	if t.wire != "" && t.Time.Equal(t.decoded) && sameOffset(t.Time, t.decoded) {
		return t.wire
	}

	return t.Time.Format(time.RFC3339Nano)
}

func sameOffset(a, b time.Time) bool {
	_, ao := a.Zone()
	_, bo := b.Zone()

	return ao == bo
}

// MarshalJSON encodes the wire text.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Wire())
}

// UnmarshalJSON decodes an RFC 3339 string.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrTypeMismatch, err)
	}

	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// Timestamps decodes RFC 3339 properties into Timestamp, keeping the wire
// text for round trips.
func Timestamps() Codec[Timestamp] {
	return Codec[Timestamp]{
		Kind: KindPrimitive,
		Decode: func(raw any) (Timestamp, error) {
			switch v := raw.(type) {
			case Timestamp:
				return v, nil
			case time.Time:
				return NewTimestamp(v), nil
			case string:
				return ParseTimestamp(v)
			default:
				return Timestamp{}, typeError("timestamp string", raw)
			}
		},
		Encode: func(v Timestamp) (any, error) { return v.Wire(), nil },
	}
}
