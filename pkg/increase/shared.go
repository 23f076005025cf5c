package increase

import (
	"net/url"
	"time"

	"github.com/fivetwenty-io/increase/internal/schema"
)

// Timestamp is an RFC 3339 instant on a response model. It embeds time.Time
// and re-encodes exactly as received while unchanged.
type Timestamp = schema.Timestamp

// NewTimestamp wraps t for use in a model.
func NewTimestamp(t time.Time) Timestamp {
	return schema.NewTimestamp(t)
}

// Currency is an ISO 4217 code.
type Currency string

const (
	CurrencyCAD Currency = "CAD"
	CurrencyCHF Currency = "CHF"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
	CurrencyUSD Currency = "USD"
)

// IsKnown reports whether the value is one this client version recognises.
func (r Currency) IsKnown() bool {
	switch r {
	case CurrencyCAD, CurrencyCHF, CurrencyEUR, CurrencyGBP, CurrencyJPY, CurrencyUSD:
		return true
	}

	return false
}

// CreatedAtFilter restricts list results by creation time.
type CreatedAtFilter struct {
	After      Field[time.Time]
	Before     Field[time.Time]
	OnOrAfter  Field[time.Time]
	OnOrBefore Field[time.Time]
}

var createdAtFilterSchema = schema.New("CreatedAtFilter",
	schema.Slot("After", "after", schema.Time(), func(r *CreatedAtFilter) *Field[time.Time] { return &r.After }),
	schema.Slot("Before", "before", schema.Time(), func(r *CreatedAtFilter) *Field[time.Time] { return &r.Before }),
	schema.Slot("OnOrAfter", "on_or_after", schema.Time(), func(r *CreatedAtFilter) *Field[time.Time] { return &r.OnOrAfter }),
	schema.Slot("OnOrBefore", "on_or_before", schema.Time(), func(r *CreatedAtFilter) *Field[time.Time] { return &r.OnOrBefore }),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *CreatedAtFilter) FromMap(raw map[string]any) error { return createdAtFilterSchema.Decode(raw, r) }

// ToMap encodes r as a wire object.
func (r *CreatedAtFilter) ToMap() (map[string]any, error) { return createdAtFilterSchema.Encode(r) }

// ListParams are the paging arguments shared by every list endpoint.
type ListParams struct {
	// Cursor returns the page after a previous response's next_cursor.
	Cursor Field[string]
	// Limit is the page size, at most 100.
	Limit Field[int64]
}

func listProps[T any](at func(*T) *ListParams) []schema.Prop[T] {
	return []schema.Prop[T]{
		schema.Slot("Cursor", "cursor", schema.String(), func(r *T) *Field[string] { return &at(r).Cursor }),
		schema.Slot("Limit", "limit", schema.Int64(), func(r *T) *Field[int64] { return &at(r).Limit }),
	}
}

// queryValues encodes list params as a query string.
func queryValues[T any](s *schema.Schema[T], t *T) (url.Values, error) {
	out, err := s.Encode(t)
	if err != nil {
		return nil, err
	}

	return schema.EncodeQuery(out), nil
}

// paramFromMap builds a param struct from a map literal, failing on missing
// required keys.
func paramFromMap[T any](s *schema.Schema[T], raw map[string]any) (T, error) {
	var t T

	err := s.Decode(raw, &t)

	return t, err
}

// StatusFilter filters list results by one or more statuses.
type StatusFilter[E ~string] struct {
	In Field[[]E]
}

func statusFilterCodec[E ~string]() schema.Codec[StatusFilter[E]] {
	s := schema.New("StatusFilter",
		schema.Slot("In", "in", schema.List(schema.Enum[E]()), func(r *StatusFilter[E]) *Field[[]E] { return &r.In }),
	)

	return schema.Codec[StatusFilter[E]]{
		Kind: schema.KindModel,
		Decode: func(raw any) (StatusFilter[E], error) {
			f, ok := raw.(StatusFilter[E])
			if ok {
				return f, nil
			}

			obj, ok := raw.(map[string]any)
			if !ok {
				return f, schema.ErrTypeMismatch
			}

			err := s.Decode(obj, &f)

			return f, err
		},
		Encode: func(v StatusFilter[E]) (any, error) { return s.Encode(&v) },
	}
}

// In builds a StatusFilter.
func In[E ~string](values ...E) StatusFilter[E] {
	return StatusFilter[E]{In: F(values)}
}
