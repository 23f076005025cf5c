package increase

import "net/http"

// RequestOptions are the per-call overrides collected from RequestOption values.
type RequestOptions struct {
	IdempotencyKey string
	Headers        http.Header
	// JSONSet holds sjson paths patched into the encoded request body.
	JSONSet []JSONPatch
	// MaxRetries overrides Config.RetryMax when non-nil.
	MaxRetries *int
}

// JSONPatch sets Value at the sjson Path of a request body.
type JSONPatch struct {
	Path  string
	Value any
}

// RequestOption customises a single API call.
type RequestOption func(*RequestOptions)

// WithIdempotencyKey sets the Idempotency-Key header. Reusing a key with
// different parameters yields an IdempotencyKeyAlreadyUsedError.
func WithIdempotencyKey(key string) RequestOption {
	return func(o *RequestOptions) {
		o.IdempotencyKey = key
	}
}

// WithHeader sets an extra request header.
func WithHeader(key, value string) RequestOption {
	return func(o *RequestOptions) {
		if o.Headers == nil {
			o.Headers = make(http.Header)
		}

		o.Headers.Set(key, value)
	}
}

// WithJSONSet patches the encoded request body at path, for parameters the
// typed params do not model yet.
func WithJSONSet(path string, value any) RequestOption {
	return func(o *RequestOptions) {
		o.JSONSet = append(o.JSONSet, JSONPatch{Path: path, Value: value})
	}
}

// WithMaxRetries overrides the retry budget for one call.
func WithMaxRetries(n int) RequestOption {
	return func(o *RequestOptions) {
		o.MaxRetries = &n
	}
}

// ApplyRequestOptions folds opts into a RequestOptions value.
func ApplyRequestOptions(opts ...RequestOption) RequestOptions {
	var o RequestOptions

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
