package increase

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httputil"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/increase/internal/schema"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Static errors for err113 compliance.
var (
	ErrMissingID          = errors.New("missing required id parameter")
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
	ErrNoMoreItems        = errors.New("no more items")
	ErrConfigRequired     = errors.New("config is required")
	ErrAPIKeyRequired     = errors.New("API key is required")
	ErrUnknownEnvironment = errors.New("unknown environment")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrInvalidParamValue  = errors.New("invalid parameter value")
	ErrNATSCacheRequired  = errors.New("NATS connection is required for the NATS cache")
)

// Decode errors produced when a payload does not match a model.
type (
	MissingFieldError = schema.MissingFieldError
	FieldError        = schema.FieldError
)

// Error type discriminators sent by the API in the "type" field of error bodies.
const (
	ErrorTypeInvalidParameters         = "invalid_parameters_error"
	ErrorTypeMalformedRequest          = "malformed_request_error"
	ErrorTypeInvalidAPIKey             = "invalid_api_key_error"
	ErrorTypeEnvironmentMismatch       = "environment_mismatch_error"
	ErrorTypeInsufficientPermissions   = "insufficient_permissions_error"
	ErrorTypePrivateFeature            = "private_feature_error"
	ErrorTypeAPIMethodNotFound         = "api_method_not_found_error"
	ErrorTypeObjectNotFound            = "object_not_found_error"
	ErrorTypeIdempotencyKeyAlreadyUsed = "idempotency_key_already_used_error"
	ErrorTypeInvalidOperation          = "invalid_operation_error"
	ErrorTypeRateLimited               = "rate_limited_error"
	ErrorTypeInternalServer            = "internal_server_error"
)

// APIStatusError is returned for any non-2xx response. It is the root of the
// status error hierarchy; every more specific error unwraps to it.
type APIStatusError struct {
	StatusCode int
	Type       string
	Title      string
	Detail     string
	Body       []byte
	Request    *http.Request
	Response   *http.Response
}

// Error implements the error interface.
func (e *APIStatusError) Error() string {
	var b strings.Builder

	b.WriteString(strconv.Itoa(e.StatusCode))

	if e.Request != nil && e.Request.URL != nil {
		fmt.Fprintf(&b, " %s %s", e.Request.Method, e.Request.URL.Path)
	}

	if e.Type != "" {
		fmt.Fprintf(&b, " (%s)", e.Type)
	}

	switch {
	case e.Title != "" && e.Detail != "":
		fmt.Fprintf(&b, ": %s: %s", e.Title, e.Detail)
	case e.Title != "":
		fmt.Fprintf(&b, ": %s", e.Title)
	case e.Detail != "":
		fmt.Fprintf(&b, ": %s", e.Detail)
	}

	return b.String()
}

// Pretty returns the status line followed by the indented response body.
func (e *APIStatusError) Pretty() string {
	status := strconv.Itoa(e.StatusCode) + " " + http.StatusText(e.StatusCode)
	if len(e.Body) == 0 {
		return status
	}

	if !gjson.ValidBytes(e.Body) {
		return status + "\n" + string(e.Body)
	}

	return status + "\n" + strings.TrimRight(string(pretty.Pretty(e.Body)), "\n")
}

// DumpRequest returns the outgoing request in wire format.
func (e *APIStatusError) DumpRequest(body bool) []byte {
	if e.Request == nil {
		return nil
	}

	if e.Request.GetBody != nil {
		e.Request.Body, _ = e.Request.GetBody()
	}

	out, _ := httputil.DumpRequestOut(e.Request, body)

	return out
}

// DumpResponse returns the response in wire format.
func (e *APIStatusError) DumpResponse(body bool) []byte {
	if e.Response == nil {
		return nil
	}

	out, _ := httputil.DumpResponse(e.Response, body)

	return out
}

// Status family errors.
type (
	// BadRequestError is returned for 400 responses.
	BadRequestError struct{ *APIStatusError }
	// AuthenticationError is returned for 401 responses.
	AuthenticationError struct{ *APIStatusError }
	// PermissionDeniedError is returned for 403 responses.
	PermissionDeniedError struct{ *APIStatusError }
	// NotFoundError is returned for 404 responses.
	NotFoundError struct{ *APIStatusError }
	// ConflictError is returned for 409 responses.
	ConflictError struct{ *APIStatusError }
	// UnprocessableEntityError is returned for 422 responses.
	UnprocessableEntityError struct{ *APIStatusError }
	// RateLimitError is returned for 429 responses.
	RateLimitError struct{ *APIStatusError }
	// InternalServerError is returned for 5xx responses.
	InternalServerError struct{ *APIStatusError }
)

func (e *BadRequestError) Unwrap() error          { return e.APIStatusError }
func (e *AuthenticationError) Unwrap() error      { return e.APIStatusError }
func (e *PermissionDeniedError) Unwrap() error    { return e.APIStatusError }
func (e *NotFoundError) Unwrap() error            { return e.APIStatusError }
func (e *ConflictError) Unwrap() error            { return e.APIStatusError }
func (e *UnprocessableEntityError) Unwrap() error { return e.APIStatusError }
func (e *RateLimitError) Unwrap() error           { return e.APIStatusError }
func (e *InternalServerError) Unwrap() error      { return e.APIStatusError }

// InvalidParameterDetail describes one rejected parameter.
type InvalidParameterDetail struct {
	Field   string
	Message string
}

// InvalidParametersError means one or more parameters failed validation.
type InvalidParametersError struct {
	*BadRequestError
	Errors []InvalidParameterDetail
}

// Unwrap returns the family error.
func (e *InvalidParametersError) Unwrap() error { return e.BadRequestError }

// MalformedRequestError means the request body could not be parsed.
type MalformedRequestError struct{ *BadRequestError }

// Unwrap returns the family error.
func (e *MalformedRequestError) Unwrap() error { return e.BadRequestError }

// InvalidAPIKeyError means the API key was missing, revoked or unknown.
type InvalidAPIKeyError struct {
	*AuthenticationError
	Reason string
}

// Unwrap returns the family error.
func (e *InvalidAPIKeyError) Unwrap() error { return e.AuthenticationError }

// EnvironmentMismatchError means a sandbox key was used in production or the
// other way around.
type EnvironmentMismatchError struct{ *PermissionDeniedError }

// Unwrap returns the family error.
func (e *EnvironmentMismatchError) Unwrap() error { return e.PermissionDeniedError }

// InsufficientPermissionsError means the key lacks a required permission.
type InsufficientPermissionsError struct{ *PermissionDeniedError }

// Unwrap returns the family error.
func (e *InsufficientPermissionsError) Unwrap() error { return e.PermissionDeniedError }

// PrivateFeatureError means the endpoint is not enabled for the group.
type PrivateFeatureError struct{ *PermissionDeniedError }

// Unwrap returns the family error.
func (e *PrivateFeatureError) Unwrap() error { return e.PermissionDeniedError }

// APIMethodNotFoundError means the path does not exist.
type APIMethodNotFoundError struct{ *NotFoundError }

// Unwrap returns the family error.
func (e *APIMethodNotFoundError) Unwrap() error { return e.NotFoundError }

// ObjectNotFoundError means the requested object does not exist.
type ObjectNotFoundError struct{ *NotFoundError }

// Unwrap returns the family error.
func (e *ObjectNotFoundError) Unwrap() error { return e.NotFoundError }

// IdempotencyKeyAlreadyUsedError means the idempotency key was reused with
// different parameters. ResourceID names the object created by the first use.
type IdempotencyKeyAlreadyUsedError struct {
	*ConflictError
	ResourceID string
}

// Unwrap returns the family error.
func (e *IdempotencyKeyAlreadyUsedError) Unwrap() error { return e.ConflictError }

// InvalidOperationError means the object is in a state that forbids the call.
type InvalidOperationError struct{ *ConflictError }

// Unwrap returns the family error.
func (e *InvalidOperationError) Unwrap() error { return e.ConflictError }

// RateLimitedError carries the server-suggested wait in seconds, or 0.
type RateLimitedError struct {
	*RateLimitError
	RetryAfter int64
}

// Unwrap returns the family error.
func (e *RateLimitedError) Unwrap() error { return e.RateLimitError }

// InternalServerErrorType is the typed internal_server_error leaf.
type InternalServerErrorType struct{ *InternalServerError }

// Unwrap returns the family error.
func (e *InternalServerErrorType) Unwrap() error { return e.InternalServerError }

type errorFactory func(base *APIStatusError, body gjson.Result) error

var statusFamilies = map[int]errorFactory{
	http.StatusBadRequest: func(b *APIStatusError, _ gjson.Result) error { return &BadRequestError{b} },
	http.StatusUnauthorized: func(b *APIStatusError, _ gjson.Result) error {
		return &AuthenticationError{b}
	},
	http.StatusForbidden: func(b *APIStatusError, _ gjson.Result) error {
		return &PermissionDeniedError{b}
	},
	http.StatusNotFound: func(b *APIStatusError, _ gjson.Result) error { return &NotFoundError{b} },
	http.StatusConflict: func(b *APIStatusError, _ gjson.Result) error { return &ConflictError{b} },
	http.StatusUnprocessableEntity: func(b *APIStatusError, _ gjson.Result) error {
		return &UnprocessableEntityError{b}
	},
	http.StatusTooManyRequests: func(b *APIStatusError, _ gjson.Result) error { return &RateLimitError{b} },
	http.StatusInternalServerError: func(b *APIStatusError, _ gjson.Result) error {
		return &InternalServerError{b}
	},
}

var statusTypes = map[int]map[string]errorFactory{
	http.StatusBadRequest: {
		ErrorTypeInvalidParameters: func(b *APIStatusError, body gjson.Result) error {
			var details []InvalidParameterDetail

			body.Get("errors").ForEach(func(_, item gjson.Result) bool {
				details = append(details, InvalidParameterDetail{
					Field:   item.Get("field").String(),
					Message: item.Get("message").String(),
				})

				return true
			})

			return &InvalidParametersError{BadRequestError: &BadRequestError{b}, Errors: details}
		},
		ErrorTypeMalformedRequest: func(b *APIStatusError, _ gjson.Result) error {
			return &MalformedRequestError{&BadRequestError{b}}
		},
	},
	http.StatusUnauthorized: {
		ErrorTypeInvalidAPIKey: func(b *APIStatusError, body gjson.Result) error {
			return &InvalidAPIKeyError{AuthenticationError: &AuthenticationError{b}, Reason: body.Get("reason").String()}
		},
	},
	http.StatusForbidden: {
		ErrorTypeEnvironmentMismatch: func(b *APIStatusError, _ gjson.Result) error {
			return &EnvironmentMismatchError{&PermissionDeniedError{b}}
		},
		ErrorTypeInsufficientPermissions: func(b *APIStatusError, _ gjson.Result) error {
			return &InsufficientPermissionsError{&PermissionDeniedError{b}}
		},
		ErrorTypePrivateFeature: func(b *APIStatusError, _ gjson.Result) error {
			return &PrivateFeatureError{&PermissionDeniedError{b}}
		},
	},
	http.StatusNotFound: {
		ErrorTypeAPIMethodNotFound: func(b *APIStatusError, _ gjson.Result) error {
			return &APIMethodNotFoundError{&NotFoundError{b}}
		},
		ErrorTypeObjectNotFound: func(b *APIStatusError, _ gjson.Result) error {
			return &ObjectNotFoundError{&NotFoundError{b}}
		},
	},
	http.StatusConflict: {
		ErrorTypeIdempotencyKeyAlreadyUsed: func(b *APIStatusError, body gjson.Result) error {
			return &IdempotencyKeyAlreadyUsedError{
				ConflictError: &ConflictError{b},
				ResourceID:    body.Get("resource_id").String(),
			}
		},
		ErrorTypeInvalidOperation: func(b *APIStatusError, _ gjson.Result) error {
			return &InvalidOperationError{&ConflictError{b}}
		},
	},
	http.StatusTooManyRequests: {
		ErrorTypeRateLimited: func(b *APIStatusError, body gjson.Result) error {
			return &RateLimitedError{RateLimitError: &RateLimitError{b}, RetryAfter: body.Get("retry_after").Int()}
		},
	},
	http.StatusInternalServerError: {
		ErrorTypeInternalServer: func(b *APIStatusError, _ gjson.Result) error {
			return &InternalServerErrorType{&InternalServerError{b}}
		},
	},
}

// NewAPIStatusError classifies a non-2xx response. The most specific error for
// the status and body "type" is returned; unknown types fall back to the status
// family and unknown statuses to *APIStatusError. Bodies that are not JSON are
// classified by status alone.
func NewAPIStatusError(statusCode int, body []byte, req *http.Request, resp *http.Response) error {
	base := &APIStatusError{
		StatusCode: statusCode,
		Body:       body,
		Request:    req,
		Response:   resp,
	}

	var parsed gjson.Result
	if gjson.ValidBytes(body) {
		parsed = gjson.ParseBytes(body)
		base.Type = parsed.Get("type").String()
		base.Title = parsed.Get("title").String()
		base.Detail = parsed.Get("detail").String()
	}

	key := statusCode
	if statusCode >= http.StatusInternalServerError && statusCode < 600 {
		key = http.StatusInternalServerError
	}

	if factory, ok := statusTypes[key][base.Type]; ok && base.Type != "" {
		return factory(base, parsed)
	}

	if factory, ok := statusFamilies[key]; ok {
		return factory(base, parsed)
	}

	return base
}

// APIConnectionError is returned when no HTTP response was received.
type APIConnectionError struct {
	Request *http.Request
	Err     error
}

// Error implements the error interface.
func (e *APIConnectionError) Error() string {
	if e.Request != nil && e.Request.URL != nil {
		return fmt.Sprintf("connection error: %s %s: %v", e.Request.Method, e.Request.URL.Path, e.Err)
	}

	return fmt.Sprintf("connection error: %v", e.Err)
}

// Unwrap returns the transport error.
func (e *APIConnectionError) Unwrap() error {
	return e.Err
}

// APITimeoutError is an APIConnectionError caused by a deadline.
type APITimeoutError struct {
	*APIConnectionError
}

// Error implements the error interface.
func (e *APITimeoutError) Error() string {
	return "request timed out: " + e.APIConnectionError.Error()
}

// Unwrap returns the connection error.
func (e *APITimeoutError) Unwrap() error {
	return e.APIConnectionError
}

// StatusCode returns the HTTP status of an API error, or 0.
func StatusCode(err error) int {
	var apiErr *APIStatusError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	var target *NotFoundError

	return errors.As(err, &target)
}

// IsUnauthorized checks if the error is an authentication error.
func IsUnauthorized(err error) bool {
	var target *AuthenticationError

	return errors.As(err, &target)
}

// IsForbidden checks if the error is a permission error.
func IsForbidden(err error) bool {
	var target *PermissionDeniedError

	return errors.As(err, &target)
}

// IsConflict checks if the error is a conflict error.
func IsConflict(err error) bool {
	var target *ConflictError

	return errors.As(err, &target)
}

// IsRateLimited checks if the error is a rate limit error.
func IsRateLimited(err error) bool {
	var target *RateLimitError

	return errors.As(err, &target)
}

// IsMissingField checks if the error is a required field violation.
func IsMissingField(err error) bool {
	return errors.Is(err, schema.ErrMissingField)
}
