package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// API endpoints and environments.
const (
	// ProductionBaseURL is the live API.
	ProductionBaseURL = "https://api.increase.com"

	// SandboxBaseURL is the test API; sandbox keys only work here.
	SandboxBaseURL = "https://sandbox.increase.com"

	// EnvironmentProduction selects ProductionBaseURL.
	EnvironmentProduction = "production"

	// EnvironmentSandbox selects SandboxBaseURL.
	EnvironmentSandbox = "sandbox"

	// EnvAPIKey is read when no API key is configured.
	EnvAPIKey = "INCREASE_API_KEY"

	// EnvBaseURL is read when no base URL is configured.
	EnvBaseURL = "INCREASE_BASE_URL"

	// EnvPrefix is the viper environment prefix used by the CLI.
	EnvPrefix = "INCREASE"
)

// HTTP headers.
const (
	HeaderAuthorization  = "Authorization"
	HeaderAccept         = "Accept"
	HeaderContentType    = "Content-Type"
	HeaderUserAgent      = "User-Agent"
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderRetryAfter     = "Retry-After"
	HeaderETag           = "ETag"

	// ContentTypeJSON is sent and accepted on every call.
	ContentTypeJSON = "application/json"

	// DefaultUserAgent is sent when Config.UserAgent is empty.
	DefaultUserAgent = "increase-go/1.0.0"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 60 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 2

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 500 * time.Millisecond

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 8 * time.Second

	// MaxRetryCeiling caps any per-call retry override.
	MaxRetryCeiling = 10
)

// Pagination limits.
const (
	// DefaultPageSize is the page size used when none is given.
	DefaultPageSize = 100

	// MaxPageSize is the largest limit the API accepts.
	MaxPageSize = 100
)

// Cache settings.
const (
	// DefaultCacheSize is the default cache size limit.
	DefaultCacheSize = 1000

	// DefaultCacheTTL is how long cached GET responses stay fresh.
	DefaultCacheTTL = 30 * time.Second

	// DefaultNATSBucket is the JetStream key-value bucket used for caching.
	DefaultNATSBucket = "increase-cache"

	// DefaultNATSTimeout bounds bucket setup.
	DefaultNATSTimeout = 5 * time.Second
)

// Circuit breaker settings.
const (
	// CircuitBreakerThreshold is the failure threshold for circuit breaker.
	CircuitBreakerThreshold = 5

	// CircuitBreakerSuccessThreshold is the success threshold for circuit breaker.
	CircuitBreakerSuccessThreshold = 2

	// CircuitBreakerTimeout is the timeout for circuit breaker.
	CircuitBreakerTimeout = 30 * time.Second

	// StatusClosed indicates a closed state.
	StatusClosed = "closed"

	// StatusOpen indicates an open state.
	StatusOpen = "open"

	// StatusHalfOpen indicates a half-open state.
	StatusHalfOpen = "half-open"
)

// Output formats for the CLI.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
)
