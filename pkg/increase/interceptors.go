package increase

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/fivetwenty-io/increase/internal/constants"
)

// Request is the view of an outgoing call handed to interceptors. Header
// changes made by request interceptors are sent on the wire.
type Request struct {
	Method   string
	Path     string
	Headers  http.Header
	Body     []byte
	Metadata map[string]interface{}
}

// Endpoint names the call as "METHOD /path".
func (r *Request) Endpoint() string {
	return r.Method + " " + r.Path
}

// IdempotencyKey returns the key the call will be sent with, if any.
func (r *Request) IdempotencyKey() string {
	if r.Headers == nil {
		return ""
	}

	return r.Headers.Get(constants.HeaderIdempotencyKey)
}

func (r *Request) setMetadata(key string, value interface{}) {
	if r.Metadata == nil {
		r.Metadata = make(map[string]interface{})
	}

	r.Metadata[key] = value
}

// Response is the view of a completed call handed to interceptors. Error is
// the classified API or connection error, and StatusCode is zero when no
// response arrived.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Error      error
}

func (r *Response) failed() bool {
	return r.Error != nil || r.StatusCode >= http.StatusBadRequest
}

// RequestInterceptor runs before a request is sent. Returning an error aborts
// the call.
type RequestInterceptor func(ctx context.Context, req *Request) error

// ResponseInterceptor runs once per call, after retries are exhausted or a
// final response arrives. Connection failures are reported with StatusCode 0.
type ResponseInterceptor func(ctx context.Context, req *Request, resp *Response) error

// InterceptorChain runs interceptors in the order they were added.
type InterceptorChain struct {
	before []RequestInterceptor
	after  []ResponseInterceptor
}

// NewInterceptorChain returns an empty chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{}
}

// AddRequestInterceptor appends a request interceptor.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) {
	c.before = append(c.before, interceptor)
}

// AddResponseInterceptor appends a response interceptor.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) {
	c.after = append(c.after, interceptor)
}

// ExecuteRequestInterceptors stops at the first interceptor that fails.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *Request) error {
	for _, run := range c.before {
		if err := run(ctx, req); err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors stops at the first interceptor that fails.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *Request, resp *Response) error {
	for _, run := range c.after {
		if err := run(ctx, req, resp); err != nil {
			return fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	return nil
}

// LoggingInterceptor logs each outgoing call at debug level.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(_ context.Context, req *Request) error {
		fields := map[string]interface{}{"method": req.Method, "path": req.Path}
		if key := req.IdempotencyKey(); key != "" {
			fields["idempotency_key"] = key
		}

		logger.Debug("API Request", fields)

		return nil
	}
}

// LoggingResponseInterceptor logs each result. Failed calls are logged at
// error level with the classified error text.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(_ context.Context, req *Request, resp *Response) error {
		fields := map[string]interface{}{
			"method":      req.Method,
			"path":        req.Path,
			"status_code": resp.StatusCode,
			"bytes":       len(resp.Body),
		}

		if resp.Error == nil {
			logger.Debug("API Response", fields)

			return nil
		}

		fields["error"] = resp.Error.Error()
		logger.Error("API Response Error", fields)

		return nil
	}
}

// HeaderInterceptor sets fixed headers on every request.
func HeaderInterceptor(headers map[string]string) RequestInterceptor {
	return func(_ context.Context, req *Request) error {
		if req.Headers == nil {
			req.Headers = make(http.Header, len(headers))
		}

		for name, value := range headers {
			req.Headers.Set(name, value)
		}

		return nil
	}
}

// pacer hands out evenly spaced start slots.
type pacer struct {
	mu       sync.Mutex
	interval time.Duration
	next     time.Time
}

// reserve books the next slot and returns how long to wait for it.
func (p *pacer) reserve() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	if p.next.Before(now) {
		p.next = now
	}

	wait := p.next.Sub(now)
	p.next = p.next.Add(p.interval)

	return wait
}

// RateLimitInterceptor spaces requests so that at most requestsPerSecond are
// started per second. Waiting honours context cancellation.
func RateLimitInterceptor(requestsPerSecond int) RequestInterceptor {
	p := &pacer{interval: time.Second / time.Duration(max(requestsPerSecond, 1))}

	return func(ctx context.Context, _ *Request) error {
		wait := p.reserve()
		if wait <= 0 {
			return nil
		}

		timer := time.NewTimer(wait)
		defer timer.Stop()

		select {
		case <-timer.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

const metadataStartTime = "start_time"

// Metrics holds per-endpoint call statistics.
type Metrics struct {
	TotalRequests   int64
	TotalErrors     int64
	TotalLatency    time.Duration
	AverageLatency  time.Duration
	LastRequestTime time.Time
}

func (m *Metrics) observe(latency time.Duration, failed bool) {
	m.TotalRequests++
	m.LastRequestTime = time.Now()

	if latency > 0 {
		m.TotalLatency += latency
		m.AverageLatency = m.TotalLatency / time.Duration(m.TotalRequests)
	}

	if failed {
		m.TotalErrors++
	}
}

// MetricsCollector aggregates Metrics keyed by Request.Endpoint.
type MetricsCollector struct {
	mu        sync.Mutex
	endpoints map[string]*Metrics
	onChange  func(endpoint string, metrics Metrics)
}

// NewMetricsCollector returns an empty collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{endpoints: make(map[string]*Metrics)}
}

// SetOnChange registers a callback run after every observation, outside the
// collector's lock.
func (m *MetricsCollector) SetOnChange(fn func(endpoint string, metrics Metrics)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.onChange = fn
}

// GetMetrics returns a snapshot for an endpoint such as "GET /accounts".
func (m *MetricsCollector) GetMetrics(endpoint string) (Metrics, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	metrics, ok := m.endpoints[endpoint]
	if !ok {
		return Metrics{}, false
	}

	return *metrics, true
}

func (m *MetricsCollector) record(endpoint string, latency time.Duration, failed bool) {
	m.mu.Lock()

	metrics, ok := m.endpoints[endpoint]
	if !ok {
		metrics = &Metrics{}
		m.endpoints[endpoint] = metrics
	}

	metrics.observe(latency, failed)

	snapshot, notify := *metrics, m.onChange
	m.mu.Unlock()

	if notify != nil {
		notify(endpoint, snapshot)
	}
}

// MetricsRequestInterceptor stamps the request start time into Metadata.
func MetricsRequestInterceptor(_ *MetricsCollector) RequestInterceptor {
	return func(_ context.Context, req *Request) error {
		req.setMetadata(metadataStartTime, time.Now())

		return nil
	}
}

// MetricsResponseInterceptor records latency and failures per endpoint.
func MetricsResponseInterceptor(collector *MetricsCollector) ResponseInterceptor {
	return func(_ context.Context, req *Request, resp *Response) error {
		var latency time.Duration
		if started, ok := req.Metadata[metadataStartTime].(time.Time); ok {
			latency = time.Since(started)
		}

		collector.record(req.Endpoint(), latency, resp.failed())

		return nil
	}
}

// CircuitBreakerConfig tunes a CircuitBreaker.
type CircuitBreakerConfig struct {
	// Threshold is the number of consecutive failures that opens the circuit.
	Threshold int
	// Timeout is how long the circuit stays open before a probe is allowed.
	Timeout time.Duration
	// SuccessThreshold is the number of half-open successes that close it.
	SuccessThreshold int
}

// CircuitBreaker stops calls after repeated server-side failures. Only
// connection errors and 5xx responses count; 4xx responses are the caller's
// problem and leave the circuit alone.
type CircuitBreaker struct {
	mu          sync.Mutex
	config      CircuitBreakerConfig
	state       string
	failures    int
	successes   int
	lastFailure time.Time
}

// NewCircuitBreaker creates a closed breaker. A nil config uses the defaults.
func NewCircuitBreaker(config *CircuitBreakerConfig) *CircuitBreaker {
	breaker := &CircuitBreaker{
		config: CircuitBreakerConfig{
			Threshold:        constants.CircuitBreakerThreshold,
			Timeout:          constants.CircuitBreakerTimeout,
			SuccessThreshold: constants.CircuitBreakerSuccessThreshold,
		},
		state: constants.StatusClosed,
	}

	if config != nil {
		breaker.config = *config
	}

	return breaker
}

// State returns "closed", "open" or "half-open".
func (b *CircuitBreaker) State() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.state
}

// allow rejects calls while open and moves to half-open once the timeout
// has passed.
func (b *CircuitBreaker) allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != constants.StatusOpen {
		return nil
	}

	if time.Since(b.lastFailure) <= b.config.Timeout {
		return ErrCircuitBreakerOpen
	}

	b.state = constants.StatusHalfOpen
	b.successes = 0

	return nil
}

func (b *CircuitBreaker) record(statusCode int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if statusCode == 0 || statusCode >= http.StatusInternalServerError {
		b.failures++
		b.lastFailure = time.Now()

		if b.state == constants.StatusHalfOpen || b.failures >= b.config.Threshold {
			b.state = constants.StatusOpen
		}

		return
	}

	if b.state == constants.StatusClosed {
		b.failures = 0

		return
	}

	if b.state == constants.StatusHalfOpen {
		b.successes++
		if b.successes >= b.config.SuccessThreshold {
			b.state = constants.StatusClosed
			b.failures = 0
		}
	}
}

// CircuitBreakerRequestInterceptor fails fast with ErrCircuitBreakerOpen
// while the breaker is open.
func CircuitBreakerRequestInterceptor(breaker *CircuitBreaker) RequestInterceptor {
	return func(_ context.Context, _ *Request) error {
		return breaker.allow()
	}
}

// CircuitBreakerResponseInterceptor feeds each result into the breaker.
func CircuitBreakerResponseInterceptor(breaker *CircuitBreaker) ResponseInterceptor {
	return func(_ context.Context, _ *Request, resp *Response) error {
		breaker.record(resp.StatusCode)

		return nil
	}
}
