// Package http is the transport shared by every resource client: auth,
// retries, idempotency keys, body encoding, interceptors and the GET cache.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/increase/internal/auth"
	"github.com/fivetwenty-io/increase/internal/constants"
	"github.com/fivetwenty-io/increase/pkg/increase"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/sjson"
	"golang.org/x/sync/singleflight"
)

// Client is an HTTP client for the Increase API.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	tokenManager auth.TokenManager
	userAgent    string
	logger       increase.Logger
	debug        bool
	retryMax     int
	interceptors *increase.InterceptorChain
	cache        increase.Cache
	cacheTTL     time.Duration
	group        singleflight.Group
}

// Request represents an HTTP request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
	Options increase.RequestOptions
	// NoCache bypasses the GET cache for responses that must not be stored.
	NoCache bool
}

// Response represents an HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger increase.Logger) Option {
	return func(c *Client) {
		c.logger = logger
		if logger != nil {
			c.httpClient.Logger = leveledLogger{logger: logger}
		}
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithRetryConfig sets the retry budget and backoff bounds.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithTimeout bounds each attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient.HTTPClient = client
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithInterceptors runs the chain around every request.
func WithInterceptors(chain *increase.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// WithCache stores successful GET responses for ttl.
func WithCache(cache increase.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// NewClient creates a new HTTP client. A nil tokenManager sends no
// Authorization header.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = constants.MaxRetryCeiling
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   retryClient,
		tokenManager: tokenManager,
		userAgent:    constants.DefaultUserAgent,
		retryMax:     constants.DefaultRetryMax,
		cacheTTL:     constants.DefaultCacheTTL,
	}

	retryClient.CheckRetry = client.checkRetry
	retryClient.RequestLogHook = client.logAttempt

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes an HTTP request. For error statuses the response is returned
// together with the classified API error.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if req.Method == http.MethodGet && c.cache != nil && !req.NoCache {
		return c.doCached(ctx, req)
	}

	resp, err := c.do(ctx, req)
	if err == nil && req.Method != http.MethodGet && c.cache != nil {
		c.invalidate(ctx, req.Path)
	}

	return resp, err
}

func (c *Client) doCached(ctx context.Context, req *Request) (*Response, error) {
	key := c.cacheKey(req.Path, req.Query)

	entry, err := c.cache.Get(ctx, key)
	if err == nil {
		if c.debug && c.logger != nil {
			c.logger.Debug("Cache hit", map[string]interface{}{"key": key})
		}

		return &Response{StatusCode: http.StatusOK, Body: entry.Data}, nil
	}

	result, err, _ := c.group.Do(key, func() (interface{}, error) {
		resp, err := c.do(ctx, req)
		if err != nil {
			return resp, err
		}

		setErr := c.cache.Set(ctx, key, &increase.CacheEntry{
			Data:      resp.Body,
			ExpiresAt: time.Now().Add(c.cacheTTL),
			ETag:      resp.Headers.Get(constants.HeaderETag),
		})
		if setErr != nil && c.logger != nil {
			c.logger.Warn("Failed to cache response", map[string]interface{}{"key": key, "error": setErr.Error()})
		}

		return resp, nil
	})

	resp, _ := result.(*Response)

	return resp, err
}

// invalidate drops cached reads of the written path and each of its
// ancestors, under any query string, so that filtered and paged lists of
// the collection are refetched too.
func (c *Client) invalidate(ctx context.Context, resourcePath string) {
	for p := resourcePath; p != ""; p = p[:max(strings.LastIndex(p, "/"), 0)] {
		err := c.cache.DeleteResource(ctx, c.cacheKey(p, nil))
		if err != nil && c.logger != nil {
			c.logger.Warn("Failed to invalidate cache", map[string]interface{}{"path": p, "error": err.Error()})
		}
	}
}

func (c *Client) cacheKey(resourcePath string, query url.Values) string {
	key := http.MethodGet + " " + c.baseURL + resourcePath
	if len(query) > 0 {
		key += "?" + query.Encode()
	}

	return key
}

func (c *Client) do(ctx context.Context, req *Request) (*Response, error) {
	body, err := encodeBody(req.Body, req.Options.JSONSet)
	if err != nil {
		return nil, err
	}

	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	budget := &retryBudget{remaining: c.retryMax}
	if req.Options.MaxRetries != nil {
		budget.remaining = min(*req.Options.MaxRetries, constants.MaxRetryCeiling)
	}

	headers, err := c.headers(ctx, req, body != nil, budget.remaining > 0)
	if err != nil {
		return nil, err
	}

	view := &increase.Request{Method: req.Method, Path: req.Path, Headers: headers, Body: body}
	if c.interceptors != nil {
		err = c.interceptors.ExecuteRequestInterceptors(ctx, view)
		if err != nil {
			return nil, err
		}
	}

	ctx = context.WithValue(ctx, retryBudgetKey{}, budget)

	var rawBody interface{}
	if view.Body != nil {
		rawBody = view.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header = view.Headers

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method":          req.Method,
			"url":             fullURL,
			"idempotency_key": view.Headers.Get(constants.HeaderIdempotencyKey),
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.finish(ctx, view, nil, connectionError(httpReq.Request, err))
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, c.finish(ctx, view, nil, connectionError(httpReq.Request, err))
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status_code": httpResp.StatusCode,
			"duration":    time.Since(start).String(),
			"bytes":       len(respBody),
		})
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if httpResp.StatusCode >= http.StatusBadRequest {
		apiErr := increase.NewAPIStatusError(httpResp.StatusCode, respBody, httpReq.Request, httpResp)

		return resp, c.finish(ctx, view, resp, apiErr)
	}

	return resp, c.finish(ctx, view, resp, nil)
}

// finish runs the response interceptors and returns the call's error.
func (c *Client) finish(ctx context.Context, view *increase.Request, resp *Response, callErr error) error {
	if c.interceptors == nil {
		return callErr
	}

	out := &increase.Response{Error: callErr}
	if resp != nil {
		out.StatusCode = resp.StatusCode
		out.Headers = resp.Headers
		out.Body = resp.Body
	}

	err := c.interceptors.ExecuteResponseInterceptors(ctx, view, out)
	if callErr != nil {
		return callErr
	}

	return err
}

func (c *Client) headers(ctx context.Context, req *Request, hasBody, retries bool) (http.Header, error) {
	headers := make(http.Header)
	headers.Set(constants.HeaderAccept, constants.ContentTypeJSON)
	headers.Set(constants.HeaderUserAgent, c.userAgent)

	if hasBody {
		headers.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get auth token: %w", err)
		}

		headers.Set(constants.HeaderAuthorization, "Bearer "+token)
	}

	switch {
	case req.Options.IdempotencyKey != "":
		headers.Set(constants.HeaderIdempotencyKey, req.Options.IdempotencyKey)
	case req.Method == http.MethodPost && retries:
		headers.Set(constants.HeaderIdempotencyKey, uuid.NewString())
	}

	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	for key, values := range req.Options.Headers {
		headers[key] = values
	}

	return headers, nil
}

// encodeBody renders the request body and applies sjson patches.
func encodeBody(body interface{}, patches []increase.JSONPatch) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch v := body.(type) {
	case nil:
	case []byte:
		data = v
	default:
		data, err = json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	if len(patches) > 0 && data == nil {
		data = []byte("{}")
	}

	for _, patch := range patches {
		data, err = sjson.SetBytes(data, patch.Path, patch.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to set %s in request body: %w", patch.Path, err)
		}
	}

	return data, nil
}

func connectionError(req *http.Request, err error) error {
	connErr := &increase.APIConnectionError{Request: req, Err: err}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &increase.APITimeoutError{APIConnectionError: connErr}
	}

	return connErr
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values, opts ...increase.RequestOption) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:  http.MethodGet,
		Path:    path,
		Query:   query,
		Options: increase.ApplyRequestOptions(opts...),
	})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}, opts ...increase.RequestOption) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:  http.MethodPost,
		Path:    path,
		Body:    body,
		Options: increase.ApplyRequestOptions(opts...),
	})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}, opts ...increase.RequestOption) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:  http.MethodPut,
		Path:    path,
		Body:    body,
		Options: increase.ApplyRequestOptions(opts...),
	})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}, opts ...increase.RequestOption) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:  http.MethodPatch,
		Path:    path,
		Body:    body,
		Options: increase.ApplyRequestOptions(opts...),
	})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, opts ...increase.RequestOption) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:  http.MethodDelete,
		Path:    path,
		Options: increase.ApplyRequestOptions(opts...),
	})
}

// Cache returns the configured GET cache, or nil.
func (c *Client) Cache() increase.Cache {
	return c.cache
}
