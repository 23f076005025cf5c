package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	increasehttp "github.com/fivetwenty-io/increase/internal/http"
	"github.com/fivetwenty-io/increase/pkg/increase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenManager struct {
	token string
	err   error
}

func (m *stubTokenManager) GetToken(context.Context) (string, error) { return m.token, m.err }
func (m *stubTokenManager) RefreshToken(context.Context) error       { return nil }
func (m *stubTokenManager) SetToken(token string, _ time.Time)       { m.token = token }

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) add(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (l *recordingLogger) snapshot() []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]logEntry(nil), l.entries...)
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) { l.add("debug", msg, fields) }
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  { l.add("info", msg, fields) }
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  { l.add("warn", msg, fields) }
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) { l.add("error", msg, fields) }

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return server
}

// statusSequence answers with the given statuses in order, then 200.
func statusSequence(attempts *atomic.Int32, statuses ...int) http.HandlerFunc {
	return func(writer http.ResponseWriter, _ *http.Request) {
		n := int(attempts.Add(1))
		if n <= len(statuses) {
			writer.WriteHeader(statuses[n-1])

			return
		}

		_, _ = writer.Write([]byte(`{}`))
	}
}

func fastRetries(retryMax int) increasehttp.Option {
	return increasehttp.WithRetryConfig(retryMax, time.Millisecond, 5*time.Millisecond)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()

	t.Run("authenticated get decodes body", func(t *testing.T) {
		t.Parallel()

		server := newServer(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodGet, request.Method)
			assert.Equal(t, "/accounts/account_in71c4amph0vgo2qllky", request.URL.Path)
			assert.Equal(t, "Bearer secret_key", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Empty(t, request.Header.Get("Idempotency-Key"))

			_, _ = writer.Write([]byte(`{"id":"account_in71c4amph0vgo2qllky","name":"Operating","type":"account"}`))
		})

		client := increasehttp.NewClient(server.URL, &stubTokenManager{token: "secret_key"})

		resp, err := client.Do(context.Background(), &increasehttp.Request{
			Method: http.MethodGet,
			Path:   "/accounts/account_in71c4amph0vgo2qllky",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var account struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		}

		require.NoError(t, json.Unmarshal(resp.Body, &account))
		assert.Equal(t, "account_in71c4amph0vgo2qllky", account.ID)
		assert.Equal(t, "Operating", account.Name)
	})

	t.Run("list filters travel as query string", func(t *testing.T) {
		t.Parallel()

		server := newServer(t, func(writer http.ResponseWriter, request *http.Request) {
			query := request.URL.Query()
			assert.Equal(t, "10", query.Get("limit"))
			assert.Equal(t, []string{"open", "closed"}, query["status.in"])

			_, _ = writer.Write([]byte(`{"data":[],"next_cursor":null}`))
		})

		client := increasehttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &increasehttp.Request{
			Method: http.MethodGet,
			Path:   "/accounts",
			Query:  url.Values{"limit": {"10"}, "status.in": {"open", "closed"}},
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"data":[],"next_cursor":null}`, string(resp.Body))
	})

	t.Run("post sends json with an idempotency key", func(t *testing.T) {
		t.Parallel()

		server := newServer(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPost, request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))
			assert.NotEmpty(t, request.Header.Get("Idempotency-Key"))

			var body map[string]string

			assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, map[string]string{"name": "Operating", "entity_id": "entity_1"}, body)

			writer.WriteHeader(http.StatusCreated)
		})

		client := increasehttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &increasehttp.Request{
			Method: http.MethodPost,
			Path:   "/accounts",
			Body:   map[string]string{"name": "Operating", "entity_id": "entity_1"},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("error status is classified", func(t *testing.T) {
		t.Parallel()

		server := newServer(t, func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusNotFound)

			_, _ = writer.Write([]byte(`{"status":404,"type":"object_not_found_error","title":"No Account with that ID."}`))
		})

		client := increasehttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &increasehttp.Request{
			Method: http.MethodGet,
			Path:   "/accounts/account_missing",
		})
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var notFound *increase.ObjectNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "No Account with that ID.", notFound.Title)
		assert.True(t, increase.IsNotFound(err))
	})

	t.Run("request headers are forwarded", func(t *testing.T) {
		t.Parallel()

		server := newServer(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "ops-dashboard", request.Header.Get("X-Caller"))
			writer.WriteHeader(http.StatusOK)
		})

		client := increasehttp.NewClient(server.URL, nil)

		_, err := client.Do(context.Background(), &increasehttp.Request{
			Method:  http.MethodGet,
			Path:    "/accounts",
			Headers: map[string]string{"X-Caller": "ops-dashboard"},
		})
		require.NoError(t, err)
	})

	t.Run("debug mode logs both directions", func(t *testing.T) {
		t.Parallel()

		server := newServer(t, func(writer http.ResponseWriter, _ *http.Request) {
			_, _ = writer.Write([]byte(`{"id":"account_1"}`))
		})

		logger := &recordingLogger{}
		client := increasehttp.NewClient(server.URL, nil, increasehttp.WithLogger(logger), increasehttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/accounts/account_1", nil)
		require.NoError(t, err)

		entries := logger.snapshot()
		require.Len(t, entries, 2)
		assert.Equal(t, "HTTP Request", entries[0].msg)
		assert.Equal(t, http.MethodGet, entries[0].fields["method"])
		assert.Equal(t, "HTTP Response", entries[1].msg)
		assert.Equal(t, http.StatusOK, entries[1].fields["status_code"])
	})
}

func TestClient_Methods(t *testing.T) {
	t.Parallel()

	const path = "/accounts/account_1"

	body := map[string]string{"name": "Renamed"}

	calls := map[string]func(*increasehttp.Client) (*increasehttp.Response, error){
		http.MethodGet: func(c *increasehttp.Client) (*increasehttp.Response, error) {
			return c.Get(context.Background(), path, nil)
		},
		http.MethodPost: func(c *increasehttp.Client) (*increasehttp.Response, error) {
			return c.Post(context.Background(), path, body)
		},
		http.MethodPut: func(c *increasehttp.Client) (*increasehttp.Response, error) {
			return c.Put(context.Background(), path, body)
		},
		http.MethodPatch: func(c *increasehttp.Client) (*increasehttp.Response, error) {
			return c.Patch(context.Background(), path, body)
		},
		http.MethodDelete: func(c *increasehttp.Client) (*increasehttp.Response, error) {
			return c.Delete(context.Background(), path)
		},
	}

	for method, call := range calls {
		t.Run(method, func(t *testing.T) {
			t.Parallel()

			server := newServer(t, func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, method, request.Method)
				assert.Equal(t, path, request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			})

			resp, err := call(increasehttp.NewClient(server.URL, nil))
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}
}

func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		statuses []int
		attempts int32
		wantErr  bool
	}{
		{name: "internal server errors", statuses: []int{500, 500}, attempts: 3},
		{name: "rate limited", statuses: []int{429}, attempts: 2},
		{name: "bad request is final", statuses: []int{400}, attempts: 1, wantErr: true},
		{name: "not found is final", statuses: []int{404}, attempts: 1, wantErr: true},
		{name: "budget exhausted", statuses: []int{503, 503, 503, 503}, attempts: 4, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var attempts atomic.Int32

			server := newServer(t, statusSequence(&attempts, tc.statuses...))
			client := increasehttp.NewClient(server.URL, nil, fastRetries(3))

			resp, err := client.Get(context.Background(), "/accounts", nil)
			assert.Equal(t, tc.attempts, attempts.Load())

			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, tc.statuses[len(tc.statuses)-1], resp.StatusCode)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RequestOptions(t *testing.T) {
	t.Parallel()

	t.Run("caller idempotency key is sent unchanged", func(t *testing.T) {
		t.Parallel()

		server := newServer(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "create-operating-account", request.Header.Get("Idempotency-Key"))
			writer.WriteHeader(http.StatusOK)
		})

		client := increasehttp.NewClient(server.URL, nil)

		_, err := client.Post(context.Background(), "/accounts", map[string]string{"name": "Operating"},
			increase.WithIdempotencyKey("create-operating-account"))
		require.NoError(t, err)
	})

	t.Run("retried post reuses its idempotency key", func(t *testing.T) {
		t.Parallel()

		var (
			mu   sync.Mutex
			keys []string
		)

		server := newServer(t, func(writer http.ResponseWriter, request *http.Request) {
			mu.Lock()
			keys = append(keys, request.Header.Get("Idempotency-Key"))
			first := len(keys) == 1
			mu.Unlock()

			if first {
				writer.WriteHeader(http.StatusServiceUnavailable)

				return
			}

			writer.WriteHeader(http.StatusOK)
		})

		client := increasehttp.NewClient(server.URL, nil, fastRetries(2))

		_, err := client.Post(context.Background(), "/accounts", map[string]string{"name": "Operating"})
		require.NoError(t, err)

		mu.Lock()
		defer mu.Unlock()

		require.Len(t, keys, 2)
		assert.NotEmpty(t, keys[0])
		assert.Equal(t, keys[0], keys[1])
	})

	t.Run("no generated key without retries", func(t *testing.T) {
		t.Parallel()

		server := newServer(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Empty(t, request.Header.Get("Idempotency-Key"))
			writer.WriteHeader(http.StatusOK)
		})

		client := increasehttp.NewClient(server.URL, nil, fastRetries(0))

		_, err := client.Post(context.Background(), "/accounts", map[string]string{"name": "Operating"})
		require.NoError(t, err)
	})

	t.Run("per-call retry override", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := newServer(t, statusSequence(&attempts, 500, 500, 500, 500))
		client := increasehttp.NewClient(server.URL, nil, fastRetries(3))

		resp, err := client.Get(context.Background(), "/accounts", nil, increase.WithMaxRetries(0))
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, int32(1), attempts.Load())

		var serverErr *increase.InternalServerError
		assert.ErrorAs(t, err, &serverErr)
	})

	t.Run("json set patches body", func(t *testing.T) {
		t.Parallel()

		server := newServer(t, func(writer http.ResponseWriter, request *http.Request) {
			var body map[string]interface{}

			assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, "Operating", body["name"])
			assert.Equal(t, "program_123", body["program_id"])
			assert.Equal(t, map[string]interface{}{"reason": "audit"}, body["metadata"])
			writer.WriteHeader(http.StatusOK)
		})

		client := increasehttp.NewClient(server.URL, nil)

		_, err := client.Post(context.Background(), "/accounts", map[string]string{"name": "Operating"},
			increase.WithJSONSet("program_id", "program_123"),
			increase.WithJSONSet("metadata.reason", "audit"))
		require.NoError(t, err)
	})

	t.Run("extra header", func(t *testing.T) {
		t.Parallel()

		server := newServer(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "trace-1", request.Header.Get("X-Trace"))
			assert.Equal(t, "increase-go/1.0.0", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		})

		client := increasehttp.NewClient(server.URL, nil)

		_, err := client.Get(context.Background(), "/accounts", nil, increase.WithHeader("X-Trace", "trace-1"))
		require.NoError(t, err)
	})
}

func TestClient_ConnectionErrors(t *testing.T) {
	t.Parallel()

	t.Run("unreachable host", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		serverURL := server.URL
		server.Close()

		client := increasehttp.NewClient(serverURL, nil, fastRetries(0))

		resp, err := client.Get(context.Background(), "/accounts", nil)
		require.Error(t, err)
		assert.Nil(t, resp)

		var connErr *increase.APIConnectionError
		require.ErrorAs(t, err, &connErr)
		assert.Equal(t, "/accounts", connErr.Request.URL.Path)
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		server := newServer(t, func(http.ResponseWriter, *http.Request) {
			select {
			case <-release:
			case <-time.After(200 * time.Millisecond):
			}
		})
		t.Cleanup(func() { close(release) })

		client := increasehttp.NewClient(server.URL, nil, fastRetries(0), increasehttp.WithTimeout(20*time.Millisecond))

		_, err := client.Get(context.Background(), "/accounts", nil)
		require.Error(t, err)

		var timeoutErr *increase.APITimeoutError
		require.ErrorAs(t, err, &timeoutErr)

		var connErr *increase.APIConnectionError
		assert.True(t, errors.As(err, &connErr))
	})

	t.Run("token manager failure", func(t *testing.T) {
		t.Parallel()

		errNoKey := errors.New("no key")
		client := increasehttp.NewClient("http://127.0.0.1:1", &stubTokenManager{err: errNoKey})

		_, err := client.Get(context.Background(), "/accounts", nil)
		require.ErrorIs(t, err, errNoKey)
	})
}

func TestClient_Cache(t *testing.T) {
	t.Parallel()

	cachedClient := func(t *testing.T, handler http.HandlerFunc) *increasehttp.Client {
		t.Helper()

		server := newServer(t, handler)

		return increasehttp.NewClient(server.URL, nil, increasehttp.WithCache(increase.NewMemoryCache(10), time.Minute))
	}

	t.Run("serves repeated gets from cache", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32

		client := cachedClient(t, func(writer http.ResponseWriter, _ *http.Request) {
			hits.Add(1)

			_, _ = writer.Write([]byte(`{"id":"account_1"}`))
		})

		for range 3 {
			resp, err := client.Get(context.Background(), "/accounts/account_1", nil)
			require.NoError(t, err)
			assert.JSONEq(t, `{"id":"account_1"}`, string(resp.Body))
		}

		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("writes invalidate the resource", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32

		client := cachedClient(t, func(writer http.ResponseWriter, request *http.Request) {
			if request.Method == http.MethodGet {
				hits.Add(1)
			}

			_, _ = writer.Write([]byte(`{"id":"account_1"}`))
		})

		_, err := client.Get(context.Background(), "/accounts/account_1", nil)
		require.NoError(t, err)

		_, err = client.Patch(context.Background(), "/accounts/account_1", map[string]string{"name": "Renamed"})
		require.NoError(t, err)

		_, err = client.Get(context.Background(), "/accounts/account_1", nil)
		require.NoError(t, err)
		assert.Equal(t, int32(2), hits.Load())
	})

	t.Run("writes invalidate filtered and paged lists", func(t *testing.T) {
		t.Parallel()

		var listHits atomic.Int32

		client := cachedClient(t, func(writer http.ResponseWriter, request *http.Request) {
			if request.Method == http.MethodGet && request.URL.Path == "/accounts" {
				listHits.Add(1)
			}

			_, _ = writer.Write([]byte(`{"data":[],"next_cursor":null}`))
		})

		pages := []url.Values{{"limit": {"10"}}, {"cursor": {"page_2"}}, {"status.in": {"open"}}}
		for _, query := range pages {
			_, err := client.Get(context.Background(), "/accounts", query)
			require.NoError(t, err)
		}

		_, err := client.Post(context.Background(), "/accounts", map[string]string{"name": "New"})
		require.NoError(t, err)

		for _, query := range pages {
			_, err := client.Get(context.Background(), "/accounts", query)
			require.NoError(t, err)
		}

		assert.Equal(t, int32(6), listHits.Load())
	})

	t.Run("actions invalidate every ancestor", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32

		client := cachedClient(t, func(writer http.ResponseWriter, request *http.Request) {
			if request.Method == http.MethodGet {
				hits.Add(1)
			}

			_, _ = writer.Write([]byte(`{"id":"account_1"}`))
		})

		reads := []string{"/accounts", "/accounts/account_1"}
		for _, path := range reads {
			_, err := client.Get(context.Background(), path, url.Values{"limit": {"1"}})
			require.NoError(t, err)
		}

		_, err := client.Post(context.Background(), "/accounts/account_1/close", nil)
		require.NoError(t, err)

		for _, path := range reads {
			_, err := client.Get(context.Background(), path, url.Values{"limit": {"1"}})
			require.NoError(t, err)
		}

		assert.Equal(t, int32(4), hits.Load())
	})

	t.Run("errors are not cached", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32

		client := cachedClient(t, func(writer http.ResponseWriter, _ *http.Request) {
			hits.Add(1)
			writer.WriteHeader(http.StatusNotFound)
		})

		for range 2 {
			_, err := client.Get(context.Background(), "/accounts/missing", nil)
			require.Error(t, err)
		}

		assert.Equal(t, int32(2), hits.Load())
	})
}

func TestClient_Interceptors(t *testing.T) {
	t.Parallel()

	server := newServer(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "intercepted", request.Header.Get("X-Source"))
		writer.WriteHeader(http.StatusOK)
	})

	collector := increase.NewMetricsCollector()
	chain := increase.NewInterceptorChain()
	chain.AddRequestInterceptor(increase.HeaderInterceptor(map[string]string{"X-Source": "intercepted"}))
	chain.AddRequestInterceptor(increase.MetricsRequestInterceptor(collector))
	chain.AddResponseInterceptor(increase.MetricsResponseInterceptor(collector))

	client := increasehttp.NewClient(server.URL, nil, increasehttp.WithInterceptors(chain))

	_, err := client.Get(context.Background(), "/accounts", nil)
	require.NoError(t, err)

	metrics, ok := collector.GetMetrics("GET /accounts")
	require.True(t, ok)
	assert.Equal(t, int64(1), metrics.TotalRequests)
}

func TestClient_ResponseInterceptorsRunOncePerCall(t *testing.T) {
	t.Parallel()

	var attempts, seen atomic.Int32

	server := newServer(t, statusSequence(&attempts, http.StatusInternalServerError, http.StatusBadGateway))

	chain := increase.NewInterceptorChain()
	chain.AddResponseInterceptor(func(_ context.Context, _ *increase.Request, resp *increase.Response) error {
		seen.Add(1)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		return nil
	})

	client := increasehttp.NewClient(server.URL, nil, increasehttp.WithInterceptors(chain), fastRetries(3))

	_, err := client.Get(context.Background(), "/accounts", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(3), attempts.Load())
	assert.Equal(t, int32(1), seen.Load())
}

func TestClient_RetryWarnings(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32

	server := newServer(t, statusSequence(&attempts, http.StatusTooManyRequests))

	logger := &recordingLogger{}
	client := increasehttp.NewClient(server.URL, nil, increasehttp.WithLogger(logger), fastRetries(2))

	_, err := client.Get(context.Background(), "/accounts", nil)
	require.NoError(t, err)

	entries := logger.snapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, "warn", entries[0].level)
	assert.Equal(t, "Retrying request", entries[0].msg)
}
