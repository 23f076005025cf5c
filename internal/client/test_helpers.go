package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/fivetwenty-io/increase/internal/http"
	"github.com/fivetwenty-io/increase/pkg/increase"
)

const testCreatedAt = "2024-03-01T12:00:00Z"

// NewTestClient creates a new test client with the given base URL. Retries are
// disabled so that error cases answer in a single round trip.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, nil, internalhttp.WithRetryConfig(0, 0, 0))

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}

// NewRetryingTestClient creates a test client with the default retry budget.
func NewRetryingTestClient(baseURL string) *Client {
	client := &Client{
		httpClient: internalhttp.NewClient(baseURL, nil),
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}

// TestGetOperation represents a generic get operation test case.
type TestGetOperation[TResponse any] struct {
	Name         string
	ID           string
	ExpectedPath string
	StatusCode   int
	Response     interface{}
	WantErr      bool
	ErrMessage   string
}

// RunGetTests serves each case from an httptest server and checks the result
// of getFunc against it.
func RunGetTests[TResponse any](
	t *testing.T,
	tests []TestGetOperation[TResponse],
	getFunc func(*Client) func(context.Context, string, ...increase.RequestOption) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodGet, request.Method)
				writer.Header().Set("Content-Type", "application/json")
				writer.WriteHeader(testCase.StatusCode)

				if testCase.Response != nil {
					_ = json.NewEncoder(writer).Encode(testCase.Response)
				}
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			result, err := getFunc(client)(context.Background(), testCase.ID)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}
		})
	}
}

// RunMissingIDTest checks that an empty ID fails before any request is sent.
func RunMissingIDTest[TResponse any](
	t *testing.T,
	call func(*Client) func(context.Context, string, ...increase.RequestOption) (*TResponse, error),
) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		t.Errorf("unexpected request: %s %s", request.Method, request.URL.Path)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	result, err := call(client)(context.Background(), "")
	require.ErrorIs(t, err, increase.ErrMissingID)
	assert.Nil(t, result)
}

// TestActionOperation represents a POST action on a single resource.
type TestActionOperation struct {
	Name         string
	ExpectedPath string
	Response     interface{}
	Action       func(*Client) error
}

// RunActionTests checks that each action POSTs to its path without a body.
func RunActionTests(t *testing.T, tests []TestActionOperation) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodPost, request.Method)
				assert.Empty(t, request.Header.Get("Content-Type"))
				writer.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(writer).Encode(testCase.Response)
			}))
			defer server.Close()

			require.NoError(t, testCase.Action(NewTestClient(server.URL)))
		})
	}
}

// PageServer serves pages in order, keyed by cursor: pages[0] answers the
// request without a cursor, pages[i] the cursor "cursor_i". It returns the
// server and a counter of requests seen.
func PageServer(t *testing.T, expectedPath string, pages ...[]interface{}) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	calls := &atomic.Int32{}

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, expectedPath, request.URL.Path)

		index := int(calls.Add(1)) - 1

		wantCursor := ""
		if index > 0 {
			wantCursor = cursorFor(index)
		}

		assert.Equal(t, wantCursor, request.URL.Query().Get("cursor"))

		var next interface{}
		if index+1 < len(pages) {
			next = cursorFor(index + 1)
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"data":        pages[index],
			"next_cursor": next,
		})
	}))

	return server, calls
}

func cursorFor(i int) string {
	return "cursor_" + strconv.Itoa(i)
}

// ErrorBody is an API error payload.
func ErrorBody(status int, errorType, title string) map[string]interface{} {
	return map[string]interface{}{
		"status": status,
		"type":   errorType,
		"title":  title,
		"detail": nil,
	}
}

// RequireObjectNotFound asserts the error is the typed 404 leaf.
func RequireObjectNotFound(t *testing.T, err error) {
	t.Helper()

	var notFound *increase.ObjectNotFoundError
	require.True(t, errors.As(err, &notFound), "want *increase.ObjectNotFoundError, got %T", err)
	assert.Equal(t, http.StatusNotFound, notFound.StatusCode)
	assert.True(t, increase.IsNotFound(err))
}

func accountFixture(id string) map[string]interface{} {
	return map[string]interface{}{
		"id":                      id,
		"bank":                    "first_internet_bank",
		"closed_at":               nil,
		"created_at":              testCreatedAt,
		"currency":                "USD",
		"entity_id":               "entity_n8y8tnk2p9339ti393yi",
		"idempotency_key":         nil,
		"informational_entity_id": nil,
		"interest_accrued":        "0.01",
		"interest_accrued_at":     "2024-03-01",
		"interest_rate":           "0.055",
		"name":                    "My first account!",
		"program_id":              "program_i2v2os4mwza1oetokh9i",
		"status":                  "open",
		"type":                    "account",
	}
}

func balanceLookupFixture(accountID string) map[string]interface{} {
	return map[string]interface{}{
		"account_id":        accountID,
		"available_balance": 100,
		"current_balance":   150,
		"type":              "balance_lookup",
	}
}

func accountNumberFixture(id string) map[string]interface{} {
	return map[string]interface{}{
		"id":              id,
		"account_id":      "account_in71c4amph0vgo2qllky",
		"account_number":  "987654321",
		"created_at":      testCreatedAt,
		"idempotency_key": nil,
		"inbound_ach":     map[string]interface{}{"debit_status": "allowed"},
		"inbound_checks":  map[string]interface{}{"status": "check_transfers_only"},
		"name":            "ACH",
		"routing_number":  "101050001",
		"status":          "active",
		"type":            "account_number",
	}
}

func accountTransferFixture(id, status string) map[string]interface{} {
	return map[string]interface{}{
		"id":                         id,
		"account_id":                 "account_in71c4amph0vgo2qllky",
		"amount":                     100,
		"approval":                   nil,
		"cancellation":               nil,
		"created_at":                 testCreatedAt,
		"currency":                   "USD",
		"description":                "Move money",
		"destination_account_id":     "account_uf16sut2ct5bevmq3eh",
		"destination_transaction_id": nil,
		"idempotency_key":            nil,
		"network":                    "account",
		"pending_transaction_id":     nil,
		"status":                     status,
		"transaction_id":             nil,
		"type":                       "account_transfer",
	}
}

func achTransferFixture(id, status string) map[string]interface{} {
	return map[string]interface{}{
		"id":                         id,
		"account_id":                 "account_in71c4amph0vgo2qllky",
		"account_number":             "987654321",
		"amount":                     100,
		"approval":                   nil,
		"cancellation":               nil,
		"company_entry_description":  nil,
		"company_name":               nil,
		"created_at":                 testCreatedAt,
		"currency":                   "USD",
		"destination_account_holder": "business",
		"external_account_id":        nil,
		"funding":                    "checking",
		"idempotency_key":            nil,
		"individual_name":            nil,
		"network":                    "ach",
		"pending_transaction_id":     nil,
		"routing_number":             "101050001",
		"standard_entry_class_code":  "corporate_credit_or_debit",
		"statement_descriptor":       "Statement descriptor",
		"status":                     status,
		"submission":                 nil,
		"transaction_id":             nil,
		"type":                       "ach_transfer",
	}
}

func cardFixture(id string) map[string]interface{} {
	return map[string]interface{}{
		"id":         id,
		"account_id": "account_in71c4amph0vgo2qllky",
		"billing_address": map[string]interface{}{
			"city":        "New York",
			"line1":       "33 Liberty Street",
			"line2":       nil,
			"postal_code": "10045",
			"state":       "NY",
		},
		"created_at":       testCreatedAt,
		"description":      "Office Expenses",
		"digital_wallet":   nil,
		"entity_id":        nil,
		"expiration_month": 11,
		"expiration_year":  2028,
		"idempotency_key":  nil,
		"last4":            "4242",
		"status":           "active",
		"type":             "card",
	}
}

func cardDisputeFixture(id string) map[string]interface{} {
	return map[string]interface{}{
		"id":                      id,
		"acceptance":              nil,
		"amount":                  nil,
		"created_at":              testCreatedAt,
		"disputed_transaction_id": "transaction_uyrp7fld2ium70oa7oi",
		"explanation":             "Unauthorized recurring purchase",
		"idempotency_key":         nil,
		"loss":                    nil,
		"rejection":               nil,
		"status":                  "pending_reviewing",
		"type":                    "card_dispute",
		"win":                     nil,
	}
}

func entityFixture(id, status string) map[string]interface{} {
	return map[string]interface{}{
		"id":                   id,
		"corporation":          nil,
		"created_at":           testCreatedAt,
		"description":          nil,
		"details_confirmed_at": nil,
		"idempotency_key":      nil,
		"natural_person": map[string]interface{}{
			"address": map[string]interface{}{
				"city":  "New York",
				"line1": "33 Liberty Street",
				"line2": nil,
				"state": "NY",
				"zip":   "10045",
			},
			"date_of_birth": "1970-01-31",
			"name":          "Ian Crease",
		},
		"status":                 status,
		"structure":              "natural_person",
		"supplemental_documents": []interface{}{},
		"type":                   "entity",
	}
}

func transactionFixture(id string) map[string]interface{} {
	return map[string]interface{}{
		"id":          id,
		"account_id":  "account_in71c4amph0vgo2qllky",
		"amount":      100,
		"created_at":  testCreatedAt,
		"currency":    "USD",
		"description": "INVOICE 2468",
		"route_id":    "account_number_v18nkfqm6afpsrvy82b2",
		"route_type":  "account_number",
		"source": map[string]interface{}{
			"category": "interest_payment",
			"interest_payment": map[string]interface{}{
				"accrued_on_account_id": "account_in71c4amph0vgo2qllky",
				"amount":                100,
				"currency":              "USD",
				"period_end":            "2024-02-29T23:59:59Z",
				"period_start":          "2024-02-01T00:00:00Z",
			},
		},
		"type": "transaction",
	}
}
