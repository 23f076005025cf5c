package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fivetwenty-io/increase/pkg/increase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionsClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/transactions/transaction_uyrp7fld2ium70oa7oi", request.URL.Path)
		assert.Equal(t, http.MethodGet, request.Method)

		_ = json.NewEncoder(writer).Encode(transactionFixture("transaction_uyrp7fld2ium70oa7oi"))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	transaction, err := client.Transactions().Get(context.Background(), "transaction_uyrp7fld2ium70oa7oi")
	require.NoError(t, err)
	assert.Equal(t, int64(100), transaction.Amount)
	require.NotNil(t, transaction.RouteType)
	assert.Equal(t, increase.TransactionRouteTypeAccountNumber, *transaction.RouteType)
	assert.Equal(t, increase.TransactionSourceCategoryInterestPayment, transaction.Source.Category)
	require.NotNil(t, transaction.Source.InterestPayment)
	assert.Equal(t, int64(100), transaction.Source.InterestPayment.Amount)
	assert.Nil(t, transaction.Source.ACHTransferIntention)
	assert.Nil(t, transaction.Source.AccountTransferIntention)
}

func TestTransactionsClient_GetUnmodeledSource(t *testing.T) {
	t.Parallel()

	fixture := transactionFixture("transaction_card")
	fixture["source"] = map[string]interface{}{
		"category":        "card_settlement",
		"card_settlement": map[string]interface{}{"amount": 100},
	}

	tests := []TestGetOperation[increase.Transaction]{
		{
			Name:         "unmodeled source category",
			ID:           "transaction_card",
			ExpectedPath: "/transactions/transaction_card",
			StatusCode:   http.StatusOK,
			Response:     fixture,
		},
		{
			Name:         "rate limited",
			ID:           "transaction_busy",
			ExpectedPath: "/transactions/transaction_busy",
			StatusCode:   http.StatusTooManyRequests,
			Response:     ErrorBody(http.StatusTooManyRequests, increase.ErrorTypeRateLimited, "Slow down"),
			WantErr:      true,
			ErrMessage:   "rate_limited_error",
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context, string, ...increase.RequestOption) (*increase.Transaction, error) {
		return c.Transactions().Get
	})
	RunMissingIDTest(t, func(c *Client) func(context.Context, string, ...increase.RequestOption) (*increase.Transaction, error) {
		return c.Transactions().Get
	})
}

func TestTransactionsClient_List(t *testing.T) {
	t.Parallel()

	after := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/transactions", request.URL.Path)

		query := request.URL.Query()
		assert.Equal(t, "account_in71c4amph0vgo2qllky", query.Get("account_id"))
		assert.Equal(t, "interest_payment,card_settlement", query.Get("category.in"))
		assert.Equal(t, "2024-02-01T00:00:00Z", query.Get("created_at.on_or_after"))
		assert.False(t, query.Has("created_at.before"))

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"data":        []interface{}{transactionFixture("transaction_1")},
			"next_cursor": nil,
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	params := increase.TransactionListParams{}.
		WithAccountID("account_in71c4amph0vgo2qllky").
		WithCategory(increase.TransactionSourceCategoryInterestPayment, increase.TransactionSourceCategoryCardSettlement).
		WithCreatedAt(increase.CreatedAtFilter{OnOrAfter: increase.F(after)})

	page, err := client.Transactions().List(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "transaction_1", page.Data[0].ID)
}

func TestTransactionsClient_ListAutoPagingStopsOnError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Query().Get("cursor") == "" {
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"data":        []interface{}{transactionFixture("transaction_1")},
				"next_cursor": "cursor_1",
			})

			return
		}

		writer.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(writer).Encode(ErrorBody(http.StatusNotFound, increase.ErrorTypeAPIMethodNotFound, "gone"))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	iter := client.Transactions().ListAutoPaging(context.Background(), increase.TransactionListParams{})

	first, err := iter.Next()
	require.NoError(t, err)
	assert.Equal(t, "transaction_1", first.ID)

	_, err = iter.Next()
	require.Error(t, err)

	var notFound *increase.APIMethodNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.False(t, iter.HasNext())
	assert.Equal(t, 2, iter.PagesFetched())
}
