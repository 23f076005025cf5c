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

func TestAccountsClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/accounts", request.URL.Path)
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, map[string]interface{}{
			"name":      "My first account!",
			"entity_id": "entity_n8y8tnk2p9339ti393yi",
		}, body)

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(accountFixture("account_in71c4amph0vgo2qllky"))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	params := increase.NewAccountNewParams("My first account!").WithEntityID("entity_n8y8tnk2p9339ti393yi")

	account, err := client.Accounts().Create(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, "account_in71c4amph0vgo2qllky", account.ID)
	assert.Equal(t, increase.AccountStatusOpen, account.Status)
	assert.Equal(t, increase.CurrencyUSD, account.Currency)
	assert.Nil(t, account.ClosedAt)
	require.NotNil(t, account.EntityID)
	assert.Equal(t, "entity_n8y8tnk2p9339ti393yi", *account.EntityID)
	require.NotNil(t, account.InterestAccruedAt)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *account.InterestAccruedAt)
}

func TestAccountsClient_CreateMissingName(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		t.Errorf("unexpected request: %s %s", request.Method, request.URL.Path)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	account, err := client.Accounts().Create(context.Background(), increase.AccountNewParams{})
	require.Error(t, err)
	assert.True(t, increase.IsMissingField(err))
	assert.Contains(t, err.Error(), "name")
	assert.Nil(t, account)
}

func TestAccountsClient_Get(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[increase.Account]{
		{
			Name:         "successful get",
			ID:           "account_in71c4amph0vgo2qllky",
			ExpectedPath: "/accounts/account_in71c4amph0vgo2qllky",
			StatusCode:   http.StatusOK,
			Response:     accountFixture("account_in71c4amph0vgo2qllky"),
		},
		{
			Name:         "account not found",
			ID:           "account_missing",
			ExpectedPath: "/accounts/account_missing",
			StatusCode:   http.StatusNotFound,
			Response:     ErrorBody(http.StatusNotFound, increase.ErrorTypeObjectNotFound, "Could not find the specified object."),
			WantErr:      true,
			ErrMessage:   "object_not_found_error",
		},
		{
			Name:         "response missing a required field",
			ID:           "account_partial",
			ExpectedPath: "/accounts/account_partial",
			StatusCode:   http.StatusOK,
			Response:     map[string]interface{}{"id": "account_partial"},
			WantErr:      true,
			ErrMessage:   "parsing account",
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context, string, ...increase.RequestOption) (*increase.Account, error) {
		return c.Accounts().Get
	})
}

func TestAccountsClient_GetNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(writer).Encode(ErrorBody(http.StatusNotFound, increase.ErrorTypeObjectNotFound, "not found"))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := client.Accounts().Get(context.Background(), "account_missing")
	RequireObjectNotFound(t, err)
}

func TestAccountsClient_MissingID(t *testing.T) {
	t.Parallel()

	RunMissingIDTest(t, func(c *Client) func(context.Context, string, ...increase.RequestOption) (*increase.Account, error) {
		return c.Accounts().Get
	})
	RunMissingIDTest(t, func(c *Client) func(context.Context, string, ...increase.RequestOption) (*increase.Account, error) {
		return c.Accounts().Close
	})
	RunMissingIDTest(t, func(c *Client) func(context.Context, string, ...increase.RequestOption) (*increase.BalanceLookup, error) {
		return func(ctx context.Context, id string, opts ...increase.RequestOption) (*increase.BalanceLookup, error) {
			return c.Accounts().Balance(ctx, id, increase.AccountBalanceParams{}, opts...)
		}
	})
}

func TestAccountsClient_Update(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/accounts/account_in71c4amph0vgo2qllky", request.URL.Path)
		assert.Equal(t, http.MethodPatch, request.Method)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, map[string]interface{}{"name": "Renamed"}, body)

		account := accountFixture("account_in71c4amph0vgo2qllky")
		account["name"] = "Renamed"

		_ = json.NewEncoder(writer).Encode(account)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	account, err := client.Accounts().Update(context.Background(), "account_in71c4amph0vgo2qllky",
		increase.NewAccountUpdateParams().WithName("Renamed"))
	require.NoError(t, err)
	assert.Equal(t, "Renamed", account.Name)
}

func TestAccountsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/accounts", request.URL.Path)
		assert.Equal(t, http.MethodGet, request.Method)

		query := request.URL.Query()
		assert.Equal(t, "10", query.Get("limit"))
		assert.Equal(t, "open,closed", query.Get("status.in"))
		assert.Equal(t, "entity_n8y8tnk2p9339ti393yi", query.Get("entity_id"))
		assert.Empty(t, query.Get("cursor"))

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"data": []interface{}{
				accountFixture("account_1"),
				accountFixture("account_2"),
			},
			"next_cursor": "cursor_1",
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	params := increase.AccountListParams{}.
		WithLimit(10).
		WithStatus(increase.AccountStatusOpen, increase.AccountStatusClosed).
		WithEntityID("entity_n8y8tnk2p9339ti393yi")

	page, err := client.Accounts().List(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "account_1", page.Data[0].ID)
	assert.True(t, page.HasNextPage())
	assert.Equal(t, "cursor_1", *page.NextCursor)
}

func TestAccountsClient_ListAutoPaging(t *testing.T) {
	t.Parallel()

	server, calls := PageServer(t, "/accounts",
		[]interface{}{accountFixture("account_1"), accountFixture("account_2")},
		[]interface{}{accountFixture("account_3")},
	)
	defer server.Close()

	client := NewTestClient(server.URL)

	iter := client.Accounts().ListAutoPaging(context.Background(), increase.AccountListParams{}.WithLimit(2))
	assert.Equal(t, int32(0), calls.Load(), "no request before iteration")

	first, err := iter.Next()
	require.NoError(t, err)
	assert.Equal(t, "account_1", first.ID)
	assert.Equal(t, int32(1), calls.Load())

	rest, err := iter.All()
	require.NoError(t, err)
	require.Len(t, rest, 2)
	assert.Equal(t, "account_3", rest[1].ID)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, 2, iter.PagesFetched())
}

func TestAccountsClient_Balance(t *testing.T) {
	t.Parallel()

	atTime := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/accounts/account_in71c4amph0vgo2qllky/balance", request.URL.Path)
		assert.Equal(t, http.MethodGet, request.Method)
		assert.Equal(t, "2024-03-01T00:00:00Z", request.URL.Query().Get("at_time"))

		_ = json.NewEncoder(writer).Encode(balanceLookupFixture("account_in71c4amph0vgo2qllky"))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	balance, err := client.Accounts().Balance(context.Background(), "account_in71c4amph0vgo2qllky",
		increase.AccountBalanceParams{}.WithAtTime(atTime))
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance.AvailableBalance)
	assert.Equal(t, int64(150), balance.CurrentBalance)
}

func TestAccountsClient_Close(t *testing.T) {
	t.Parallel()

	closed := accountFixture("account_in71c4amph0vgo2qllky")
	closed["status"] = "closed"
	closed["closed_at"] = testCreatedAt

	RunActionTests(t, []TestActionOperation{
		{
			Name:         "close account",
			ExpectedPath: "/accounts/account_in71c4amph0vgo2qllky/close",
			Response:     closed,
			Action: func(c *Client) error {
				account, err := c.Accounts().Close(context.Background(), "account_in71c4amph0vgo2qllky")
				if err != nil {
					return err
				}

				assert.Equal(t, increase.AccountStatusClosed, account.Status)
				assert.NotNil(t, account.ClosedAt)

				return nil
			},
		},
	})
}
