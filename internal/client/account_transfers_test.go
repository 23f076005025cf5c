package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/increase/pkg/increase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountTransfersClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/account_transfers", request.URL.Path)
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Equal(t, "transfer-key-1", request.Header.Get("Idempotency-Key"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, map[string]interface{}{
			"account_id":             "account_in71c4amph0vgo2qllky",
			"amount":                 float64(100),
			"description":            "Move money",
			"destination_account_id": "account_uf16sut2ct5bevmq3eh",
			"require_approval":       true,
		}, body)

		_ = json.NewEncoder(writer).Encode(accountTransferFixture("account_transfer_7k9qe1ysdgqztnt63l7n", "pending_approval"))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	params := increase.NewAccountTransferNewParams(
		"account_in71c4amph0vgo2qllky", 100, "Move money", "account_uf16sut2ct5bevmq3eh",
	).WithRequireApproval(true)

	transfer, err := client.AccountTransfers().Create(context.Background(), params, increase.WithIdempotencyKey("transfer-key-1"))
	require.NoError(t, err)
	assert.Equal(t, "account_transfer_7k9qe1ysdgqztnt63l7n", transfer.ID)
	assert.Equal(t, int64(100), transfer.Amount)
	assert.Equal(t, increase.AccountTransferStatusPendingApproval, transfer.Status)
	assert.Nil(t, transfer.Approval)
}

func TestAccountTransfersClient_CreateIdempotencyConflict(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"status":      http.StatusConflict,
			"type":        increase.ErrorTypeIdempotencyKeyAlreadyUsed,
			"title":       "The idempotency key submitted has already been used.",
			"resource_id": "account_transfer_7k9qe1ysdgqztnt63l7n",
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	params := increase.NewAccountTransferNewParams("account_1", 100, "Move money", "account_2")

	_, err := client.AccountTransfers().Create(context.Background(), params, increase.WithIdempotencyKey("reused"))
	require.Error(t, err)

	var used *increase.IdempotencyKeyAlreadyUsedError
	require.ErrorAs(t, err, &used)
	assert.Equal(t, "account_transfer_7k9qe1ysdgqztnt63l7n", used.ResourceID)
	assert.True(t, increase.IsConflict(err))
}

func TestAccountTransfersClient_Get(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[increase.AccountTransfer]{
		{
			Name:         "successful get",
			ID:           "account_transfer_7k9qe1ysdgqztnt63l7n",
			ExpectedPath: "/account_transfers/account_transfer_7k9qe1ysdgqztnt63l7n",
			StatusCode:   http.StatusOK,
			Response:     accountTransferFixture("account_transfer_7k9qe1ysdgqztnt63l7n", "complete"),
		},
		{
			Name:         "not found",
			ID:           "account_transfer_missing",
			ExpectedPath: "/account_transfers/account_transfer_missing",
			StatusCode:   http.StatusNotFound,
			Response:     ErrorBody(http.StatusNotFound, increase.ErrorTypeObjectNotFound, "not found"),
			WantErr:      true,
			ErrMessage:   "getting account transfer",
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context, string, ...increase.RequestOption) (*increase.AccountTransfer, error) {
		return c.AccountTransfers().Get
	})
}

func TestAccountTransfersClient_Actions(t *testing.T) {
	t.Parallel()

	RunMissingIDTest(t, func(c *Client) func(context.Context, string, ...increase.RequestOption) (*increase.AccountTransfer, error) {
		return c.AccountTransfers().Approve
	})
	RunMissingIDTest(t, func(c *Client) func(context.Context, string, ...increase.RequestOption) (*increase.AccountTransfer, error) {
		return c.AccountTransfers().Cancel
	})

	RunActionTests(t, []TestActionOperation{
		{
			Name:         "approve",
			ExpectedPath: "/account_transfers/account_transfer_1/approve",
			Response:     accountTransferFixture("account_transfer_1", "complete"),
			Action: func(c *Client) error {
				transfer, err := c.AccountTransfers().Approve(context.Background(), "account_transfer_1")
				if err != nil {
					return err
				}

				assert.Equal(t, increase.AccountTransferStatusComplete, transfer.Status)

				return nil
			},
		},
		{
			Name:         "cancel",
			ExpectedPath: "/account_transfers/account_transfer_1/cancel",
			Response:     accountTransferFixture("account_transfer_1", "canceled"),
			Action: func(c *Client) error {
				transfer, err := c.AccountTransfers().Cancel(context.Background(), "account_transfer_1")
				if err != nil {
					return err
				}

				assert.Equal(t, increase.AccountTransferStatusCanceled, transfer.Status)

				return nil
			},
		},
	})
}

func TestAccountTransfersClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/account_transfers", request.URL.Path)
		assert.Equal(t, "account_in71c4amph0vgo2qllky", request.URL.Query().Get("account_id"))

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"data":        []interface{}{accountTransferFixture("account_transfer_1", "complete")},
			"next_cursor": nil,
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	page, err := client.AccountTransfers().List(context.Background(),
		increase.AccountTransferListParams{}.WithAccountID("account_in71c4amph0vgo2qllky"))
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.False(t, page.HasNextPage())
}
