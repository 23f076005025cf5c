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

func TestACHTransfersClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/ach_transfers", request.URL.Path)
		assert.Equal(t, http.MethodPost, request.Method)
		assert.NotEmpty(t, request.Header.Get("Idempotency-Key"), "retried creates carry a generated key")

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "987654321", body["account_number"])
		assert.Equal(t, "101050001", body["routing_number"])
		assert.Equal(t, "savings", body["funding"])
		assert.Equal(t, "INV 1234", body["metadata_reference"])

		_ = json.NewEncoder(writer).Encode(achTransferFixture("ach_transfer_uoxatyh3lt5evrsdvo7q", "pending_submission"))
	}))
	defer server.Close()

	client := NewRetryingTestClient(server.URL)

	params := increase.NewACHTransferNewParams("account_in71c4amph0vgo2qllky", 100, "Statement descriptor").
		WithDestination("987654321", "101050001").
		WithFunding(increase.ACHTransferFundingSavings)

	transfer, err := client.ACHTransfers().Create(context.Background(), params,
		increase.WithJSONSet("metadata_reference", "INV 1234"))
	require.NoError(t, err)
	assert.Equal(t, "ach_transfer_uoxatyh3lt5evrsdvo7q", transfer.ID)
	assert.Equal(t, increase.ACHTransferStatusPendingSubmission, transfer.Status)
	assert.Equal(t, increase.ACHTransferFundingChecking, transfer.Funding)
}

func TestACHTransfersClient_UnknownStatus(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[increase.ACHTransfer]{
		{
			Name:         "status added after this client version",
			ID:           "ach_transfer_1",
			ExpectedPath: "/ach_transfers/ach_transfer_1",
			StatusCode:   http.StatusOK,
			Response:     achTransferFixture("ach_transfer_1", "pending_settlement_review"),
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context, string, ...increase.RequestOption) (*increase.ACHTransfer, error) {
		return func(ctx context.Context, id string, opts ...increase.RequestOption) (*increase.ACHTransfer, error) {
			transfer, err := c.ACHTransfers().Get(ctx, id, opts...)
			if err == nil {
				assert.Equal(t, increase.ACHTransferStatus("pending_settlement_review"), transfer.Status)
				assert.False(t, transfer.Status.IsKnown())
			}

			return transfer, err
		}
	})
}

func TestACHTransfersClient_Actions(t *testing.T) {
	t.Parallel()

	RunActionTests(t, []TestActionOperation{
		{
			Name:         "approve",
			ExpectedPath: "/ach_transfers/ach_transfer_1/approve",
			Response:     achTransferFixture("ach_transfer_1", "pending_submission"),
			Action: func(c *Client) error {
				_, err := c.ACHTransfers().Approve(context.Background(), "ach_transfer_1")

				return err
			},
		},
		{
			Name:         "cancel",
			ExpectedPath: "/ach_transfers/ach_transfer_1/cancel",
			Response:     achTransferFixture("ach_transfer_1", "canceled"),
			Action: func(c *Client) error {
				transfer, err := c.ACHTransfers().Cancel(context.Background(), "ach_transfer_1")
				if err != nil {
					return err
				}

				assert.Equal(t, increase.ACHTransferStatusCanceled, transfer.Status)

				return nil
			},
		},
	})
}

func TestACHTransfersClient_ListAutoPaging(t *testing.T) {
	t.Parallel()

	server, calls := PageServer(t, "/ach_transfers",
		[]interface{}{achTransferFixture("ach_transfer_1", "submitted")},
		[]interface{}{achTransferFixture("ach_transfer_2", "returned")},
	)
	defer server.Close()

	client := NewTestClient(server.URL)

	var statuses []increase.ACHTransferStatus

	err := client.ACHTransfers().ListAutoPaging(context.Background(), increase.ACHTransferListParams{}).
		ForEach(func(transfer increase.ACHTransfer) error {
			statuses = append(statuses, transfer.Status)

			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, []increase.ACHTransferStatus{increase.ACHTransferStatusSubmitted, increase.ACHTransferStatusReturned}, statuses)
	assert.Equal(t, int32(2), calls.Load())
}
