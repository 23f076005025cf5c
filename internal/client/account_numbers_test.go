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

func TestAccountNumbersClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/account_numbers", request.URL.Path)
		assert.Equal(t, http.MethodPost, request.Method)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "account_in71c4amph0vgo2qllky", body["account_id"])
		assert.Equal(t, "Rent payments", body["name"])
		assert.Equal(t, map[string]interface{}{"debit_status": "blocked"}, body["inbound_ach"])
		assert.NotContains(t, body, "inbound_checks")

		_ = json.NewEncoder(writer).Encode(accountNumberFixture("account_number_v18nkfqm6afpsrvy82b2"))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	params := increase.NewAccountNumberNewParams("account_in71c4amph0vgo2qllky", "Rent payments").
		WithInboundACH(increase.AccountNumberInboundACHParam{DebitStatus: increase.F(increase.AccountNumberDebitStatusBlocked)})

	number, err := client.AccountNumbers().Create(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, "account_number_v18nkfqm6afpsrvy82b2", number.ID)
	assert.Equal(t, increase.AccountNumberDebitStatusAllowed, number.InboundACH.DebitStatus)
	assert.Equal(t, increase.AccountNumberCheckStatusCheckTransfersOnly, number.InboundChecks.Status)
}

func TestAccountNumbersClient_Get(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[increase.AccountNumber]{
		{
			Name:         "successful get",
			ID:           "account_number_v18nkfqm6afpsrvy82b2",
			ExpectedPath: "/account_numbers/account_number_v18nkfqm6afpsrvy82b2",
			StatusCode:   http.StatusOK,
			Response:     accountNumberFixture("account_number_v18nkfqm6afpsrvy82b2"),
		},
		{
			Name:         "not found",
			ID:           "account_number_missing",
			ExpectedPath: "/account_numbers/account_number_missing",
			StatusCode:   http.StatusNotFound,
			Response:     ErrorBody(http.StatusNotFound, increase.ErrorTypeObjectNotFound, "not found"),
			WantErr:      true,
			ErrMessage:   "getting account number",
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context, string, ...increase.RequestOption) (*increase.AccountNumber, error) {
		return c.AccountNumbers().Get
	})
	RunMissingIDTest(t, func(c *Client) func(context.Context, string, ...increase.RequestOption) (*increase.AccountNumber, error) {
		return c.AccountNumbers().Get
	})
}

func TestAccountNumbersClient_Update(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/account_numbers/account_number_v18nkfqm6afpsrvy82b2", request.URL.Path)
		assert.Equal(t, http.MethodPatch, request.Method)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, map[string]interface{}{"status": "disabled"}, body)

		number := accountNumberFixture("account_number_v18nkfqm6afpsrvy82b2")
		number["status"] = "disabled"

		_ = json.NewEncoder(writer).Encode(number)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	number, err := client.AccountNumbers().Update(context.Background(), "account_number_v18nkfqm6afpsrvy82b2",
		increase.AccountNumberUpdateParams{}.WithStatus(increase.AccountNumberStatusDisabled))
	require.NoError(t, err)
	assert.Equal(t, increase.AccountNumberStatusDisabled, number.Status)
}

func TestAccountNumbersClient_ListAutoPaging(t *testing.T) {
	t.Parallel()

	server, calls := PageServer(t, "/account_numbers",
		[]interface{}{accountNumberFixture("account_number_1")},
		[]interface{}{accountNumberFixture("account_number_2")},
		[]interface{}{accountNumberFixture("account_number_3")},
	)
	defer server.Close()

	client := NewTestClient(server.URL)

	var ids []string

	for number, err := range client.AccountNumbers().ListAutoPaging(context.Background(), increase.AccountNumberListParams{}).Seq() {
		require.NoError(t, err)

		ids = append(ids, number.ID)
		if len(ids) == 2 {
			break
		}
	}

	assert.Equal(t, []string{"account_number_1", "account_number_2"}, ids)
	assert.Equal(t, int32(2), calls.Load(), "breaking out stops further page requests")
}
