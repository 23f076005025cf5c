package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	internalhttp "github.com/fivetwenty-io/increase/internal/http"
	"github.com/fivetwenty-io/increase/pkg/increase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardsClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/cards", request.URL.Path)
		assert.Equal(t, http.MethodPost, request.Method)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, map[string]interface{}{
			"account_id":  "account_in71c4amph0vgo2qllky",
			"description": "Office Expenses",
			"billing_address": map[string]interface{}{
				"city":        "New York",
				"line1":       "33 Liberty Street",
				"postal_code": "10045",
				"state":       "NY",
			},
		}, body)

		_ = json.NewEncoder(writer).Encode(cardFixture("card_oubs0hwk5rn6knuecxg2"))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	params := increase.NewCardNewParams("account_in71c4amph0vgo2qllky").
		WithDescription("Office Expenses").
		WithBillingAddress(increase.NewCardBillingAddressParam("33 Liberty Street", "New York", "NY", "10045"))

	card, err := client.Cards().Create(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, "card_oubs0hwk5rn6knuecxg2", card.ID)
	assert.Equal(t, "4242", card.Last4)
	assert.Equal(t, int64(2028), card.ExpirationYear)
	require.NotNil(t, card.BillingAddress.City)
	assert.Equal(t, "New York", *card.BillingAddress.City)
	assert.Nil(t, card.BillingAddress.Line2)
}

func TestCardsClient_CreateNestedMissingField(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		t.Errorf("unexpected request: %s %s", request.Method, request.URL.Path)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	params := increase.NewCardNewParams("account_1").
		WithBillingAddress(increase.CardBillingAddressParam{Line1: increase.String("33 Liberty Street")})

	_, err := client.Cards().Create(context.Background(), params)
	require.Error(t, err)

	var missing *increase.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "billing_address.city", missing.Path)
}

func TestCardsClient_Get(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[increase.Card]{
		{
			Name:         "successful get",
			ID:           "card_oubs0hwk5rn6knuecxg2",
			ExpectedPath: "/cards/card_oubs0hwk5rn6knuecxg2",
			StatusCode:   http.StatusOK,
			Response:     cardFixture("card_oubs0hwk5rn6knuecxg2"),
		},
		{
			Name:         "forbidden in this environment",
			ID:           "card_live",
			ExpectedPath: "/cards/card_live",
			StatusCode:   http.StatusForbidden,
			Response:     ErrorBody(http.StatusForbidden, increase.ErrorTypeEnvironmentMismatch, "wrong environment"),
			WantErr:      true,
			ErrMessage:   "environment_mismatch_error",
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context, string, ...increase.RequestOption) (*increase.Card, error) {
		return c.Cards().Get
	})
	RunMissingIDTest(t, func(c *Client) func(context.Context, string, ...increase.RequestOption) (*increase.Card, error) {
		return c.Cards().Get
	})
	RunMissingIDTest(t, func(c *Client) func(context.Context, string, ...increase.RequestOption) (*increase.CardDetails, error) {
		return c.Cards().Details
	})
}

func TestCardsClient_Update(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/cards/card_1", request.URL.Path)
		assert.Equal(t, http.MethodPatch, request.Method)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, map[string]interface{}{"status": "disabled"}, body)

		card := cardFixture("card_1")
		card["status"] = "disabled"

		_ = json.NewEncoder(writer).Encode(card)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	card, err := client.Cards().Update(context.Background(), "card_1",
		increase.CardUpdateParams{}.WithStatus(increase.CardStatusDisabled))
	require.NoError(t, err)
	assert.Equal(t, increase.CardStatusDisabled, card.Status)
}

func TestCardsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		query := request.URL.Query()
		assert.Equal(t, "account_1", query.Get("account_id"))
		assert.Equal(t, "active", query.Get("status.in"))

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"data":        []interface{}{cardFixture("card_1")},
			"next_cursor": nil,
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	cards, err := client.Cards().ListAutoPaging(context.Background(),
		increase.CardListParams{}.WithAccountID("account_1").WithStatus(increase.CardStatusActive)).All()
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "card_1", cards[0].ID)
}

func TestCardsClient_DetailsBypassesCache(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		calls.Add(1)

		assert.Equal(t, "/cards/card_1/details", request.URL.Path)

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"card_id":                "card_1",
			"expiration_month":       11,
			"expiration_year":        2028,
			"primary_account_number": "4242424242424242",
			"type":                   "card_details",
			"verification_code":      "123",
		})
	}))
	defer server.Close()

	cache := increase.NewMemoryCache(10)
	httpClient := internalhttp.NewClient(server.URL, nil, internalhttp.WithCache(cache, time.Minute))
	cards := NewCardsClient(httpClient)

	for range 2 {
		details, err := cards.Details(context.Background(), "card_1")
		require.NoError(t, err)
		assert.Equal(t, "4242424242424242", details.PrimaryAccountNumber)
	}

	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, 0, cache.Len())
}
