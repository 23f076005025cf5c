package increaseclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/increase/pkg/increase"
	"github.com/fivetwenty-io/increase/pkg/increaseclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Setenv("INCREASE_API_KEY", "")
	t.Setenv("INCREASE_BASE_URL", "")

	t.Run("requires config", func(t *testing.T) {
		_, err := increaseclient.New(nil)
		require.ErrorIs(t, err, increase.ErrConfigRequired)
	})

	t.Run("requires API key", func(t *testing.T) {
		_, err := increaseclient.New(&increase.Config{})
		require.ErrorIs(t, err, increase.ErrAPIKeyRequired)
	})

	t.Run("rejects unknown environment", func(t *testing.T) {
		_, err := increaseclient.New(&increase.Config{APIKey: "test-key", Environment: "staging"})
		require.ErrorIs(t, err, increase.ErrUnknownEnvironment)
	})

	t.Run("does not modify the config", func(t *testing.T) {
		config := &increase.Config{APIKey: "test-key", Environment: "sandbox"}

		client, err := increaseclient.New(config)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Empty(t, config.BaseURL)
	})
}

func TestNewWithAPIKey(t *testing.T) {
	t.Parallel()

	client, err := increaseclient.NewWithAPIKey("test-key")
	require.NoError(t, err)
	assert.NotNil(t, client.Accounts())
}

func TestNewSandbox(t *testing.T) {
	t.Parallel()

	client, err := increaseclient.NewSandbox("test-key")
	require.NoError(t, err)
	assert.NotNil(t, client.Entities())
}

func TestResolveBaseURL(t *testing.T) {
	t.Setenv("INCREASE_BASE_URL", "")

	tests := []struct {
		name        string
		baseURL     string
		environment string
		want        string
		wantErr     error
	}{
		{name: "default is production", want: "https://api.increase.com"},
		{name: "production", environment: "production", want: "https://api.increase.com"},
		{name: "sandbox", environment: "Sandbox", want: "https://sandbox.increase.com"},
		{name: "base URL wins", baseURL: "http://localhost:4010/", environment: "sandbox", want: "http://localhost:4010"},
		{name: "scheme is added", baseURL: "mock.internal", want: "https://mock.internal"},
		{name: "unknown environment", environment: "staging", wantErr: increase.ErrUnknownEnvironment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := increaseclient.ResolveBaseURL(tt.baseURL, tt.environment)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_Environment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "Bearer env-key", request.Header.Get("Authorization"))
		assert.Equal(t, "/accounts/account_123/balance", request.URL.Path)

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"account_id":        "account_123",
			"available_balance": 5,
			"current_balance":   7,
			"type":              "balance_lookup",
		})
	}))
	defer server.Close()

	t.Setenv("INCREASE_API_KEY", "env-key")
	t.Setenv("INCREASE_BASE_URL", server.URL)

	client, err := increaseclient.New(&increase.Config{Environment: "production"})
	require.NoError(t, err)

	balance, err := client.Accounts().Balance(context.Background(), "account_123", increase.AccountBalanceParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(7), balance.CurrentBalance)
}
