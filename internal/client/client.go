package client

import (
	"errors"

	"github.com/fivetwenty-io/increase/internal/auth"
	"github.com/fivetwenty-io/increase/internal/constants"
	"github.com/fivetwenty-io/increase/internal/http"
	"github.com/fivetwenty-io/increase/pkg/increase"
)

// Static errors for err113 compliance.
var (
	ErrBaseURLRequired = errors.New("base URL is required")
)

// Client implements the increase.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       increase.Logger

	// Resource clients
	accounts         increase.AccountsClient
	accountNumbers   increase.AccountNumbersClient
	accountTransfers increase.AccountTransfersClient
	achTransfers     increase.ACHTransfersClient
	cards            increase.CardsClient
	cardDisputes     increase.CardDisputesClient
	entities         increase.EntitiesClient
	transactions     increase.TransactionsClient
}

// New creates a client authenticating with config.APIKey. config.BaseURL
// must already be resolved.
func New(config *increase.Config) (*Client, error) {
	if config.APIKey == "" {
		return nil, increase.ErrAPIKeyRequired
	}

	return NewWithTokenManager(config, auth.NewAPIKeyManager(config.APIKey))
}

// NewWithTokenManager creates a client with a custom token manager.
func NewWithTokenManager(config *increase.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}

	httpClient := http.NewClient(config.BaseURL, tokenManager, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.BaseURL,
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *increase.Config) []http.Option {
	var httpOpts []http.Option

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	retryMax := constants.DefaultRetryMax
	if config.RetryMax > 0 {
		retryMax = config.RetryMax
	}

	if config.DisableRetries {
		retryMax = 0
	}

	retryWaitMin := constants.DefaultRetryWaitMin
	if config.RetryWaitMin > 0 {
		retryWaitMin = config.RetryWaitMin
	}

	retryWaitMax := constants.DefaultRetryWaitMax
	if config.RetryWaitMax > 0 {
		retryWaitMax = config.RetryWaitMax
	}

	httpOpts = append(httpOpts, http.WithRetryConfig(retryMax, retryWaitMin, retryWaitMax))

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	if config.Cache != nil {
		ttl := constants.DefaultCacheTTL
		if config.CacheTTL > 0 {
			ttl = config.CacheTTL
		}

		httpOpts = append(httpOpts, http.WithCache(config.Cache, ttl))
	}

	return httpOpts
}

// GetTokenManager returns the token manager for this client.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Resource client accessors

// Accounts implements increase.Client.Accounts.
func (c *Client) Accounts() increase.AccountsClient {
	return c.accounts
}

// AccountNumbers implements increase.Client.AccountNumbers.
func (c *Client) AccountNumbers() increase.AccountNumbersClient {
	return c.accountNumbers
}

// AccountTransfers implements increase.Client.AccountTransfers.
func (c *Client) AccountTransfers() increase.AccountTransfersClient {
	return c.accountTransfers
}

// ACHTransfers implements increase.Client.ACHTransfers.
func (c *Client) ACHTransfers() increase.ACHTransfersClient {
	return c.achTransfers
}

// Cards implements increase.Client.Cards.
func (c *Client) Cards() increase.CardsClient {
	return c.cards
}

// CardDisputes implements increase.Client.CardDisputes.
func (c *Client) CardDisputes() increase.CardDisputesClient {
	return c.cardDisputes
}

// Entities implements increase.Client.Entities.
func (c *Client) Entities() increase.EntitiesClient {
	return c.entities
}

// Transactions implements increase.Client.Transactions.
func (c *Client) Transactions() increase.TransactionsClient {
	return c.transactions
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.accounts = NewAccountsClient(c.httpClient)
	c.accountNumbers = NewAccountNumbersClient(c.httpClient)
	c.accountTransfers = NewAccountTransfersClient(c.httpClient)
	c.achTransfers = NewACHTransfersClient(c.httpClient)
	c.cards = NewCardsClient(c.httpClient)
	c.cardDisputes = NewCardDisputesClient(c.httpClient)
	c.entities = NewEntitiesClient(c.httpClient)
	c.transactions = NewTransactionsClient(c.httpClient)
}

var _ increase.Client = (*Client)(nil)
