package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/increase/internal/http"
	"github.com/fivetwenty-io/increase/pkg/increase"
)

const accountsPath = "/accounts"

// AccountsClient implements increase.AccountsClient.
type AccountsClient struct {
	httpClient *http.Client
}

// NewAccountsClient creates a new accounts client.
func NewAccountsClient(httpClient *http.Client) *AccountsClient {
	return &AccountsClient{
		httpClient: httpClient,
	}
}

// Create implements increase.AccountsClient.Create.
func (c *AccountsClient) Create(ctx context.Context, params increase.AccountNewParams, opts ...increase.RequestOption) (*increase.Account, error) {
	resp, err := c.httpClient.Post(ctx, accountsPath, params, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating account: %w", err)
	}

	return parse[increase.Account](resp.Body, "account")
}

// Get implements increase.AccountsClient.Get.
func (c *AccountsClient) Get(ctx context.Context, accountID string, opts ...increase.RequestOption) (*increase.Account, error) {
	path, err := resourcePath(accountsPath, accountID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	return parse[increase.Account](resp.Body, "account")
}

// Update implements increase.AccountsClient.Update.
func (c *AccountsClient) Update(
	ctx context.Context,
	accountID string,
	params increase.AccountUpdateParams,
	opts ...increase.RequestOption,
) (*increase.Account, error) {
	path, err := resourcePath(accountsPath, accountID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, path, params, opts...)
	if err != nil {
		return nil, fmt.Errorf("updating account: %w", err)
	}

	return parse[increase.Account](resp.Body, "account")
}

// List implements increase.AccountsClient.List.
func (c *AccountsClient) List(
	ctx context.Context,
	params increase.AccountListParams,
	opts ...increase.RequestOption,
) (*increase.Page[increase.Account], error) {
	values, err := listQuery(params.ToValues())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, accountsPath, values, opts...)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}

	return decodePage[increase.Account](resp.Body, "accounts")
}

// ListAutoPaging implements increase.AccountsClient.ListAutoPaging.
func (c *AccountsClient) ListAutoPaging(
	ctx context.Context,
	params increase.AccountListParams,
	opts ...increase.RequestOption,
) *increase.PaginationIterator[increase.Account] {
	return increase.NewPaginationIterator(ctx, func(ctx context.Context, cursor string) (*increase.Page[increase.Account], error) {
		page := params
		if cursor != "" {
			page = page.WithCursor(cursor)
		}

		return c.List(ctx, page, opts...)
	})
}

// Balance implements increase.AccountsClient.Balance.
func (c *AccountsClient) Balance(
	ctx context.Context,
	accountID string,
	params increase.AccountBalanceParams,
	opts ...increase.RequestOption,
) (*increase.BalanceLookup, error) {
	path, err := resourcePath(accountsPath, accountID, "balance")
	if err != nil {
		return nil, err
	}

	values, err := listQuery(params.ToValues())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, values, opts...)
	if err != nil {
		return nil, fmt.Errorf("getting account balance: %w", err)
	}

	return parse[increase.BalanceLookup](resp.Body, "balance lookup")
}

// Close implements increase.AccountsClient.Close.
func (c *AccountsClient) Close(ctx context.Context, accountID string, opts ...increase.RequestOption) (*increase.Account, error) {
	path, err := resourcePath(accountsPath, accountID, "close")
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, path, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("closing account: %w", err)
	}

	return parse[increase.Account](resp.Body, "account")
}
