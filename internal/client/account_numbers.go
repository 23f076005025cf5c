package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/increase/internal/http"
	"github.com/fivetwenty-io/increase/pkg/increase"
)

const accountNumbersPath = "/account_numbers"

// AccountNumbersClient implements increase.AccountNumbersClient.
type AccountNumbersClient struct {
	httpClient *http.Client
}

// NewAccountNumbersClient creates a new account numbers client.
func NewAccountNumbersClient(httpClient *http.Client) *AccountNumbersClient {
	return &AccountNumbersClient{
		httpClient: httpClient,
	}
}

// Create implements increase.AccountNumbersClient.Create.
func (c *AccountNumbersClient) Create(
	ctx context.Context,
	params increase.AccountNumberNewParams,
	opts ...increase.RequestOption,
) (*increase.AccountNumber, error) {
	resp, err := c.httpClient.Post(ctx, accountNumbersPath, params, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating account number: %w", err)
	}

	return parse[increase.AccountNumber](resp.Body, "account number")
}

// Get implements increase.AccountNumbersClient.Get.
func (c *AccountNumbersClient) Get(
	ctx context.Context,
	accountNumberID string,
	opts ...increase.RequestOption,
) (*increase.AccountNumber, error) {
	path, err := resourcePath(accountNumbersPath, accountNumberID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("getting account number: %w", err)
	}

	return parse[increase.AccountNumber](resp.Body, "account number")
}

// Update implements increase.AccountNumbersClient.Update.
func (c *AccountNumbersClient) Update(
	ctx context.Context,
	accountNumberID string,
	params increase.AccountNumberUpdateParams,
	opts ...increase.RequestOption,
) (*increase.AccountNumber, error) {
	path, err := resourcePath(accountNumbersPath, accountNumberID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, path, params, opts...)
	if err != nil {
		return nil, fmt.Errorf("updating account number: %w", err)
	}

	return parse[increase.AccountNumber](resp.Body, "account number")
}

// List implements increase.AccountNumbersClient.List.
func (c *AccountNumbersClient) List(
	ctx context.Context,
	params increase.AccountNumberListParams,
	opts ...increase.RequestOption,
) (*increase.Page[increase.AccountNumber], error) {
	values, err := listQuery(params.ToValues())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, accountNumbersPath, values, opts...)
	if err != nil {
		return nil, fmt.Errorf("listing account numbers: %w", err)
	}

	return decodePage[increase.AccountNumber](resp.Body, "account numbers")
}

// ListAutoPaging implements increase.AccountNumbersClient.ListAutoPaging.
func (c *AccountNumbersClient) ListAutoPaging(
	ctx context.Context,
	params increase.AccountNumberListParams,
	opts ...increase.RequestOption,
) *increase.PaginationIterator[increase.AccountNumber] {
	return increase.NewPaginationIterator(ctx, func(ctx context.Context, cursor string) (*increase.Page[increase.AccountNumber], error) {
		page := params
		if cursor != "" {
			page = page.WithCursor(cursor)
		}

		return c.List(ctx, page, opts...)
	})
}
