package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/increase/internal/http"
	"github.com/fivetwenty-io/increase/pkg/increase"
)

const accountTransfersPath = "/account_transfers"

// AccountTransfersClient implements increase.AccountTransfersClient.
type AccountTransfersClient struct {
	httpClient *http.Client
}

// NewAccountTransfersClient creates a new account transfers client.
func NewAccountTransfersClient(httpClient *http.Client) *AccountTransfersClient {
	return &AccountTransfersClient{
		httpClient: httpClient,
	}
}

// Create implements increase.AccountTransfersClient.Create.
func (c *AccountTransfersClient) Create(
	ctx context.Context,
	params increase.AccountTransferNewParams,
	opts ...increase.RequestOption,
) (*increase.AccountTransfer, error) {
	resp, err := c.httpClient.Post(ctx, accountTransfersPath, params, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating account transfer: %w", err)
	}

	return parse[increase.AccountTransfer](resp.Body, "account transfer")
}

// Get implements increase.AccountTransfersClient.Get.
func (c *AccountTransfersClient) Get(
	ctx context.Context,
	accountTransferID string,
	opts ...increase.RequestOption,
) (*increase.AccountTransfer, error) {
	path, err := resourcePath(accountTransfersPath, accountTransferID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("getting account transfer: %w", err)
	}

	return parse[increase.AccountTransfer](resp.Body, "account transfer")
}

// List implements increase.AccountTransfersClient.List.
func (c *AccountTransfersClient) List(
	ctx context.Context,
	params increase.AccountTransferListParams,
	opts ...increase.RequestOption,
) (*increase.Page[increase.AccountTransfer], error) {
	values, err := listQuery(params.ToValues())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, accountTransfersPath, values, opts...)
	if err != nil {
		return nil, fmt.Errorf("listing account transfers: %w", err)
	}

	return decodePage[increase.AccountTransfer](resp.Body, "account transfers")
}

// ListAutoPaging implements increase.AccountTransfersClient.ListAutoPaging.
func (c *AccountTransfersClient) ListAutoPaging(
	ctx context.Context,
	params increase.AccountTransferListParams,
	opts ...increase.RequestOption,
) *increase.PaginationIterator[increase.AccountTransfer] {
	return increase.NewPaginationIterator(ctx, func(ctx context.Context, cursor string) (*increase.Page[increase.AccountTransfer], error) {
		page := params
		if cursor != "" {
			page = page.WithCursor(cursor)
		}

		return c.List(ctx, page, opts...)
	})
}

// Approve implements increase.AccountTransfersClient.Approve.
func (c *AccountTransfersClient) Approve(
	ctx context.Context,
	accountTransferID string,
	opts ...increase.RequestOption,
) (*increase.AccountTransfer, error) {
	return c.action(ctx, accountTransferID, "approve", opts)
}

// Cancel implements increase.AccountTransfersClient.Cancel.
func (c *AccountTransfersClient) Cancel(
	ctx context.Context,
	accountTransferID string,
	opts ...increase.RequestOption,
) (*increase.AccountTransfer, error) {
	return c.action(ctx, accountTransferID, "cancel", opts)
}

func (c *AccountTransfersClient) action(
	ctx context.Context,
	accountTransferID, action string,
	opts []increase.RequestOption,
) (*increase.AccountTransfer, error) {
	path, err := resourcePath(accountTransfersPath, accountTransferID, action)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, path, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s account transfer: %w", action, err)
	}

	return parse[increase.AccountTransfer](resp.Body, "account transfer")
}
