package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/increase/internal/http"
	"github.com/fivetwenty-io/increase/pkg/increase"
)

const achTransfersPath = "/ach_transfers"

// ACHTransfersClient implements increase.ACHTransfersClient.
type ACHTransfersClient struct {
	httpClient *http.Client
}

// NewACHTransfersClient creates a new ACH transfers client.
func NewACHTransfersClient(httpClient *http.Client) *ACHTransfersClient {
	return &ACHTransfersClient{
		httpClient: httpClient,
	}
}

// Create implements increase.ACHTransfersClient.Create.
func (c *ACHTransfersClient) Create(
	ctx context.Context,
	params increase.ACHTransferNewParams,
	opts ...increase.RequestOption,
) (*increase.ACHTransfer, error) {
	resp, err := c.httpClient.Post(ctx, achTransfersPath, params, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating ACH transfer: %w", err)
	}

	return parse[increase.ACHTransfer](resp.Body, "ACH transfer")
}

// Get implements increase.ACHTransfersClient.Get.
func (c *ACHTransfersClient) Get(
	ctx context.Context,
	achTransferID string,
	opts ...increase.RequestOption,
) (*increase.ACHTransfer, error) {
	path, err := resourcePath(achTransfersPath, achTransferID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("getting ACH transfer: %w", err)
	}

	return parse[increase.ACHTransfer](resp.Body, "ACH transfer")
}

// List implements increase.ACHTransfersClient.List.
func (c *ACHTransfersClient) List(
	ctx context.Context,
	params increase.ACHTransferListParams,
	opts ...increase.RequestOption,
) (*increase.Page[increase.ACHTransfer], error) {
	values, err := listQuery(params.ToValues())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, achTransfersPath, values, opts...)
	if err != nil {
		return nil, fmt.Errorf("listing ACH transfers: %w", err)
	}

	return decodePage[increase.ACHTransfer](resp.Body, "ACH transfers")
}

// ListAutoPaging implements increase.ACHTransfersClient.ListAutoPaging.
func (c *ACHTransfersClient) ListAutoPaging(
	ctx context.Context,
	params increase.ACHTransferListParams,
	opts ...increase.RequestOption,
) *increase.PaginationIterator[increase.ACHTransfer] {
	return increase.NewPaginationIterator(ctx, func(ctx context.Context, cursor string) (*increase.Page[increase.ACHTransfer], error) {
		page := params
		if cursor != "" {
			page = page.WithCursor(cursor)
		}

		return c.List(ctx, page, opts...)
	})
}

// Approve implements increase.ACHTransfersClient.Approve.
func (c *ACHTransfersClient) Approve(
	ctx context.Context,
	achTransferID string,
	opts ...increase.RequestOption,
) (*increase.ACHTransfer, error) {
	return c.action(ctx, achTransferID, "approve", opts)
}

// Cancel implements increase.ACHTransfersClient.Cancel.
func (c *ACHTransfersClient) Cancel(
	ctx context.Context,
	achTransferID string,
	opts ...increase.RequestOption,
) (*increase.ACHTransfer, error) {
	return c.action(ctx, achTransferID, "cancel", opts)
}

func (c *ACHTransfersClient) action(
	ctx context.Context,
	achTransferID, action string,
	opts []increase.RequestOption,
) (*increase.ACHTransfer, error) {
	path, err := resourcePath(achTransfersPath, achTransferID, action)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, path, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s ACH transfer: %w", action, err)
	}

	return parse[increase.ACHTransfer](resp.Body, "ACH transfer")
}
