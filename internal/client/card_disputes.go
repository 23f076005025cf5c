package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/increase/internal/http"
	"github.com/fivetwenty-io/increase/pkg/increase"
)

const cardDisputesPath = "/card_disputes"

// CardDisputesClient implements increase.CardDisputesClient.
type CardDisputesClient struct {
	httpClient *http.Client
}

// NewCardDisputesClient creates a new card disputes client.
func NewCardDisputesClient(httpClient *http.Client) *CardDisputesClient {
	return &CardDisputesClient{
		httpClient: httpClient,
	}
}

// Create implements increase.CardDisputesClient.Create.
func (c *CardDisputesClient) Create(
	ctx context.Context,
	params increase.CardDisputeNewParams,
	opts ...increase.RequestOption,
) (*increase.CardDispute, error) {
	resp, err := c.httpClient.Post(ctx, cardDisputesPath, params, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating card dispute: %w", err)
	}

	return parse[increase.CardDispute](resp.Body, "card dispute")
}

// Get implements increase.CardDisputesClient.Get.
func (c *CardDisputesClient) Get(ctx context.Context, cardDisputeID string, opts ...increase.RequestOption) (*increase.CardDispute, error) {
	path, err := resourcePath(cardDisputesPath, cardDisputeID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("getting card dispute: %w", err)
	}

	return parse[increase.CardDispute](resp.Body, "card dispute")
}

// List implements increase.CardDisputesClient.List.
func (c *CardDisputesClient) List(
	ctx context.Context,
	params increase.CardDisputeListParams,
	opts ...increase.RequestOption,
) (*increase.Page[increase.CardDispute], error) {
	values, err := listQuery(params.ToValues())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, cardDisputesPath, values, opts...)
	if err != nil {
		return nil, fmt.Errorf("listing card disputes: %w", err)
	}

	return decodePage[increase.CardDispute](resp.Body, "card disputes")
}

// ListAutoPaging implements increase.CardDisputesClient.ListAutoPaging.
func (c *CardDisputesClient) ListAutoPaging(
	ctx context.Context,
	params increase.CardDisputeListParams,
	opts ...increase.RequestOption,
) *increase.PaginationIterator[increase.CardDispute] {
	return increase.NewPaginationIterator(ctx, func(ctx context.Context, cursor string) (*increase.Page[increase.CardDispute], error) {
		page := params
		if cursor != "" {
			page = page.WithCursor(cursor)
		}

		return c.List(ctx, page, opts...)
	})
}
