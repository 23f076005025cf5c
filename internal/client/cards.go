package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/increase/internal/http"
	"github.com/fivetwenty-io/increase/pkg/increase"
)

const cardsPath = "/cards"

// CardsClient implements increase.CardsClient.
type CardsClient struct {
	httpClient *http.Client
}

// NewCardsClient creates a new cards client.
func NewCardsClient(httpClient *http.Client) *CardsClient {
	return &CardsClient{
		httpClient: httpClient,
	}
}

// Create implements increase.CardsClient.Create.
func (c *CardsClient) Create(ctx context.Context, params increase.CardNewParams, opts ...increase.RequestOption) (*increase.Card, error) {
	resp, err := c.httpClient.Post(ctx, cardsPath, params, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating card: %w", err)
	}

	return parse[increase.Card](resp.Body, "card")
}

// Get implements increase.CardsClient.Get.
func (c *CardsClient) Get(ctx context.Context, cardID string, opts ...increase.RequestOption) (*increase.Card, error) {
	path, err := resourcePath(cardsPath, cardID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("getting card: %w", err)
	}

	return parse[increase.Card](resp.Body, "card")
}

// Update implements increase.CardsClient.Update.
func (c *CardsClient) Update(
	ctx context.Context,
	cardID string,
	params increase.CardUpdateParams,
	opts ...increase.RequestOption,
) (*increase.Card, error) {
	path, err := resourcePath(cardsPath, cardID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, path, params, opts...)
	if err != nil {
		return nil, fmt.Errorf("updating card: %w", err)
	}

	return parse[increase.Card](resp.Body, "card")
}

// List implements increase.CardsClient.List.
func (c *CardsClient) List(
	ctx context.Context,
	params increase.CardListParams,
	opts ...increase.RequestOption,
) (*increase.Page[increase.Card], error) {
	values, err := listQuery(params.ToValues())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, cardsPath, values, opts...)
	if err != nil {
		return nil, fmt.Errorf("listing cards: %w", err)
	}

	return decodePage[increase.Card](resp.Body, "cards")
}

// ListAutoPaging implements increase.CardsClient.ListAutoPaging.
func (c *CardsClient) ListAutoPaging(
	ctx context.Context,
	params increase.CardListParams,
	opts ...increase.RequestOption,
) *increase.PaginationIterator[increase.Card] {
	return increase.NewPaginationIterator(ctx, func(ctx context.Context, cursor string) (*increase.Page[increase.Card], error) {
		page := params
		if cursor != "" {
			page = page.WithCursor(cursor)
		}

		return c.List(ctx, page, opts...)
	})
}

// Details implements increase.CardsClient.Details. The response carries the
// full card number; it is never cached.
func (c *CardsClient) Details(ctx context.Context, cardID string, opts ...increase.RequestOption) (*increase.CardDetails, error) {
	path, err := resourcePath(cardsPath, cardID, "details")
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  "GET",
		Path:    path,
		Options: increase.ApplyRequestOptions(opts...),
		NoCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("getting card details: %w", err)
	}

	return parse[increase.CardDetails](resp.Body, "card details")
}
