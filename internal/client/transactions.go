package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/increase/internal/http"
	"github.com/fivetwenty-io/increase/pkg/increase"
)

const transactionsPath = "/transactions"

// TransactionsClient implements increase.TransactionsClient.
type TransactionsClient struct {
	httpClient *http.Client
}

// NewTransactionsClient creates a new transactions client.
func NewTransactionsClient(httpClient *http.Client) *TransactionsClient {
	return &TransactionsClient{
		httpClient: httpClient,
	}
}

// Get implements increase.TransactionsClient.Get.
func (c *TransactionsClient) Get(ctx context.Context, transactionID string, opts ...increase.RequestOption) (*increase.Transaction, error) {
	path, err := resourcePath(transactionsPath, transactionID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return parse[increase.Transaction](resp.Body, "transaction")
}

// List implements increase.TransactionsClient.List.
func (c *TransactionsClient) List(
	ctx context.Context,
	params increase.TransactionListParams,
	opts ...increase.RequestOption,
) (*increase.Page[increase.Transaction], error) {
	values, err := listQuery(params.ToValues())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, transactionsPath, values, opts...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	return decodePage[increase.Transaction](resp.Body, "transactions")
}

// ListAutoPaging implements increase.TransactionsClient.ListAutoPaging.
func (c *TransactionsClient) ListAutoPaging(
	ctx context.Context,
	params increase.TransactionListParams,
	opts ...increase.RequestOption,
) *increase.PaginationIterator[increase.Transaction] {
	return increase.NewPaginationIterator(ctx, func(ctx context.Context, cursor string) (*increase.Page[increase.Transaction], error) {
		page := params
		if cursor != "" {
			page = page.WithCursor(cursor)
		}

		return c.List(ctx, page, opts...)
	})
}
