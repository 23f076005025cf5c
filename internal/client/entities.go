package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/increase/internal/http"
	"github.com/fivetwenty-io/increase/pkg/increase"
)

const entitiesPath = "/entities"

// EntitiesClient implements increase.EntitiesClient.
type EntitiesClient struct {
	httpClient *http.Client
}

// NewEntitiesClient creates a new entities client.
func NewEntitiesClient(httpClient *http.Client) *EntitiesClient {
	return &EntitiesClient{
		httpClient: httpClient,
	}
}

// Create implements increase.EntitiesClient.Create.
func (c *EntitiesClient) Create(ctx context.Context, params increase.EntityNewParams, opts ...increase.RequestOption) (*increase.Entity, error) {
	resp, err := c.httpClient.Post(ctx, entitiesPath, params, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating entity: %w", err)
	}

	return parse[increase.Entity](resp.Body, "entity")
}

// Get implements increase.EntitiesClient.Get.
func (c *EntitiesClient) Get(ctx context.Context, entityID string, opts ...increase.RequestOption) (*increase.Entity, error) {
	path, err := resourcePath(entitiesPath, entityID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("getting entity: %w", err)
	}

	return parse[increase.Entity](resp.Body, "entity")
}

// List implements increase.EntitiesClient.List.
func (c *EntitiesClient) List(
	ctx context.Context,
	params increase.EntityListParams,
	opts ...increase.RequestOption,
) (*increase.Page[increase.Entity], error) {
	values, err := listQuery(params.ToValues())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, entitiesPath, values, opts...)
	if err != nil {
		return nil, fmt.Errorf("listing entities: %w", err)
	}

	return decodePage[increase.Entity](resp.Body, "entities")
}

// ListAutoPaging implements increase.EntitiesClient.ListAutoPaging.
func (c *EntitiesClient) ListAutoPaging(
	ctx context.Context,
	params increase.EntityListParams,
	opts ...increase.RequestOption,
) *increase.PaginationIterator[increase.Entity] {
	return increase.NewPaginationIterator(ctx, func(ctx context.Context, cursor string) (*increase.Page[increase.Entity], error) {
		page := params
		if cursor != "" {
			page = page.WithCursor(cursor)
		}

		return c.List(ctx, page, opts...)
	})
}

// Archive implements increase.EntitiesClient.Archive.
func (c *EntitiesClient) Archive(ctx context.Context, entityID string, opts ...increase.RequestOption) (*increase.Entity, error) {
	path, err := resourcePath(entitiesPath, entityID, "archive")
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, path, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("archiving entity: %w", err)
	}

	return parse[increase.Entity](resp.Body, "entity")
}
