package client

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/increase/internal/schema"
	"github.com/fivetwenty-io/increase/pkg/increase"
)

// parse decodes a single-object response through the model's UnmarshalJSON.
func parse[T any](body []byte, what string) (*T, error) {
	var out T

	err := json.Unmarshal(body, &out)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", what, err)
	}

	return &out, nil
}

// decodePage parses a list response: {"data": [...], "next_cursor": ...}.
func decodePage[T any, PT schema.Mapper[T]](body []byte, what string) (*increase.Page[T], error) {
	pageSchema := schema.New("Page",
		schema.Value("Data", "data", schema.List(schema.Model[T, PT]()), func(p *increase.Page[T]) *[]T { return &p.Data }),
		schema.Pointer("NextCursor", "next_cursor", schema.String(), func(p *increase.Page[T]) **string {
			return &p.NextCursor
		}),
	)

	var page increase.Page[T]

	err := pageSchema.Unmarshal(body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing %s list: %w", what, err)
	}

	return &page, nil
}

// resourcePath joins a collection and an escaped ID, rejecting empty IDs
// before any request is made.
func resourcePath(collection, id string, suffix ...string) (string, error) {
	if id == "" {
		return "", increase.ErrMissingID
	}

	path := collection + "/" + url.PathEscape(id)
	for _, s := range suffix {
		path += "/" + s
	}

	return path, nil
}

// listQuery takes the result of a params ToValues call and wraps its error.
func listQuery(values url.Values, err error) (url.Values, error) {
	if err != nil {
		return nil, fmt.Errorf("encoding query params: %w", err)
	}

	return values, nil
}
