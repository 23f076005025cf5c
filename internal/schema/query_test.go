package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/fivetwenty-io/increase/internal/schema"
	"github.com/stretchr/testify/assert"
)

func TestEncodeQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   map[string]any
		expected string
	}{
		{
			name:     "empty",
			params:   map[string]any{},
			expected: "",
		},
		{
			name: "scalars",
			params: map[string]any{
				"limit":      int64(10),
				"cursor":     "abc",
				"account_id": "account_1",
				"archived":   false,
			},
			expected: "account_id=account_1&archived=false&cursor=abc&limit=10",
		},
		{
			name: "nested object uses dotted keys",
			params: map[string]any{
				"created_at": map[string]any{
					"after":  "2024-01-01T00:00:00Z",
					"before": "2024-02-01T00:00:00Z",
				},
			},
			expected: "created_at.after=2024-01-01T00%3A00%3A00Z&created_at.before=2024-02-01T00%3A00%3A00Z",
		},
		{
			name: "list is comma joined",
			params: map[string]any{
				"status": map[string]any{"in": []any{"open", "closed"}},
			},
			expected: "status.in=open%2Cclosed",
		},
		{
			name: "null and numbers",
			params: map[string]any{
				"idempotency_key": nil,
				"amount":          json.Number("100"),
				"rate":            0.25,
			},
			expected: "amount=100&rate=0.25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, schema.EncodeQuery(tt.params).Encode())
		})
	}
}
