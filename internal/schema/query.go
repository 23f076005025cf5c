package schema

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// EncodeQuery flattens an encoded param object into query values. Nested
// objects use dotted keys and lists are comma-joined. Null values are dropped.
func EncodeQuery(params map[string]any) url.Values {
	values := url.Values{}
	flatten(values, "", params)

	return values
}

func flatten(values url.Values, base string, obj map[string]any) {
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		name := key
		if base != "" {
			name = base + "." + key
		}

		switch v := obj[key].(type) {
		case nil:
		case map[string]any:
			flatten(values, name, v)
		case []any:
			parts := make([]string, 0, len(v))
			for _, item := range v {
				parts = append(parts, scalar(item))
			}

			values.Set(name, strings.Join(parts, ","))
		default:
			values.Set(name, scalar(v))
		}
	}
}

func scalar(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
