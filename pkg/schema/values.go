package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInt coerces the numeric shapes produced by the JSON and YAML decoders.
func ToInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	case float32:
		return int(math.Trunc(float64(v))), true
	case float64:
		return int(math.Trunc(v)), true
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
		if f, err := v.Float64(); err == nil {
			return int(math.Trunc(f)), true
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n, true
		}
	}
	return 0, false
}

// Lookup resolves a dotted path ("result.rows") against nested maps. A key
// containing dots that exists verbatim at the top level wins over traversal.
func Lookup(data map[string]any, path string) (any, bool) {
	path = strings.TrimSpace(path)
	if data == nil || path == "" {
		return nil, false
	}
	if value, ok := data[path]; ok {
		return value, true
	}

	var current any = data
	for _, segment := range strings.Split(path, ".") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			return nil, false
		}
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, true
}

// Stringify renders scalar values for text interpolation.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case map[string]any, []any:
		payload, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(payload)
	default:
		return fmt.Sprint(v)
	}
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[any]any:
		return normalizeMap(v)
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, entry := range v {
			out[key] = normalizeValue(entry)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for idx, entry := range v {
			out[idx] = normalizeValue(entry)
		}
		return out
	default:
		return v
	}
}

func normalizeMap(in map[any]any) map[string]any {
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[fmt.Sprint(key)] = normalizeValue(value)
	}
	return out
}
