package normalize

import (
	"fmt"
	"strconv"
	"strings"
)

// asString coerces a raw response value to a trimmed string. Numbers are
// formatted; anything else yields empty string and ok=false.
func asString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val), true
	case float64:
		// JSON numbers decode to float64; render integers without decimals.
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10), true
		}
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int:
		return strconv.Itoa(val), true
	case bool:
		return strconv.FormatBool(val), true
	case nil:
		return "", false
	default:
		return "", false
	}
}

// asStringSlice coerces a raw response value to a string slice. A scalar
// becomes a singleton slice so single selections sent without the array
// wrapper still parse.
func asStringSlice(v any) ([]string, bool) {
	switch val := v.(type) {
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := asString(item); ok && s != "" {
				out = append(out, s)
			}
		}
		return out, true
	case []string:
		return val, true
	case nil:
		return nil, false
	default:
		if s, ok := asString(v); ok && s != "" {
			return []string{s}, true
		}
		return nil, false
	}
}

// asInt coerces a raw response value to an integer, accepting both numeric
// and string forms ("11" and 11).
func asInt(v any) (int, bool) {
	switch val := v.(type) {
	case float64:
		return int(val), true
	case int:
		return val, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// asStringMap coerces a raw response value to a map of string values,
// used for the academic performance matrix.
func asStringMap(v any) (map[string]string, bool) {
	raw, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(raw))
	for key, value := range raw {
		if s, ok := asString(value); ok {
			out[key] = s
		} else {
			out[key] = fmt.Sprintf("%v", value)
		}
	}
	return out, true
}
