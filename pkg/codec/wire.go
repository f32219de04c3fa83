package codec

import (
	"encoding/json"
	"math"
	"strconv"
)

// Wire payloads arrive in two shapes: fresh from encoding/json (numbers as
// float64, arrays as []any, objects as map[string]any) or straight from this
// package's own putters (native Go types). The helpers below accept both and
// report ok=false for anything else, letting parsers fall back to defaults.
// They are exported so that schemas defining custom fields through the
// Field builders coerce wire values the same way the family factories do.

// WireInt coerces a wire value to an integer.
func WireInt(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case uint64:
		return int64(v), true
	case float64:
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// WireUint coerces a wire value to a non-negative integer.
func WireUint(value any) (uint64, bool) {
	switch v := value.(type) {
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case uint64:
		return v, true
	case float64:
		if v < 0 || v != math.Trunc(v) {
			return 0, false
		}
		return uint64(v), true
	case json.Number:
		n, err := strconv.ParseUint(v.String(), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// WireString coerces a wire value to a string.
func WireString(value any) (string, bool) {
	s, ok := value.(string)
	return s, ok
}

// WireBool coerces a wire value to a boolean.
func WireBool(value any) (bool, bool) {
	b, ok := value.(bool)
	return b, ok
}

// WireArray coerces a wire value to a generic element slice.
func WireArray(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []Payload:
		out := make([]any, len(v))
		for i, p := range v {
			out[i] = p
		}
		return out, true
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	case []int:
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = n
		}
		return out, true
	default:
		return nil, false
	}
}

// WireObject coerces a wire value to a nested payload.
func WireObject(value any) (Payload, bool) {
	switch v := value.(type) {
	case Payload:
		return v, true
	case map[string]any:
		return Payload(v), true
	default:
		return nil, false
	}
}
