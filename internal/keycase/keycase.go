// Package keycase converts payload keys between the wire form (snake_case,
// what the front end speaks) and the internal form (camelCase, what the
// models use). The two transforms are exact inverses for any key that
// round-trips through the convention.
package keycase

import (
	"strings"
	"time"
	"unicode"
)

// ToSnake rewrites a camelCase key to snake_case.
func ToSnake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ToCamel rewrites a snake_case key to camelCase.
func ToCamel(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	upper := false
	for _, r := range s {
		if r == '_' {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CamelKeys recursively rewrites every map key in v from snake_case to
// camelCase. Applied to inbound request bodies.
func CamelKeys(v interface{}) interface{} {
	return rewrite(v, ToCamel)
}

// SnakeKeys recursively rewrites every map key in v from camelCase to
// snake_case. Applied to outbound response payloads. time.Time values pass
// through untouched; their internal fields are not payload keys.
func SnakeKeys(v interface{}) interface{} {
	return rewrite(v, ToSnake)
}

func rewrite(v interface{}, key func(string) string) interface{} {
	switch t := v.(type) {
	case time.Time:
		return t
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[key(k)] = rewrite(val, key)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = rewrite(val, key)
		}
		return out
	default:
		return v
	}
}
