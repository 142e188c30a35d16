package graph

import (
	"math"
	"strings"
)

// ============================================================================
// Row Accessors
// ============================================================================

// String returns the value at key as a string, or "" when absent or null
func (r Row) String(key string) string {
	val, ok := r[key]
	if !ok || val == nil {
		return ""
	}
	if str, ok := val.(string); ok {
		return str
	}
	return ""
}

// Int64 returns the value at key as an int64. Null and absent values read as 0.
func (r Row) Int64(key string) int64 {
	val, ok := r[key]
	if !ok || val == nil {
		return 0
	}
	switch v := val.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case float64:
		return int64(math.Round(v))
	}
	return 0
}

// Int returns the value at key as an int
func (r Row) Int(key string) int {
	return int(r.Int64(key))
}

// Float64 returns the value at key as a float64, accepting integer encodings
func (r Row) Float64(key string) float64 {
	val, ok := r[key]
	if !ok || val == nil {
		return 0.0
	}
	switch v := val.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}
	return 0.0
}

// Text returns a free-text property that may also be stored as a list of strings.
// List items are joined with ", ".
func (r Row) Text(key string) string {
	switch r[key].(type) {
	case []string, []interface{}:
		return strings.Join(r.Strings(key), ", ")
	}
	return r.String(key)
}

// Strings returns the list at key, skipping null and blank entries
func (r Row) Strings(key string) []string {
	val, ok := r[key]
	if !ok || val == nil {
		return []string{}
	}
	switch v := val.(type) {
	case []string:
		out := make([]string, 0, len(v))
		for _, s := range v {
			if strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
		return out
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok && strings.TrimSpace(str) != "" {
				out = append(out, str)
			}
		}
		return out
	}
	return []string{}
}

// Has reports whether key is present with a non-null value
func (r Row) Has(key string) bool {
	val, ok := r[key]
	return ok && val != nil
}
