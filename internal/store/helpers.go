package store

import (
	"encoding/json"
	"strings"
)

// placeholderList returns "?,?,?" for n placeholders.
func placeholderList(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?,", n-1) + "?"
}

// stringsToArgs converts []string to []any for use with database/sql.
func stringsToArgs(keys []string) []any {
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}
	return args
}

// marshalList converts []string to JSON text for storage.
func marshalList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	b, _ := json.Marshal(items)
	return string(b)
}

// unmarshalList converts JSON text back to []string. Malformed text reads
// as an empty list.
func unmarshalList(s *string) []string {
	if s == nil || *s == "" || *s == "null" {
		return nil
	}
	var items []string
	if err := json.Unmarshal([]byte(*s), &items); err != nil {
		return nil
	}
	return items
}

// positiveOrNil treats zero and negative currency amounts as absent.
func positiveOrNil(v *float64) *float64 {
	if v == nil || *v <= 0 {
		return nil
	}
	return v
}
