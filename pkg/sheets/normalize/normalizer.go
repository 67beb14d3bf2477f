// Package normalize turns raw stored field values (ISO dates, JSON-encoded
// arrays and objects) into display strings for the rendered sheet.
package normalize

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	displayDate     = "02/01/2006"
	displayDateTime = "02/01/2006 15:04"
)

var dateLayouts = []struct {
	layout   string
	withTime bool
}{
	{time.RFC3339, true},
	{"2006-01-02 15:04:05", true},
	{"2006-01-02", false},
}

// Display renders a raw stored value as a human-readable string. Values that
// match no known encoding pass through unchanged.
func Display(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}

	if formatted, ok := tryDate(value); ok {
		return formatted
	}

	switch value[0] {
	case '[':
		if formatted, ok := tryArray(value); ok {
			return formatted
		}
	case '{':
		if formatted, ok := tryObject(value); ok {
			return formatted
		}
	}

	return value
}

func tryDate(value string) (string, bool) {
	for _, l := range dateLayouts {
		t, err := time.Parse(l.layout, value)
		if err != nil {
			continue
		}
		if l.withTime {
			return t.Format(displayDateTime), true
		}
		return t.Format(displayDate), true
	}
	return "", false
}

func tryArray(value string) (string, bool) {
	var items []any
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		return "", false
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = scalar(item)
	}
	return strings.Join(parts, ", "), true
}

func tryObject(value string) (string, bool) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(value), &fields); err != nil {
		return "", false
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = k + ": " + scalar(fields[k])
	}
	return strings.Join(lines, "\n"), true
}

func scalar(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		if value {
			return "Sim"
		}
		return "Não"
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(encoded)
	}
}
