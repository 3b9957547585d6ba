package pricing

import (
	"encoding/json"
	"strings"
)

// RationaleArrow separates steps of an arrow-joined rationale narrative
const RationaleArrow = "→"

// ParseRationale turns the loosely typed Rationale field into an ordered list
// of explanation lines.
//
// Lists pass through. A single string is read, in order, as a JSON array of
// strings, as an arrow-joined narrative ("a → b → c"), or as one sentence.
// Anything else yields an empty list.
func ParseRationale(v interface{}) []string {
	switch t := v.(type) {
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, stringify(item))
		}
		return out
	case string:
		return parseRationaleText(t)
	}
	return []string{}
}

func parseRationaleText(s string) []string {
	if s == "" {
		return []string{}
	}

	// An empty JSON array carries nothing and falls through to the text forms
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		var items []interface{}
		if err := json.Unmarshal([]byte(s), &items); err == nil && len(items) > 0 {
			out := make([]string, 0, len(items))
			for _, item := range items {
				out = append(out, stringify(item))
			}
			return out
		}
	}

	segments := make([]string, 0)
	for _, segment := range strings.Split(s, RationaleArrow) {
		if segment = strings.TrimSpace(segment); segment != "" {
			segments = append(segments, segment)
		}
	}
	if len(segments) > 1 {
		return segments
	}

	return []string{s}
}
