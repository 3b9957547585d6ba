package pricing

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// coerceFloat applies loose string/number coercion. Missing, null and blank
// values coerce to 0; the second return is false when the value has no finite
// numeric reading.
func coerceFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, true
		}
		// strconv accepts digit separators, which browsers do not
		if strings.Contains(s, "_") {
			return 0, false
		}
		v = s
	case []interface{}, []string, map[string]interface{}:
		return 0, false
	}

	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// toNumber returns the finite numeric reading of v, or 0
func toNumber(v interface{}) float64 {
	f, ok := coerceFloat(v)
	if !ok {
		return 0
	}
	return f
}

// toInteger truncates the numeric reading of v toward zero. Readings outside
// the int32 range yield 0.
func toInteger(v interface{}) int {
	f := toNumber(v)
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0
	}
	return int(f)
}

// toOptionalNumber returns nil unless v is present, not null and coerces to a
// finite non-zero number
func toOptionalNumber(raw map[string]interface{}, field string) *float64 {
	v, present := raw[field]
	if !present || v == nil {
		return nil
	}
	f, ok := coerceFloat(v)
	if !ok || f == 0 {
		return nil
	}
	return &f
}

// toText renders scalar values as text; anything else is empty
func toText(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return ""
		}
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

// stringify renders any JSON-like value as text, falling back to its JSON form
func stringify(v interface{}) string {
	switch v.(type) {
	case []interface{}, map[string]interface{}:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
	return toText(v)
}
