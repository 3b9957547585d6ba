package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRationale(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected []string
	}{
		{
			name:     "json array string",
			input:    `["a","b"]`,
			expected: []string{"a", "b"},
		},
		{
			name:     "arrow joined narrative",
			input:    "x → y → z",
			expected: []string{"x", "y", "z"},
		},
		{
			name:     "single sentence",
			input:    "single sentence",
			expected: []string{"single sentence"},
		},
		{
			name:     "already a list",
			input:    []interface{}{"already", "array"},
			expected: []string{"already", "array"},
		},
		{
			name:     "typed string list",
			input:    []string{"one", "two"},
			expected: []string{"one", "two"},
		},
		{
			name:     "arrow narrative with empty segments",
			input:    "→ first →  → second →",
			expected: []string{"first", "second"},
		},
		{
			name:     "single arrow segment keeps original string",
			input:    "  only one → ",
			expected: []string{"  only one → "},
		},
		{
			name:     "bracketed but invalid json falls through to arrow split",
			input:    "[cost → market]",
			expected: []string{"[cost", "market]"},
		},
		{
			name:     "bracketed invalid json without arrows is kept whole",
			input:    "[not json]",
			expected: []string{"[not json]"},
		},
		{
			name:     "empty json array falls through",
			input:    "[]",
			expected: []string{"[]"},
		},
		{
			name:     "json array with non strings",
			input:    `["a", 2, true]`,
			expected: []string{"a", "2", "true"},
		},
		{
			name:     "json array of arrow strings is not split",
			input:    `["a → b"]`,
			expected: []string{"a → b"},
		},
		{
			name:     "empty string",
			input:    "",
			expected: []string{},
		},
		{
			name:     "missing",
			input:    nil,
			expected: []string{},
		},
		{
			name:     "number",
			input:    float64(3),
			expected: []string{},
		},
		{
			name:     "empty list passes through",
			input:    []interface{}{},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseRationale(tt.input))
		})
	}
}

func TestParseRationale_CopiesTypedList(t *testing.T) {
	in := []string{"a"}
	out := ParseRationale(in)
	out[0] = "changed"

	assert.Equal(t, "a", in[0])
}
