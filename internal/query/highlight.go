package query

import (
	"fmt"
	"regexp"
)

// Span is a run of display text, marked when it matched the query
type Span struct {
	Text    string `json:"text"`
	Matched bool   `json:"matched"`
}

// Highlight splits text into spans, marking case-insensitive matches of query.
// The query is used as a regular expression without escaping, so
// metacharacters keep their meaning. A query that does not compile returns
// an error; render the text unmarked in that case.
func Highlight(text, query string) ([]Span, error) {
	if query == "" {
		return []Span{{Text: text}}, nil
	}

	pattern, err := regexp.Compile("(?i)(" + query + ")")
	if err != nil {
		return nil, fmt.Errorf("failed to compile highlight pattern: %w", err)
	}

	spans := make([]Span, 0, 3)
	last := 0
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		if loc[0] == loc[1] {
			continue
		}
		if loc[0] > last {
			spans = append(spans, Span{Text: text[last:loc[0]]})
		}
		spans = append(spans, Span{Text: text[loc[0]:loc[1]], Matched: true})
		last = loc[1]
	}
	if last < len(text) || len(spans) == 0 {
		spans = append(spans, Span{Text: text[last:]})
	}
	return spans, nil
}

// HighlightOrPlain is Highlight with the unmarked fallback applied
func HighlightOrPlain(text, query string) []Span {
	spans, err := Highlight(text, query)
	if err != nil {
		return []Span{{Text: text}}
	}
	return spans
}
