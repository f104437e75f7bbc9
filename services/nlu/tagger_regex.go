// File: services/nlu/tagger_regex.go
package nlu

import (
	"context"
	"regexp"
	"sort"
)

var (
	datePattern = regexp.MustCompile(`(?i)\b(?:today|tomorrow|` +
		`(?:next\s+|this\s+)?(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)|` +
		`(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2}|` +
		`\d{4}-\d{2}-\d{2})\b`)

	timePattern = regexp.MustCompile(`(?i)\b\d{1,2}(?::\d{2})?\s*(?:am|pm)\b|\b\d{1,2}:\d{2}\b`)
)

// RegexTagger tags spans with the same patterns the extractor uses as
// fallback. It exists so the extractor always has a working Tagger even when
// no NLP backend is configured.
type RegexTagger struct{}

func NewRegexTagger() *RegexTagger {
	return &RegexTagger{}
}

func (t *RegexTagger) Tag(ctx context.Context, text string) ([]Span, error) {
	var spans []Span
	for _, loc := range datePattern.FindAllStringIndex(text, -1) {
		spans = append(spans, Span{Text: text[loc[0]:loc[1]], Label: LabelDate, Start: loc[0]})
	}
	for _, loc := range timePattern.FindAllStringIndex(text, -1) {
		spans = append(spans, Span{Text: text[loc[0]:loc[1]], Label: LabelTime, Start: loc[0]})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	return spans, nil
}
