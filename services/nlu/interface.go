// File: services/nlu/interface.go
package nlu

import (
	"context"
	"errors"
)

// Span labels understood by the extractor.
const (
	LabelDate = "DATE"
	LabelTime = "TIME"
)

// Span is a tagged fragment of an utterance.
type Span struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
}

// Tagger identifies date-like and time-like spans in free text. The regex
// tagger is the dependency-free default; the Gemini tagger is a drop-in
// replacement for deployments with an API key. The extractor runs its own
// pattern pass regardless, so a tagger only has to be best-effort.
type Tagger interface {
	Tag(ctx context.Context, text string) ([]Span, error)
}

var (
	// ErrUnparseableDate reports a date expression no resolution rule matched.
	ErrUnparseableDate = errors.New("unparseable date expression")
	// ErrUnparseableTime reports a time expression no accepted form matched.
	ErrUnparseableTime = errors.New("unparseable time expression")
)
