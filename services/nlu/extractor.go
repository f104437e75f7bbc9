// File: services/nlu/extractor.go
package nlu

import (
	"context"
	"strings"
	"time"

	"schedly/models"

	"go.uber.org/zap"
)

// Extracted carries the first date-like and first time-like expression found
// in an utterance. DateExpr is never empty: when no date span exists it holds
// the canonical rendering of the reference date ("today"). TimeExpr stays
// empty when no time span exists; the caller treats that as MissingTime.
type Extracted struct {
	DateExpr string
	TimeExpr string
}

// Extractor turns a raw utterance into candidate date and time expressions.
// It is a pure function of the input text and reference time.
type Extractor struct {
	Tagger Tagger
	Logger *zap.Logger
}

func NewExtractor(tagger Tagger, logger *zap.Logger) *Extractor {
	return &Extractor{Tagger: tagger, Logger: logger}
}

func (e *Extractor) Extract(ctx context.Context, utterance string, ref time.Time) Extracted {
	text := strings.ToLower(strings.TrimSpace(utterance))

	spans, err := e.Tagger.Tag(ctx, text)
	if err != nil {
		e.Logger.Debug("tagger failed, falling back to patterns", zap.Error(err))
		spans = nil
	}

	dateExpr := firstSpan(spans, LabelDate)
	timeExpr := firstSpan(spans, LabelTime)

	// Pattern fallback for whichever category the tagger missed.
	if dateExpr == "" {
		if m := datePattern.FindString(text); m != "" {
			dateExpr = m
		}
	}
	if timeExpr == "" {
		if m := timePattern.FindString(text); m != "" {
			timeExpr = m
		}
	}

	// A missing date means "today" relative to the reference time.
	if dateExpr == "" {
		dateExpr = models.DateOf(ref).String()
	}

	return Extracted{DateExpr: dateExpr, TimeExpr: timeExpr}
}

// firstSpan picks the leftmost span with the given label.
func firstSpan(spans []Span, label string) string {
	for _, s := range spans {
		if s.Label == label {
			return s.Text
		}
	}
	return ""
}
