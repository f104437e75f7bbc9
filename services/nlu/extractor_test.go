package nlu

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func testRef() time.Time {
	return time.Date(2025, time.August, 8, 8, 0, 0, 0, time.UTC) // a Friday, 08:00
}

func TestExtractDateAndTime(t *testing.T) {
	e := NewExtractor(NewRegexTagger(), zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name     string
		input    string
		wantDate string
		wantTime string
	}{
		{"weekday and 12-hour time", "book me for friday at 10:30 am", "friday", "10:30 am"},
		{"qualified weekday", "next monday at 10 am works", "next monday", "10 am"},
		{"month day", "can I come august 15 at 9:00 am", "august 15", "9:00 am"},
		{"relative day", "Tomorrow at 3 pm", "tomorrow", "3 pm"},
		{"24-hour time", "today at 14:30", "today", "14:30"},
		{"canonical date", "2025-08-20 at 11 am", "2025-08-20", "11 am"},
		{"missing date defaults to today", "book me at 3 pm", "2025-08-08", "3 pm"},
		{"missing time stays empty", "next friday please", "next friday", ""},
		{"neither defaults date only", "hello there", "2025-08-08", ""},
		{"first of several spans wins", "monday or tuesday, 9 am or 10 am", "monday", "9 am"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(ctx, tt.input, testRef())
			assert.Equal(t, tt.wantDate, got.DateExpr)
			assert.Equal(t, tt.wantTime, got.TimeExpr)
		})
	}
}

// A tagger that errors must not break extraction; the pattern fallback takes
// over transparently.
type failingTagger struct{}

func (failingTagger) Tag(ctx context.Context, text string) ([]Span, error) {
	return nil, assert.AnError
}

func TestExtractFallsBackWhenTaggerFails(t *testing.T) {
	e := NewExtractor(failingTagger{}, zap.NewNop())

	got := e.Extract(context.Background(), "friday at 10:30 am", testRef())
	assert.Equal(t, "friday", got.DateExpr)
	assert.Equal(t, "10:30 am", got.TimeExpr)
}

func TestRegexTaggerSpansAreOrdered(t *testing.T) {
	tagger := NewRegexTagger()

	spans, err := tagger.Tag(context.Background(), "friday at 10:30 am or monday at 9 am")
	assert.NoError(t, err)

	for i := 1; i < len(spans); i++ {
		assert.LessOrEqual(t, spans[i-1].Start, spans[i].Start)
	}

	assert.Equal(t, "friday", spans[0].Text)
	assert.Equal(t, LabelDate, spans[0].Label)
}
