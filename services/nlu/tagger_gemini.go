// File: services/nlu/tagger_gemini.go
package nlu

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const tagPrompt = `Extract every date expression and every time expression from the
following text. Respond with a JSON array only, no prose, where each element is
{"text": "<exact substring>", "label": "DATE" or "TIME"}.

Text: %q`

// GeminiTagger uses a Gemini model as the entity tagger. Failures are
// non-fatal: the extractor falls back to pattern matching.
type GeminiTagger struct {
	model *genai.GenerativeModel
}

func NewGeminiTagger(apiKey string) (*GeminiTagger, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiTagger{model: model}, nil
}

func (g *GeminiTagger) Tag(ctx context.Context, text string) ([]Span, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(fmt.Sprintf(tagPrompt, text)))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	raw := strings.TrimSpace(sb.String())
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var tagged []struct {
		Text  string `json:"text"`
		Label string `json:"label"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &tagged); err != nil {
		return nil, fmt.Errorf("gemini returned unparseable tags: %w", err)
	}

	spans := make([]Span, 0, len(tagged))
	for _, tg := range tagged {
		label := strings.ToUpper(tg.Label)
		if label != LabelDate && label != LabelTime {
			continue
		}
		// Anchor the span to its position so ordering stays left-to-right.
		start := strings.Index(strings.ToLower(text), strings.ToLower(tg.Text))
		if start < 0 {
			continue
		}
		spans = append(spans, Span{Text: tg.Text, Label: label, Start: start})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	return spans, nil
}
