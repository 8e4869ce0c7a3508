// Package answer assembles the final prompt from resolved context and
// query heuristics, calls the text generation provider, and leniently
// extracts an event suggestion when one was requested.
package answer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/keepstack/keepstack/internal/domain"
)

// Service synthesizes answers from resolved context.
type Service struct {
	gen Generator
	now func() time.Time
}

// New creates an answer synthesis service.
func New(gen Generator) *Service {
	return &Service{gen: gen, now: time.Now}
}

// Synthesize builds the prompt, calls the generator, and returns the
// answer text plus an optional suggested event. A generator failure is
// the pipeline's only terminal failure and propagates to the caller.
func (s *Service) Synthesize(
	ctx context.Context, query string, items []domain.ContentItem, suggestEvent bool,
) (string, *domain.SuggestedEvent, error) {
	prompt := s.buildPrompt(query, items, Classify(query), suggestEvent)

	raw, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return "", nil, fmt.Errorf("generate answer: %w", err)
	}

	if !suggestEvent {
		return raw, nil, nil
	}

	text, event := parseGenerated(raw)
	return text, event, nil
}

func (s *Service) buildPrompt(query string, items []domain.ContentItem, traits Traits, suggestEvent bool) string {
	var b strings.Builder

	b.WriteString("You are a personal assistant answering a question about content the user has saved.\n\n")
	b.WriteString("Saved content:\n")
	for _, item := range items {
		b.WriteString("- Title: ")
		b.WriteString(item.Title)
		b.WriteByte('\n')
		if item.Description != "" {
			b.WriteString("  Description: ")
			b.WriteString(item.Description)
			b.WriteByte('\n')
		}
		if item.Classification != "" {
			b.WriteString("  Category: ")
			b.WriteString(item.Classification)
			b.WriteByte('\n')
		}
		if len(item.Tags) > 0 {
			b.WriteString("  Tags: ")
			b.WriteString(strings.Join(item.Tags, ", "))
			b.WriteByte('\n')
		}
	}

	b.WriteString("\nQuestion: ")
	b.WriteString(query)
	b.WriteByte('\n')

	if traits.WantsSuggestions {
		b.WriteString("\nThe user is looking for suggestions. Offer concrete ideas drawn from their saved content.\n")
	}
	if len(traits.Interests) > 0 {
		b.WriteString("The user seems interested in: ")
		b.WriteString(strings.Join(traits.Interests, ", "))
		b.WriteString(".\n")
	}

	if suggestEvent {
		today := s.now().Format("Monday, January 2, 2006")
		fmt.Fprintf(&b, "\nToday is %s. Respond with a single JSON object of the form "+
			`{"answer": "...", "suggestedEvent": {"title": "...", "date": "YYYY-MM-DD", "time": "HH:MM", "description": "..."}}. `+
			"The date must fall within the next 7 days. Omit suggestedEvent if no event fits.\n", today)
	} else {
		b.WriteString("\nAnswer in plain text.\n")
	}

	return b.String()
}
