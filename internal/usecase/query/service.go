// Package query orchestrates the retrieval-augmented answer pipeline:
// embed the question, rank stored records, degrade through fallback
// context tiers, and synthesize the final answer. Every failure up
// through context resolution is absorbed by the chain; only the final
// generation call can fail a request.
package query

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/keepstack/keepstack/internal/domain"
)

// Service answers free-text questions about a user's saved content.
type Service struct {
	records RecordLister
	embed   Embedder
	synth   Synthesizer
	logger  *zap.Logger
}

// New creates a query service.
func New(records RecordLister, embed Embedder, synth Synthesizer, logger *zap.Logger) *Service {
	return &Service{records: records, embed: embed, synth: synth, logger: logger}
}

// Ask resolves context for the query and synthesizes an answer.
//
// Validation failures wrap domain.ErrInvalidRequest and happen before any
// external call. If no tier produces context, the fixed NoContentAnswer
// is returned as a normal response. A synthesis failure is the only error
// that propagates.
func (s *Service) Ask(ctx context.Context, q domain.Query) (domain.Answer, error) {
	if q.UserID == "" {
		return domain.Answer{}, fmt.Errorf("userId is required: %w", domain.ErrInvalidRequest)
	}
	if strings.TrimSpace(q.Text) == "" {
		return domain.Answer{}, fmt.Errorf("query is required: %w", domain.ErrInvalidRequest)
	}

	res, tierName := s.resolveContext(ctx, q)
	if res.empty() {
		return domain.Answer{
			Text:    NoContentAnswer,
			Sources: []domain.Source{},
		}, nil
	}

	s.logger.Debug("Context resolved",
		zap.String("tier", tierName),
		zap.Int("items", len(res.Context)),
	)

	text, event, err := s.synth.Synthesize(ctx, q.Text, res.Context, q.SuggestEvent)
	if err != nil {
		return domain.Answer{}, fmt.Errorf("synthesize answer: %w", err)
	}

	return domain.Answer{
		Text:           text,
		Sources:        res.Sources,
		SuggestedEvent: event,
	}, nil
}
