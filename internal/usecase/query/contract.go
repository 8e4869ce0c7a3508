package query

import (
	"context"

	"github.com/keepstack/keepstack/internal/domain"
)

// RecordLister reads a user's stored embedding records.
type RecordLister interface {
	List(ctx context.Context, userID string) ([]domain.EmbeddingRecord, error)
}

// Embedder vectorizes the query text.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

// Synthesizer turns resolved context into an answer.
type Synthesizer interface {
	Synthesize(
		ctx context.Context, query string, items []domain.ContentItem, suggestEvent bool,
	) (string, *domain.SuggestedEvent, error)
}
