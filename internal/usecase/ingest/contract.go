package ingest

import (
	"context"

	"github.com/keepstack/keepstack/internal/domain"
)

// RecordWriter persists an item's embedding record.
type RecordWriter interface {
	Put(ctx context.Context, userID, itemID string, vector []float32, meta domain.Metadata) error
}

// Embedder vectorizes an item's metadata text.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
