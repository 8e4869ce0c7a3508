// Package ingest saves captured content items: it embeds the item's
// metadata and writes the resulting record to the vector store.
package ingest

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/keepstack/keepstack/internal/domain"
)

// SaveResult reports what happened to a saved item. Indexed is false
// when the embedding provider is degraded and the item was accepted
// without a vector.
type SaveResult struct {
	ItemID  string
	Indexed bool
}

// Service indexes content items for later retrieval.
type Service struct {
	records RecordWriter
	embed   Embedder
	logger  *zap.Logger
}

// New creates an ingest service.
func New(records RecordWriter, embed Embedder, logger *zap.Logger) *Service {
	return &Service{records: records, embed: embed, logger: logger}
}

// Save embeds the item and persists its record under the user's prefix.
// An item without an ID gets a generated one. When the embedding
// provider is degraded the item is accepted but not indexed, which is
// not an error.
func (s *Service) Save(ctx context.Context, userID string, item domain.ContentItem) (SaveResult, error) {
	if userID == "" {
		return SaveResult{}, fmt.Errorf("userId is required: %w", domain.ErrInvalidRequest)
	}
	if strings.TrimSpace(item.Title) == "" {
		return SaveResult{}, fmt.Errorf("title is required: %w", domain.ErrInvalidRequest)
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	embRes, err := s.embed.Embed(ctx, item.EmbeddingText())
	if err != nil {
		return SaveResult{}, fmt.Errorf("embed item %s: %w", item.ID, err)
	}
	if embRes.Degraded {
		s.logger.Warn("Embedding degraded, item accepted without index",
			zap.String("user_id", userID),
			zap.String("item_id", item.ID),
		)
		return SaveResult{ItemID: item.ID, Indexed: false}, nil
	}

	if err := s.records.Put(ctx, userID, item.ID, embRes.Embedding, item.Metadata); err != nil {
		return SaveResult{}, fmt.Errorf("store record %s: %w", item.ID, err)
	}

	return SaveResult{ItemID: item.ID, Indexed: true}, nil
}
