package query

import (
	"context"

	"go.uber.org/zap"

	"github.com/keepstack/keepstack/internal/domain"
	"github.com/keepstack/keepstack/internal/metrics"
	"github.com/keepstack/keepstack/internal/usecase/retrieval"
)

const (
	// DefaultFallbackRelevance is assigned to sources on tiers that have
	// no real ranking signal. The value is a placeholder by contract, not
	// a tuned constant.
	DefaultFallbackRelevance = 0.8

	// maxCallerItems caps how many caller-supplied items become context.
	maxCallerItems = 15
	// maxMetadataRecords caps how many stored records the metadata tier uses.
	maxMetadataRecords = 10

	// NoContentAnswer is returned when every tier comes up empty.
	NoContentAnswer = "I couldn't find any saved content to answer your question. Try saving some content first!"
)

// Fallback tier names, in order of preference. Also used as metric labels.
const (
	tierEmbeddingSearch = "embedding_search"
	tierCallerItems     = "caller_items"
	tierStoreMetadata   = "store_metadata"
	tierNoContext       = "no_context"
)

// resolution is the context produced by one fallback tier.
type resolution struct {
	Context []domain.ContentItem
	Sources []domain.Source
}

func (r resolution) empty() bool { return len(r.Context) == 0 }

// tier is one stage of the fallback chain. run returns an error or an
// empty resolution to advance to the next tier; both mean the same
// thing: insufficient context here, try a weaker source.
type tier struct {
	name string
	run  func(ctx context.Context) (resolution, error)
}

// resolveContext walks the fallback tiers in order and returns the first
// non-empty resolution, along with the name of the tier that produced it.
// It never returns an error: a chain where every tier fails resolves to
// the empty resolution, which the caller answers with NoContentAnswer.
func (s *Service) resolveContext(ctx context.Context, q domain.Query) (resolution, string) {
	log := s.logger

	tiers := []tier{
		{tierEmbeddingSearch, func(ctx context.Context) (resolution, error) {
			return s.embeddingSearch(ctx, q)
		}},
		{tierCallerItems, func(context.Context) (resolution, error) {
			return callerItems(q.Items), nil
		}},
		{tierStoreMetadata, func(ctx context.Context) (resolution, error) {
			return s.storeMetadata(ctx, q.UserID)
		}},
	}

	for _, t := range tiers {
		res, err := t.run(ctx)
		if err != nil {
			log.Warn("Fallback tier failed, advancing",
				zap.String("tier", t.name), zap.Error(err))
			continue
		}
		if res.empty() {
			log.Debug("Fallback tier empty, advancing", zap.String("tier", t.name))
			continue
		}
		metrics.QueryFallbackTierTotal.WithLabelValues(t.name).Inc()
		return res, t.name
	}

	metrics.QueryFallbackTierTotal.WithLabelValues(tierNoContext).Inc()
	return resolution{}, tierNoContext
}

// embeddingSearch is the preferred tier: vectorize the query and rank the
// user's stored records by cosine similarity. A degraded embedding result
// advances the chain without touching the store at all.
func (s *Service) embeddingSearch(ctx context.Context, q domain.Query) (resolution, error) {
	embRes, err := s.embed.Embed(ctx, q.Text)
	if err != nil {
		return resolution{}, err
	}
	if embRes.Degraded {
		s.logger.Info("Embedding degraded, skipping vector search",
			zap.String("user_id", q.UserID))
		return resolution{}, nil
	}

	records, err := s.records.List(ctx, q.UserID)
	if err != nil {
		return resolution{}, err
	}

	matches := retrieval.Rank(embRes.Embedding, records)

	res := resolution{
		Context: make([]domain.ContentItem, 0, len(matches)),
		Sources: make([]domain.Source, 0, len(matches)),
	}
	for _, m := range matches {
		res.Context = append(res.Context, domain.ContentItem{
			ID:       m.Record.ItemID,
			Metadata: m.Record.Metadata,
		})
		res.Sources = append(res.Sources, domain.Source{
			ItemID:      m.Record.ItemID,
			Title:       m.Record.Metadata.Title,
			Description: m.Record.Metadata.Description,
			Relevance:   m.Score,
		})
	}
	return res, nil
}

// callerItems builds context from items the caller sent along with the
// query. No ranking signal exists here, so every source gets
// DefaultFallbackRelevance.
func callerItems(items []domain.ContentItem) resolution {
	if len(items) > maxCallerItems {
		items = items[:maxCallerItems]
	}

	res := resolution{
		Context: make([]domain.ContentItem, 0, len(items)),
		Sources: make([]domain.Source, 0, len(items)),
	}
	for _, item := range items {
		res.Context = append(res.Context, item)
		res.Sources = append(res.Sources, domain.Source{
			ItemID:      item.ID,
			Title:       item.Title,
			Description: item.Description,
			Relevance:   DefaultFallbackRelevance,
		})
	}
	return res
}

// storeMetadata is the weakest real tier: re-list the user's records and
// use their denormalized metadata, ignoring vectors entirely.
func (s *Service) storeMetadata(ctx context.Context, userID string) (resolution, error) {
	records, err := s.records.List(ctx, userID)
	if err != nil {
		return resolution{}, err
	}
	if len(records) > maxMetadataRecords {
		records = records[:maxMetadataRecords]
	}

	res := resolution{
		Context: make([]domain.ContentItem, 0, len(records)),
		Sources: make([]domain.Source, 0, len(records)),
	}
	for _, rec := range records {
		res.Context = append(res.Context, domain.ContentItem{
			ID:       rec.ItemID,
			Metadata: rec.Metadata,
		})
		res.Sources = append(res.Sources, domain.Source{
			ItemID:      rec.ItemID,
			Title:       rec.Metadata.Title,
			Description: rec.Metadata.Description,
			Relevance:   DefaultFallbackRelevance,
		})
	}
	return res, nil
}
