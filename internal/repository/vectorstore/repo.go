// Package vectorstore persists per-user embedding records in object
// storage under a deterministic key scheme ({prefix}{userId}/{itemId}.json).
// There is no local cache and no cross-record atomicity; writes are
// independent last-write-wins puts.
package vectorstore

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/keepstack/keepstack/internal/domain"
)

// store is the consumer interface over the object store (ISP).
type store interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}

const defaultFetchConcurrency = 8

// Repo reads and writes embedding records.
type Repo struct {
	store       store
	prefix      string
	concurrency int
	logger      *zap.Logger
	now         func() time.Time
}

// New creates an embedding record repository. prefix must end with "/".
func New(s store, prefix string, logger *zap.Logger) *Repo {
	return &Repo{
		store:       s,
		prefix:      prefix,
		concurrency: defaultFetchConcurrency,
		logger:      logger,
		now:         time.Now,
	}
}

// WithFetchConcurrency bounds the number of parallel record fetches per listing.
func (r *Repo) WithFetchConcurrency(n int) *Repo {
	if n > 0 {
		r.concurrency = n
	}
	return r
}

// Put writes or overwrites the embedding record for one item. Idempotent by
// construction: the key is derived from userID and itemID.
func (r *Repo) Put(ctx context.Context, userID, itemID string, vector []float32, meta domain.Metadata) error {
	data, err := encodeRecord(domain.EmbeddingRecord{
		ItemID:    itemID,
		Vector:    vector,
		Metadata:  meta,
		Timestamp: r.now().UTC(),
	})
	if err != nil {
		return err
	}

	if err := r.store.Put(ctx, r.recordKey(userID, itemID), data); err != nil {
		return fmt.Errorf("put record: %w", err)
	}
	return nil
}

// List returns every decodable embedding record for a user. Records are
// fetched with bounded parallelism; a record that fails to fetch or decode
// is logged and skipped, so one bad object never fails the whole listing.
func (r *Repo) List(ctx context.Context, userID string) ([]domain.EmbeddingRecord, error) {
	keys, err := r.store.ListKeys(ctx, r.userPrefix(userID))
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	fetched := make([]*domain.EmbeddingRecord, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, key := range keys {
		g.Go(func() error {
			data, err := r.store.Get(gctx, key)
			if err != nil {
				r.logger.Warn("Failed to fetch embedding record",
					zap.String("key", key), zap.Error(err))
				return nil
			}
			rec, err := decodeRecord(data)
			if err != nil {
				r.logger.Warn("Skipping malformed embedding record",
					zap.String("key", key), zap.Error(err))
				return nil
			}
			fetched[i] = &rec
			return nil
		})
	}
	// Workers never return errors; per-record failures are skipped above.
	_ = g.Wait()

	records := make([]domain.EmbeddingRecord, 0, len(keys))
	for _, rec := range fetched {
		if rec != nil {
			records = append(records, *rec)
		}
	}
	return records, nil
}

func (r *Repo) userPrefix(userID string) string {
	return r.prefix + userID + "/"
}

func (r *Repo) recordKey(userID, itemID string) string {
	return r.userPrefix(userID) + itemID + ".json"
}
