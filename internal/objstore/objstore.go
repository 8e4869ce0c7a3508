// Package objstore defines the key-addressed object storage contract that
// holds per-user embedding records. Authentication and request signing are
// the provider's concern; consumers only see keys and bytes.
package objstore

import (
	"context"
	"errors"
)

// ErrNotFound signals a missing object.
var ErrNotFound = errors.New("objstore: object not found")

// Store is a key-addressed object store.
type Store interface {
	// Put writes an object, overwriting any existing one at the key.
	Put(ctx context.Context, key string, data []byte) error
	// Get reads an object in full. Returns ErrNotFound for missing keys.
	Get(ctx context.Context, key string) ([]byte, error)
	// ListKeys enumerates all object keys under the given prefix.
	ListKeys(ctx context.Context, prefix string) ([]string, error)
	// Ping verifies the store is reachable and the backing bucket exists.
	Ping(ctx context.Context) error
}
