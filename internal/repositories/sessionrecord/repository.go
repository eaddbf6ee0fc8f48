// Package sessionrecord persists the single durable session record the
// client keeps between runs. The store is a small key-value table; the
// session layer uses exactly one key.
package sessionrecord

import "context"

// Repository is a key-value store for session records.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Set inserts or overwrites.
//   - Delete is a no-op for an absent key.
//   - Clear removes every record.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
