// Package cache provides a small result cache for deterministic calculator
// responses. Entries are keyed by calculator name plus a hash of the request
// body; this is an optimization, not a history store.
package cache

import "context"

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
}
