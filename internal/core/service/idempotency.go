package service

import "context"

// Scopes namespace idempotency keys per entity type so the same key can be
// reused against different create endpoints.
const (
	scopeUsers    = "users"
	scopePosts    = "posts"
	scopeComments = "comments"
)

// IdempotencyStore abstracts the replay-detection store (Redis). Lookup
// returns the id of the entity a key previously created, or "" when the key
// has not been seen. Keys expire after a store-defined TTL.
type IdempotencyStore interface {
	Lookup(ctx context.Context, scope, key string) (string, error)
	Remember(ctx context.Context, scope, key, id string) error
}
