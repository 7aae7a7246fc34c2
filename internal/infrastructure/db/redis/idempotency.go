package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyStore records which entity id an Idempotency-Key produced, so a
// replayed create can return the original entity instead of inserting twice.
// Key format: idem:<scope>:<key>  →  entity id
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Lookup returns the entity id previously recorded for the key, or "" when
// the key has not been seen (or has expired).
func (s *IdempotencyStore) Lookup(ctx context.Context, scope, key string) (string, error) {
	id, err := s.client.Get(ctx, s.key(scope, key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("idempotency lookup: %w", err)
	}
	return id, nil
}

// Remember records the entity id for the key (expires after idempotencyTTL).
func (s *IdempotencyStore) Remember(ctx context.Context, scope, key, id string) error {
	return s.client.Set(ctx, s.key(scope, key), id, idempotencyTTL).Err()
}

func (s *IdempotencyStore) key(scope, key string) string {
	return fmt.Sprintf("idem:%s:%s", scope, key)
}
