package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const wishlistKeyPrefix = "wishlist:"

// WishlistRepository implements repository.WishlistRepository using Redis.
// The wishlist is stored as a JSON-encoded array of product ids under a
// fixed per-session key, mirroring the single serialization contract for
// all persisted id lists.
type WishlistRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewWishlistRepository creates a new Redis-backed wishlist repository.
// A zero ttl means entries never expire.
func NewWishlistRepository(client *redis.Client, ttl time.Duration) *WishlistRepository {
	return &WishlistRepository{
		client: client,
		ttl:    ttl,
	}
}

// Get reads the wishlist ids for the session. A missing key or a payload
// that fails to parse both yield an empty list; only a transport failure is
// reported as an error.
func (r *WishlistRepository) Get(ctx context.Context, sessionID string) ([]string, error) {
	return readIDList(ctx, r.client, wishlistKeyPrefix+sessionID)
}

// Save overwrites the full wishlist for the session.
func (r *WishlistRepository) Save(ctx context.Context, sessionID string, ids []string) error {
	return writeIDList(ctx, r.client, wishlistKeyPrefix+sessionID, ids, r.ttl)
}

// readIDList loads a JSON array of ids from the given key, defaulting to
// empty on absence or corruption.
func readIDList(ctx context.Context, client *redis.Client, key string) ([]string, error) {
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return []string{}, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		// Corrupt payload: recover by treating it as empty.
		return []string{}, nil
	}
	if ids == nil {
		ids = []string{}
	}

	return ids, nil
}

// writeIDList stores a JSON array of ids under the given key.
func writeIDList(ctx context.Context, client *redis.Client, key string, ids []string, ttl time.Duration) error {
	if ids == nil {
		ids = []string{}
	}

	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal id list: %w", err)
	}

	if err := client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}

	return nil
}
