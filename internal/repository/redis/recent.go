package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const recentKeyPrefix = "recently_viewed:"

// RecentlyViewedRepository implements repository.RecentlyViewedRepository
// using Redis, sharing the JSON-array serialization contract with the
// wishlist repository.
type RecentlyViewedRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRecentlyViewedRepository creates a new Redis-backed recently-viewed
// repository. A zero ttl means entries never expire.
func NewRecentlyViewedRepository(client *redis.Client, ttl time.Duration) *RecentlyViewedRepository {
	return &RecentlyViewedRepository{
		client: client,
		ttl:    ttl,
	}
}

// Get reads the recently-viewed ids for the session, most-recent-first.
// A missing key or corrupt payload yields an empty list.
func (r *RecentlyViewedRepository) Get(ctx context.Context, sessionID string) ([]string, error) {
	return readIDList(ctx, r.client, recentKeyPrefix+sessionID)
}

// Save overwrites the full recently-viewed list for the session.
func (r *RecentlyViewedRepository) Save(ctx context.Context, sessionID string, ids []string) error {
	return writeIDList(ctx, r.client, recentKeyPrefix+sessionID, ids, r.ttl)
}
