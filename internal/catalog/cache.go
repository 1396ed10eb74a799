package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs per response kind. Trending churns daily, genres basically never.
const (
	SearchTTL   = 10 * time.Minute
	TrendingTTL = 15 * time.Minute
	DetailsTTL  = 6 * time.Hour
	GenresTTL   = 24 * time.Hour
)

// cacheKeyPrefix namespaces catalog cache keys in Redis.
const cacheKeyPrefix = "moviefinder:catalog:"

// Cache stores catalog responses in Redis. A nil *Cache disables caching,
// so the client works unchanged when Redis is not configured.
type Cache struct {
	client *redis.Client
}

// NewCache creates a catalog response cache on top of the Redis client.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// get loads a cached response into dest. Returns false on miss or any Redis
// error; a broken cache must never break a catalog call.
func (c *Cache) get(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}
	data, err := c.client.Get(ctx, cacheKeyPrefix+key).Bytes()
	if err != nil {
		// Absent key and Redis trouble are both a miss.
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// set stores a response, best effort.
func (c *Cache) set(ctx context.Context, key string, value any, ttl time.Duration) {
	if c == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, cacheKeyPrefix+key, data, ttl).Err()
}
