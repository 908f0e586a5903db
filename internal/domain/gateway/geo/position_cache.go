package geo

import (
	"context"
	"sync"
	"time"

	"weather-now/internal/domain/entity"
	"weather-now/pkg/redis"
)

const (
	positionCacheName = "positions"
	lastPositionKey   = "last"
)

type memoryPositionCache struct {
	mu       sync.RWMutex
	position *entity.Position
}

// NewMemoryPositionCache keeps the last position in process memory
func NewMemoryPositionCache() PositionCache {
	return &memoryPositionCache{}
}

func (c *memoryPositionCache) Load(_ context.Context) (entity.Position, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.position == nil {
		return entity.Position{}, false, nil
	}
	return *c.position, true, nil
}

func (c *memoryPositionCache) Store(_ context.Context, position entity.Position) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.position = &position
	return nil
}

type redisPositionCache struct {
	cache *redis.Cache
}

// NewRedisPositionCache keeps the last position in Redis under Namespace::positions::last.
// The entry expires after ttl unless the client configures a TTL for the "positions" cache.
func NewRedisPositionCache(client *redis.Client, ttl time.Duration) PositionCache {
	return &redisPositionCache{
		cache: redis.NewCache(client, redis.NewCacheOptions().WithTTL(ttl).WithCacheName(positionCacheName)),
	}
}

func (c *redisPositionCache) Load(ctx context.Context) (entity.Position, bool, error) {
	var position entity.Position
	found, err := c.cache.Get(ctx, lastPositionKey, &position)
	if err != nil || !found {
		return entity.Position{}, false, err
	}
	return position, true, nil
}

func (c *redisPositionCache) Store(ctx context.Context, position entity.Position) error {
	return c.cache.Set(ctx, lastPositionKey, position)
}
