// FilePath: internal/cache/cache.go
package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/climatewatch/hub/internal/config"
	"github.com/redis/go-redis/v9"
	nuts "github.com/vaudience/go-nuts"
)

// ResponseCache is a small redis-backed cache for rendered query
// responses. Only the expensive aggregation endpoints use it; the auth
// gate never does. A nil *ResponseCache is valid and caches nothing.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache connects to redis with the given settings.
func NewResponseCache(ctx context.Context, cfg config.RedisConfig) (*ResponseCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	nuts.L.Infof("[ResponseCache] Connected to redis at %s:%d", cfg.Host, cfg.Port)
	return &ResponseCache{client: client, ttl: cfg.CacheTTL}, nil
}

// Key builds a cache key from its parts.
func Key(parts ...string) string {
	return "respcache:" + strings.Join(parts, ":")
}

// Get returns the cached payload for key, if any.
func (c *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			nuts.L.Warnf("[ResponseCache] get %s: %v", key, err)
		}
		return nil, false
	}
	return payload, true
}

// Set stores a payload under key for the configured TTL. Failures are
// logged, never surfaced; the cache is an optimization.
func (c *ResponseCache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil {
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		nuts.L.Warnf("[ResponseCache] set %s: %v", key, err)
	}
}

// Close releases the redis connection.
func (c *ResponseCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
