package ratelimit

import (
	"context"
	"sync/atomic"

	redis_utils "strategy/src/utils/redis"
)

// Counter is a shared request counter visible to every caller of the
// brokerage API. Increments are best-effort: the store's own atomicity is all
// that is guaranteed.
type Counter interface {
	Get(ctx context.Context) (int64, error)
	Incr(ctx context.Context) error
	Reset(ctx context.Context) error
}

const counterKey = "api_requests_counter"

// RedisCounter keeps the counter in Redis so every process of the deployment
// shares one window.
type RedisCounter struct {
	redis *redis_utils.RedisHandler
}

func NewRedisCounter(redis *redis_utils.RedisHandler) *RedisCounter {
	return &RedisCounter{redis: redis}
}

func (c *RedisCounter) Get(ctx context.Context) (int64, error) {
	return c.redis.GetInt64(ctx, counterKey)
}

func (c *RedisCounter) Incr(ctx context.Context) error {
	return c.redis.Incr(ctx, counterKey)
}

func (c *RedisCounter) Reset(ctx context.Context) error {
	return c.redis.SetInt64(ctx, counterKey, 0)
}

// MemoryCounter is a process-local atomic counter, used in tests and as a
// fallback when Redis is not configured.
type MemoryCounter struct {
	value atomic.Int64
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{}
}

func (c *MemoryCounter) Get(context.Context) (int64, error) {
	return c.value.Load(), nil
}

func (c *MemoryCounter) Incr(context.Context) error {
	c.value.Add(1)
	return nil
}

func (c *MemoryCounter) Reset(context.Context) error {
	c.value.Store(0)
	return nil
}
