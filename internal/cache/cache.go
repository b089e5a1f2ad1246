package cache

import (
	"context"
	"errors"
	"time"

	"innstay/internal/utils"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"
)

// Cache stores encoded search results. Misses and backend failures look the same.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte)
}

// LRU is an in-process cache bounded by entry count and age.
type LRU struct {
	entries *expirable.LRU[string, []byte]
}

func NewLRU(size int, ttl time.Duration) *LRU {
	if size <= 0 {
		size = 100
	}
	return &LRU{entries: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

func (c *LRU) Get(_ context.Context, key string) ([]byte, bool) {
	return c.entries.Get(key)
}

func (c *LRU) Set(_ context.Context, key string, val []byte) {
	c.entries.Add(key, val)
}

func (c *LRU) Len() int {
	return c.entries.Len()
}

// Redis shares cached results between instances.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl, prefix: "innstay:search:"}
}

func (c *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			utils.Log.Warnw("search cache read failed", "key", key, "error", err)
		}
		return nil, false
	}
	return val, true
}

func (c *Redis) Set(ctx context.Context, key string, val []byte) {
	if err := c.client.Set(ctx, c.prefix+key, val, c.ttl).Err(); err != nil {
		utils.Log.Warnw("search cache write failed", "key", key, "error", err)
	}
}
