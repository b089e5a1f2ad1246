package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestLRUIsBounded(t *testing.T) {
	c := NewLRU(2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		c.Set(ctx, fmt.Sprintf("k%d", i), []byte{byte(i)})
	}
	assert.Equal(t, 2, c.Len())

	_, ok := c.Get(ctx, "k0")
	assert.False(t, ok)
	v, ok := c.Get(ctx, "k4")
	assert.True(t, ok)
	assert.Equal(t, []byte{4}, v)
}

func TestLRUExpires(t *testing.T) {
	c := NewLRU(10, 20*time.Millisecond)
	ctx := context.Background()

	c.Set(ctx, "NYC|2026-02-15", []byte("x"))
	_, ok := c.Get(ctx, "NYC|2026-02-15")
	assert.True(t, ok)

	time.Sleep(60 * time.Millisecond)
	_, ok = c.Get(ctx, "NYC|2026-02-15")
	assert.False(t, ok)
}

func TestRedisUnavailableIsAMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewRedis(client, time.Minute)
	c.Set(context.Background(), "k", []byte("v"))
	_, ok := c.Get(context.Background(), "k")
	assert.False(t, ok)
}
