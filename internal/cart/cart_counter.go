package cart

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Counter adalah observer jumlah item cart untuk badge di navbar.
// Setiap rekonsiliasi dan mutasi melaporkan count terbaru ke sini;
// pembacanya konsumen lain (navbar poll langsung ke Redis).
type Counter interface {
	Set(ctx context.Context, sessionID string, count int) error
}

type RedisCounter struct {
	rdb *redis.Client
}

func NewRedisCounter(rdb *redis.Client) *RedisCounter {
	return &RedisCounter{rdb: rdb}
}

func (c *RedisCounter) Set(ctx context.Context, sessionID string, count int) error {
	return c.rdb.Set(ctx, "cartcount:"+sessionID, count, 0).Err()
}

// NopCounter untuk test dan mode tanpa Redis.
type NopCounter struct{}

func (NopCounter) Set(context.Context, string, int) error { return nil }
