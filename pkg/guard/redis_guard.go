package guard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisGuard coordinates sweeps across instances with SETNX + TTL.
type RedisGuard struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisGuard(rdb *redis.Client) *RedisGuard {
	return &RedisGuard{
		rdb: rdb,
		// A key only needs to outlive its calendar day.
		ttl: 25 * time.Hour,
	}
}

func (g *RedisGuard) TryAcquire(ctx context.Context, agreementID uuid.UUID, day time.Time) (bool, error) {
	return g.rdb.SetNX(ctx, key(agreementID, day), 1, g.ttl).Result()
}

func (g *RedisGuard) Release(ctx context.Context, agreementID uuid.UUID, day time.Time) error {
	return g.rdb.Del(ctx, key(agreementID, day)).Err()
}
