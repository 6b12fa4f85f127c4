package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/almog-gaya/nextprop-sub005/domain"
)

// RedisReplayGuard implements domain.ReplayGuard on Redis SETNX + TTL
type RedisReplayGuard struct {
	client *redis.Client
	prefix string
}

// NewReplayGuard creates a new Redis-backed replay guard
func NewReplayGuard(client *redis.Client) domain.ReplayGuard {
	return &RedisReplayGuard{
		client: client,
		prefix: "guard:",
	}
}

// FirstSeen implements domain.ReplayGuard
func (g *RedisReplayGuard) FirstSeen(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return g.client.SetNX(ctx, g.prefix+key, 1, ttl).Result()
}

// Wait implements domain.ReplayGuard. Redis expires reservations itself;
// a missing or expired key reports zero.
func (g *RedisReplayGuard) Wait(ctx context.Context, key string) (time.Duration, error) {
	ttl, err := g.client.TTL(ctx, g.prefix+key).Result()
	if err != nil {
		return 0, err
	}
	if ttl <= 0 {
		return 0, nil
	}
	return ttl, nil
}

// Release implements domain.ReplayGuard
func (g *RedisReplayGuard) Release(ctx context.Context, key string) error {
	return g.client.Del(ctx, g.prefix+key).Err()
}
