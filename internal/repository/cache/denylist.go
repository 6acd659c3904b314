package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jellydator/ttlcache/v3"
)

const revokedTokenKeyPrefix = "elections:revoked_token:"

// RedisTokenDenylist stores revoked token ids until the token would have
// expired anyway.
type RedisTokenDenylist struct {
	client *redis.Client
}

func NewRedisTokenDenylist(client *redis.Client) *RedisTokenDenylist {
	return &RedisTokenDenylist{
		client: client,
	}
}

func (d *RedisTokenDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := d.client.Set(ctx, revokedTokenKeyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("d.client.Set -> %w", err)
	}

	return nil
}

func (d *RedisTokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, revokedTokenKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("d.client.Exists -> %w", err)
	}

	return n > 0, nil
}

// MemoryTokenDenylist is used when no Redis is configured. Revocations are
// lost on restart and not shared between instances.
type MemoryTokenDenylist struct {
	revoked *ttlcache.Cache[string, struct{}]
}

// NewMemoryTokenDenylist starts the expiry loop. Close stops it.
func NewMemoryTokenDenylist() *MemoryTokenDenylist {
	revoked := ttlcache.New[string, struct{}](
		ttlcache.WithDisableTouchOnHit[string, struct{}](),
	)
	go revoked.Start()

	return &MemoryTokenDenylist{
		revoked: revoked,
	}
}

func (d *MemoryTokenDenylist) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	d.revoked.Set(tokenID, struct{}{}, ttl)

	return nil
}

func (d *MemoryTokenDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return d.revoked.Has(tokenID), nil
}

func (d *MemoryTokenDenylist) Close() {
	d.revoked.Stop()
}
