package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/morvy/kybernaut-ic-dic/internal/domain/shared"
)

// releaseScript deletes the lock key only when it still holds our token,
// so an expired lock reacquired by another instance is never released
// from here.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisOrderLock implements OrderLocker with Redis SETNX leases. Suitable
// for distributed deployments where multiple instances annotate orders.
type RedisOrderLock struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
	retryWait time.Duration
}

// NewRedisOrderLock creates a new Redis-backed order lock. The TTL bounds
// how long a crashed holder can leave an order locked.
func NewRedisOrderLock(client *redis.Client, ttl time.Duration) *RedisOrderLock {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisOrderLock{
		client:    client,
		keyPrefix: "order:lock:",
		ttl:       ttl,
		retryWait: 100 * time.Millisecond,
	}
}

// Acquire blocks until the lock for key is held or ctx is done.
func (l *RedisOrderLock) Acquire(ctx context.Context, key string) (func(), error) {
	lockKey := l.keyPrefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(l.retryWait)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, lockKey, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire order lock: %w", err)
		}
		if ok {
			return func() { l.release(lockKey, token) }, nil
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil, shared.ErrLockTimeout
		}
	}
}

func (l *RedisOrderLock) release(lockKey, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	// Best effort: an expired lease is cleaned up by the TTL anyway.
	_ = releaseScript.Run(ctx, l.client, []string{lockKey}, token).Err()
}

// Ensure RedisOrderLock implements OrderLocker
var _ shared.OrderLocker = (*RedisOrderLock)(nil)
