package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/morvy/kybernaut-ic-dic/internal/domain/shared"
	"github.com/morvy/kybernaut-ic-dic/internal/infrastructure/config"
)

// NewRedisClient creates and pings a Redis client from configuration.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// NewOrderLocker creates the configured order-lock backend. The redis
// backend is required for multi-instance deployments; memory is the
// single-instance default. Acquire calls are bounded by the configured
// acquire timeout.
func NewOrderLocker(cfg config.LockConfig, redisCfg config.RedisConfig, logger *zap.Logger) (shared.OrderLocker, error) {
	var locker shared.OrderLocker

	switch cfg.Backend {
	case "redis":
		client, err := NewRedisClient(redisCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis order lock: %w", err)
		}
		logger.Info("using Redis order lock", zap.Duration("ttl", cfg.TTL))
		locker = NewRedisOrderLock(client, cfg.TTL)
	case "memory":
		logger.Info("using in-memory order lock")
		locker = NewInMemoryOrderLock()
	default:
		return nil, fmt.Errorf("unknown lock backend %q", cfg.Backend)
	}

	if cfg.AcquireTimeout > 0 {
		locker = &boundedLocker{inner: locker, timeout: cfg.AcquireTimeout}
	}
	return locker, nil
}

// boundedLocker caps how long an Acquire may wait for a contended lock.
type boundedLocker struct {
	inner   shared.OrderLocker
	timeout time.Duration
}

func (b *boundedLocker) Acquire(ctx context.Context, key string) (func(), error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()
	return b.inner.Acquire(ctx, key)
}
