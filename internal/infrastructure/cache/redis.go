// Package cache connects to Redis.
package cache

import (
	"context"
	"time"

	"andicot_proforma/internal/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns nil when no address is configured.
func NewRedisClient(c config.RedisConfig) *redis.Client {
	if c.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	})
}

// Ping checks the connection with a short timeout.
func Ping(ctx context.Context, rdb redis.UniversalClient) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return rdb.Ping(ctx).Err()
}
