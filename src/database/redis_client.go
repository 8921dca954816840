package database

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"scholar-duty-backend/src/config"
)

var RedisClient *redis.Client

// InitRedis connects to Redis when an address is configured. Without one,
// RedisClient stays nil and callers skip caching and background jobs.
func InitRedis(ctx context.Context, cfg config.RedisConfig) error {
	if cfg.Addr == "" {
		zap.L().Warn("⚠️ Redis address not set. Cache and background refresh are disabled.")
		return nil
	}

	c := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := c.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	RedisClient = c
	zap.L().Info("✅ Redis connected", zap.String("addr", cfg.Addr))
	return nil
}
