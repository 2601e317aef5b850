package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/gobindapaudel/portfolio/internal/config"
	"github.com/gobindapaudel/portfolio/pkg/logger"
)

// NewRedisClient returns nil, nil when no address is configured.
func NewRedisClient(cfg config.RedisConfig, log logger.Logger) (*redis.Client, error) {
	if cfg.Addr == "" {
		log.Info("Redis disabled, no address configured")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("can not connect Redis: %w", err)
	}

	log.Info("Connect Redis successfully.", zap.String("addr", cfg.Addr))
	return rdb, nil
}
