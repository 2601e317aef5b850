package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/gobindapaudel/portfolio/internal/application/service"
	"github.com/gobindapaudel/portfolio/pkg/apperror"
)

type redisViewCounter struct {
	rdb *redis.Client
}

func NewRedisViewCounter(rdb *redis.Client) service.ViewCounter {
	return &redisViewCounter{rdb: rdb}
}

func viewKey(projectID int64) string {
	return fmt.Sprintf("views:project:%d", projectID)
}

func (c *redisViewCounter) Increment(ctx context.Context, projectID int64) (int64, error) {
	n, err := c.rdb.Incr(ctx, viewKey(projectID)).Result()
	if err != nil {
		return 0, apperror.NewUnavailable("failed to increment view counter", err)
	}
	return n, nil
}

func (c *redisViewCounter) Count(ctx context.Context, projectID int64) (int64, error) {
	n, err := c.rdb.Get(ctx, viewKey(projectID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, apperror.NewUnavailable("failed to read view counter", err)
	}
	return n, nil
}
