package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gobindapaudel/portfolio/internal/application/service"
	"github.com/gobindapaudel/portfolio/pkg/apperror"
)

const homeSnapshotKey = "home:snapshot"

type redisHomeCache struct {
	rdb *redis.Client
}

func NewRedisHomeCache(rdb *redis.Client) service.HomeSnapshotCache {
	return &redisHomeCache{rdb: rdb}
}

func (c *redisHomeCache) Load(ctx context.Context) (*service.HomeSnapshot, error) {
	raw, err := c.rdb.Get(ctx, homeSnapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, apperror.NewUnavailable("failed to read home snapshot", err)
	}

	var snap service.HomeSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, apperror.NewInternal("failed to decode home snapshot", err)
	}
	return &snap, nil
}

func (c *redisHomeCache) Store(ctx context.Context, snap *service.HomeSnapshot, ttl time.Duration) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return apperror.NewInternal("failed to encode home snapshot", err)
	}
	if err := c.rdb.Set(ctx, homeSnapshotKey, raw, ttl).Err(); err != nil {
		return apperror.NewUnavailable("failed to write home snapshot", err)
	}
	return nil
}
