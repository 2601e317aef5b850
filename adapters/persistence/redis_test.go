package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobindapaudel/portfolio/internal/application/service"
	"github.com/gobindapaudel/portfolio/internal/domain/profile"
	"github.com/gobindapaudel/portfolio/internal/domain/project"
	"github.com/gobindapaudel/portfolio/pkg/apperror"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, rdb
}

func TestHomeCacheRoundTripAndExpiry(t *testing.T) {
	mr, rdb := newTestRedis(t)
	cache := NewRedisHomeCache(rdb)
	ctx := context.Background()

	snap, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap)

	completed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	in := &service.HomeSnapshot{
		Profile: &profile.Profile{ID: 1, Name: "Gobinda Paudel", Title: "Web Developer"},
		Projects: []*project.Project{
			{ID: 7, Title: "Voltanex", Tags: "Arduino, Raspberry Pi", DateCompleted: &completed},
			{ID: 3, Title: "EduCare"},
		},
	}
	require.NoError(t, cache.Store(ctx, in, time.Hour))

	out, err := cache.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Gobinda Paudel", out.Profile.Name)
	require.Len(t, out.Projects, 2)
	assert.Equal(t, int64(7), out.Projects[0].ID)
	assert.True(t, completed.Equal(*out.Projects[0].DateCompleted))
	assert.Nil(t, out.Projects[1].DateCompleted)

	mr.FastForward(time.Hour + time.Second)
	out, err = cache.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestHomeCacheReportsUnavailableRedis(t *testing.T) {
	mr, rdb := newTestRedis(t)
	cache := NewRedisHomeCache(rdb)
	mr.Close()

	_, err := cache.Load(context.Background())
	assert.ErrorIs(t, err, apperror.ErrUnavailable)
}

func TestViewCounter(t *testing.T) {
	_, rdb := newTestRedis(t)
	counter := NewRedisViewCounter(rdb)
	ctx := context.Background()

	n, err := counter.Count(ctx, 42)
	require.NoError(t, err)
	assert.Zero(t, n)

	for i := 1; i <= 3; i++ {
		n, err = counter.Increment(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(i), n)
	}

	n, err = counter.Count(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = counter.Count(ctx, 43)
	require.NoError(t, err)
	assert.Zero(t, n)
}
