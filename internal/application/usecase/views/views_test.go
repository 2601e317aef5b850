package views

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobindapaudel/portfolio/internal/application/service"
	"github.com/gobindapaudel/portfolio/pkg/logger"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []service.ProjectViewedEvent
	ctxErr error
	err    error
}

func (p *recordingPublisher) PublishProjectViewed(ctx context.Context, evt service.ProjectViewedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	p.ctxErr = ctx.Err()
	return p.err
}

type memCounter struct {
	counts   map[int64]int64
	err      error
	failNext int
	attempts int
}

func (c *memCounter) Increment(_ context.Context, id int64) (int64, error) {
	c.attempts++
	if c.err != nil {
		return 0, c.err
	}
	if c.failNext > 0 {
		c.failNext--
		return 0, errors.New("redis timeout")
	}
	c.counts[id]++
	return c.counts[id], nil
}

func (c *memCounter) Count(_ context.Context, id int64) (int64, error) {
	if c.err != nil {
		return 0, c.err
	}
	return c.counts[id], nil
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish did not finish")
	}
}

func TestRecordViewOutlivesRequestContext(t *testing.T) {
	pub := &recordingPublisher{}
	uc := NewRecordViewUseCase(pub, logger.NewNopLogger())
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	ctx, cancel := context.WithCancel(context.Background())
	done := uc.Execute(ctx, 42)
	cancel()
	waitDone(t, done)

	pub.mu.Lock()
	defer pub.mu.Unlock()
	require.Len(t, pub.events, 1)
	assert.Equal(t, int64(42), pub.events[0].ProjectID)
	assert.Equal(t, fixed, pub.events[0].ViewedAt)
	assert.NoError(t, pub.ctxErr)
}

func TestRecordViewSwallowsPublishError(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	uc := NewRecordViewUseCase(pub, logger.NewNopLogger())
	waitDone(t, uc.Execute(context.Background(), 7))
	assert.Len(t, pub.events, 1)
}

func TestCountViews(t *testing.T) {
	ctx := context.Background()
	counter := &memCounter{counts: map[int64]int64{42: 3}}

	assert.Equal(t, int64(3), NewCountViewsUseCase(counter, logger.NewNopLogger()).Execute(ctx, 42))
	assert.Zero(t, NewCountViewsUseCase(nil, logger.NewNopLogger()).Execute(ctx, 42))

	counter.err = errors.New("redis down")
	assert.Zero(t, NewCountViewsUseCase(counter, logger.NewNopLogger()).Execute(ctx, 42))
}

func TestProcessViewEvent(t *testing.T) {
	ctx := context.Background()
	counter := &memCounter{counts: map[int64]int64{}}
	uc := NewProcessViewEventUseCase(counter, logger.NewNopLogger())

	require.NoError(t, uc.Execute(ctx, service.ProjectViewedEvent{ProjectID: 5}))
	require.NoError(t, uc.Execute(ctx, service.ProjectViewedEvent{ProjectID: 5}))
	assert.Equal(t, int64(2), counter.counts[5])

	counter.err = errors.New("redis down")
	assert.Error(t, uc.Execute(ctx, service.ProjectViewedEvent{ProjectID: 5}))
}

func TestProcessViewEventRetriesSameEvent(t *testing.T) {
	counter := &memCounter{counts: map[int64]int64{}, failNext: 2}
	uc := NewProcessViewEventUseCase(counter, logger.NewNopLogger())
	var delays []int
	uc.backoff = func(attempt int) time.Duration {
		delays = append(delays, attempt)
		return time.Millisecond
	}

	require.NoError(t, uc.ExecuteUntilDone(context.Background(), service.ProjectViewedEvent{ProjectID: 9}))
	assert.Equal(t, int64(1), counter.counts[9])
	assert.Equal(t, 3, counter.attempts)
	assert.Equal(t, []int{0, 1}, delays)
}

func TestProcessViewEventStopsRetryingOnShutdown(t *testing.T) {
	counter := &memCounter{counts: map[int64]int64{}, err: errors.New("redis down")}
	uc := NewProcessViewEventUseCase(counter, logger.NewNopLogger())
	uc.backoff = func(int) time.Duration { return time.Millisecond }

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := uc.ExecuteUntilDone(ctx, service.ProjectViewedEvent{ProjectID: 9})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, counter.counts[9])
	assert.Greater(t, counter.attempts, 1)
}

func TestRetryDelayIsCapped(t *testing.T) {
	assert.Equal(t, time.Second, retryDelay(0))
	assert.Equal(t, 4*time.Second, retryDelay(2))
	assert.Equal(t, maxRetryDelay, retryDelay(10))
}
