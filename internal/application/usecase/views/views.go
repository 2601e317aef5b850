package views

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gobindapaudel/portfolio/internal/application/service"
	"github.com/gobindapaudel/portfolio/pkg/logger"
)

const (
	publishTimeout = 5 * time.Second
	maxRetryDelay  = 30 * time.Second
)

// RecordViewUseCase publishes a view event without holding up the request.
type RecordViewUseCase struct {
	publisher service.ViewEventPublisher
	logger    logger.Logger
	now       func() time.Time
}

func NewRecordViewUseCase(publisher service.ViewEventPublisher, log logger.Logger) *RecordViewUseCase {
	return &RecordViewUseCase{publisher: publisher, logger: log, now: time.Now}
}

// Execute returns immediately; the returned channel is closed once the
// publish attempt has finished.
func (uc *RecordViewUseCase) Execute(ctx context.Context, projectID int64) <-chan struct{} {
	done := make(chan struct{})
	evt := service.ProjectViewedEvent{ProjectID: projectID, ViewedAt: uc.now().UTC()}

	go func() {
		defer close(done)
		pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		defer cancel()

		if err := uc.publisher.PublishProjectViewed(pubCtx, evt); err != nil {
			uc.logger.Warn("Failed to publish view event",
				zap.Int64("project_id", projectID), zap.Error(err))
		}
	}()
	return done
}

type CountViewsUseCase struct {
	counter service.ViewCounter
	logger  logger.Logger
}

// NewCountViewsUseCase accepts a nil counter; every count is then 0.
func NewCountViewsUseCase(counter service.ViewCounter, log logger.Logger) *CountViewsUseCase {
	return &CountViewsUseCase{counter: counter, logger: log}
}

func (uc *CountViewsUseCase) Execute(ctx context.Context, projectID int64) int64 {
	if uc.counter == nil {
		return 0
	}
	n, err := uc.counter.Count(ctx, projectID)
	if err != nil {
		uc.logger.Warn("Failed to read view counter", zap.Int64("project_id", projectID), zap.Error(err))
		return 0
	}
	return n
}

// ProcessViewEventUseCase is run by the worker for each consumed event.
type ProcessViewEventUseCase struct {
	counter service.ViewCounter
	logger  logger.Logger
	backoff func(attempt int) time.Duration
}

func NewProcessViewEventUseCase(counter service.ViewCounter, log logger.Logger) *ProcessViewEventUseCase {
	return &ProcessViewEventUseCase{counter: counter, logger: log, backoff: retryDelay}
}

// retryDelay doubles from one second up to maxRetryDelay.
func retryDelay(attempt int) time.Duration {
	d := time.Second << min(attempt, 5)
	return min(d, maxRetryDelay)
}

func (uc *ProcessViewEventUseCase) Execute(ctx context.Context, evt service.ProjectViewedEvent) error {
	total, err := uc.counter.Increment(ctx, evt.ProjectID)
	if err != nil {
		return fmt.Errorf("increment views for project %d: %w", evt.ProjectID, err)
	}
	uc.logger.Debug("View recorded", zap.Int64("project_id", evt.ProjectID), zap.Int64("total", total))
	return nil
}

// ExecuteUntilDone retries Execute for the same event until it succeeds or
// ctx ends. A nil return means the event may be committed.
func (uc *ProcessViewEventUseCase) ExecuteUntilDone(ctx context.Context, evt service.ProjectViewedEvent) error {
	for attempt := 0; ; attempt++ {
		err := uc.Execute(ctx, evt)
		if err == nil {
			return nil
		}
		delay := uc.backoff(attempt)
		uc.logger.Warn("Failed to process view event, retrying",
			zap.Int64("project_id", evt.ProjectID), zap.Int("attempt", attempt+1),
			zap.Duration("delay", delay), zap.Error(err))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("gave up on view event for project %d: %w", evt.ProjectID, ctx.Err())
		case <-timer.C:
		}
	}
}
