package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/gobindapaudel/portfolio/adapters/event"
	"github.com/gobindapaudel/portfolio/adapters/persistence"
	viewsUC "github.com/gobindapaudel/portfolio/internal/application/usecase/views"
	"github.com/gobindapaudel/portfolio/internal/config"
	"github.com/gobindapaudel/portfolio/pkg/logger"
)

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	if err != nil {
		appLogger.Fatal("cannot load config", err)
	}
	appLogger.Info("Starting portfolio view worker...")

	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Fatal("Kafka brokers not configured", nil)
	}

	// Redis
	redisClient, err := persistence.NewRedisClient(cfg.Redis, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	if redisClient == nil {
		appLogger.Fatal("Redis address not configured", nil)
	}
	defer redisClient.Close()

	// Worker Use Case
	processViewEventUC := viewsUC.NewProcessViewEventUseCase(persistence.NewRedisViewCounter(redisClient), appLogger)

	// Kafka Consumer
	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicViewEvents,
		GroupID:  event.ViewCounterGroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicViewEvents))

	for {
		msg, err := consumer.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				break
			}
			appLogger.Error("Failed to read message from Kafka", err)
			time.Sleep(time.Second)
			continue
		}

		evt, err := event.DecodeProjectViewed(msg.Value)
		if err != nil {
			appLogger.Warn("Skipping malformed view event",
				zap.Int64("offset", msg.Offset), zap.ByteString("key", msg.Key), zap.Error(err))
			commitMessage(ctx, consumer, msg, appLogger)
			continue
		}

		// Offsets only move forward once the increment has landed.
		if err := processViewEventUC.ExecuteUntilDone(ctx, evt); err != nil {
			appLogger.Error("Failed to process view event", err, zap.Int64("project_id", evt.ProjectID))
			break
		}

		commitMessage(ctx, consumer, msg, appLogger)
	}

	appLogger.Info("Worker stopped")
}

func commitMessage(ctx context.Context, consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(ctx, msg); err != nil {
		log.Error("Failed to commit message", err)
	}
}
