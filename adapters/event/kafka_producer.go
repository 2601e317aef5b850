package event

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/gobindapaudel/portfolio/internal/application/service"
	"github.com/gobindapaudel/portfolio/internal/config"
	"github.com/gobindapaudel/portfolio/pkg/apperror"
	"github.com/gobindapaudel/portfolio/pkg/logger"
)

const (
	TopicViewEvents = "view.events"

	ViewCounterGroupID = "project-view-counter"
)

var errInvalidProjectID = apperror.NewInvalidInput("view event without a valid project_id", nil)

type KafkaProducerClient struct {
	ViewEventsWriter *kafka.Writer
	logger           logger.Logger
}

// NewViewEventPublisher returns a Kafka-backed publisher, or a no-op one when
// no brokers are configured.
func NewViewEventPublisher(cfg config.KafkaConfig, log logger.Logger) service.ViewEventPublisher {
	if len(cfg.Brokers) == 0 {
		log.Info("Kafka disabled, view events will not be published")
		return NoopPublisher{}
	}
	return NewKafkaProducerClient(cfg, log)
}

func NewKafkaProducerClient(cfg config.KafkaConfig, log logger.Logger) *KafkaProducerClient {
	viewWriter := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  TopicViewEvents,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka Producers successfully.", zap.Strings("brokers", cfg.Brokers))

	return &KafkaProducerClient{
		ViewEventsWriter: viewWriter,
		logger:           log,
	}
}

// PublishProjectViewed keys messages by project id so a project's views stay
// on one partition.
func (c *KafkaProducerClient) PublishProjectViewed(ctx context.Context, evt service.ProjectViewedEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return c.ViewEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(evt.ProjectID, 10)),
		Value: payload,
		Time:  evt.ViewedAt,
	})
}

func (c *KafkaProducerClient) Close() error {
	if c.ViewEventsWriter == nil {
		return nil
	}
	err := c.ViewEventsWriter.Close()
	c.logger.Info("Closed Kafka Producers")
	return err
}

type NoopPublisher struct{}

func (NoopPublisher) PublishProjectViewed(context.Context, service.ProjectViewedEvent) error {
	return nil
}

// DecodeProjectViewed parses a message value from TopicViewEvents.
func DecodeProjectViewed(value []byte) (service.ProjectViewedEvent, error) {
	var evt service.ProjectViewedEvent
	if err := json.Unmarshal(value, &evt); err != nil {
		return evt, err
	}
	if evt.ProjectID <= 0 {
		return evt, errInvalidProjectID
	}
	return evt, nil
}
