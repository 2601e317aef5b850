package event

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobindapaudel/portfolio/internal/application/service"
	"github.com/gobindapaudel/portfolio/internal/config"
	"github.com/gobindapaudel/portfolio/pkg/apperror"
	"github.com/gobindapaudel/portfolio/pkg/logger"
)

func TestNewViewEventPublisherWithoutBrokers(t *testing.T) {
	pub := NewViewEventPublisher(config.KafkaConfig{}, logger.NewNopLogger())
	require.IsType(t, NoopPublisher{}, pub)
	assert.NoError(t, pub.PublishProjectViewed(context.Background(), service.ProjectViewedEvent{ProjectID: 1}))
}

func TestNewViewEventPublisherWithBrokers(t *testing.T) {
	pub := NewViewEventPublisher(config.KafkaConfig{Brokers: []string{"localhost:9092"}}, logger.NewNopLogger())
	client, ok := pub.(*KafkaProducerClient)
	require.True(t, ok)
	assert.Equal(t, TopicViewEvents, client.ViewEventsWriter.Topic)
	assert.NoError(t, client.Close())
}

func TestDecodeProjectViewed(t *testing.T) {
	viewedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	raw, err := json.Marshal(service.ProjectViewedEvent{ProjectID: 42, ViewedAt: viewedAt})
	require.NoError(t, err)

	evt, err := DecodeProjectViewed(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(42), evt.ProjectID)
	assert.True(t, viewedAt.Equal(evt.ViewedAt))

	_, err = DecodeProjectViewed([]byte(`not json`))
	assert.Error(t, err)

	_, err = DecodeProjectViewed([]byte(`{"project_id":0}`))
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}
