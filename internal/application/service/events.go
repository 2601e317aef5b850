package service

import (
	"context"
	"time"
)

type ProjectViewedEvent struct {
	ProjectID int64     `json:"project_id"`
	ViewedAt  time.Time `json:"viewed_at"`
}

type ViewEventPublisher interface {
	PublishProjectViewed(ctx context.Context, event ProjectViewedEvent) error
}
