package service

import (
	"context"
	"time"

	"github.com/gobindapaudel/portfolio/internal/domain/profile"
	"github.com/gobindapaudel/portfolio/internal/domain/project"
)

// HomeSnapshot is the data the home page is rendered from, in database order.
type HomeSnapshot struct {
	Profile  *profile.Profile   `json:"profile"`
	Projects []*project.Project `json:"projects"`
}

// HomeSnapshotCache holds the last home snapshot until it is due for revalidation.
// A miss is reported as (nil, nil).
type HomeSnapshotCache interface {
	Load(ctx context.Context) (*HomeSnapshot, error)
	Store(ctx context.Context, snap *HomeSnapshot, ttl time.Duration) error
}

// ViewCounter keeps per-project view totals.
type ViewCounter interface {
	Increment(ctx context.Context, projectID int64) (int64, error)
	Count(ctx context.Context, projectID int64) (int64, error)
}
