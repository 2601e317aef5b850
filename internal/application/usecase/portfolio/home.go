package portfolio

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/gobindapaudel/portfolio/internal/application/service"
	"github.com/gobindapaudel/portfolio/internal/domain/profile"
	"github.com/gobindapaudel/portfolio/internal/domain/project"
	"github.com/gobindapaudel/portfolio/pkg/logger"
)

// HomeUseCase assembles the home page data. When a snapshot cache is
// configured, a stored snapshot is served until its TTL runs out.
type HomeUseCase struct {
	reader *Reader
	cache  service.HomeSnapshotCache
	ttl    time.Duration
	logger logger.Logger
}

// NewHomeUseCase accepts a nil cache, in which case every call reads through.
func NewHomeUseCase(reader *Reader, cache service.HomeSnapshotCache, ttl time.Duration, log logger.Logger) *HomeUseCase {
	return &HomeUseCase{
		reader: reader,
		cache:  cache,
		ttl:    ttl,
		logger: log,
	}
}

type HomeInput struct {
	Sort project.SortOption
}

type HomeOutput struct {
	Profile  *profile.Profile
	Projects []*project.Project
	Sort     project.SortOption
}

func (uc *HomeUseCase) Execute(ctx context.Context, input HomeInput) *HomeOutput {
	sortBy := input.Sort
	if sortBy == "" {
		sortBy = project.DefaultSort
	}

	snap := uc.snapshot(ctx)
	return &HomeOutput{
		Profile:  snap.Profile,
		Projects: project.Sort(snap.Projects, sortBy),
		Sort:     sortBy,
	}
}

func (uc *HomeUseCase) snapshot(ctx context.Context) *service.HomeSnapshot {
	if uc.cache != nil {
		cached, err := uc.cache.Load(ctx)
		if err != nil {
			uc.logger.Warn("Home snapshot cache unavailable, reading through", zap.Error(err))
		} else if cached != nil {
			if cached.Projects == nil {
				cached.Projects = []*project.Project{}
			}
			return cached
		}
	}

	snap := &service.HomeSnapshot{
		Profile:  uc.reader.GetProfile(ctx),
		Projects: uc.reader.GetAllProjects(ctx),
	}

	// Degraded reads (no profile) are never cached.
	if uc.cache != nil && snap.Profile != nil && uc.ttl > 0 {
		if err := uc.cache.Store(ctx, snap, uc.ttl); err != nil {
			uc.logger.Warn("Failed to store home snapshot", zap.Error(err))
		}
	}
	return snap
}
