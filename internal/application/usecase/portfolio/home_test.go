package portfolio

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobindapaudel/portfolio/internal/application/service"
	"github.com/gobindapaudel/portfolio/internal/domain/profile"
	"github.com/gobindapaudel/portfolio/internal/domain/project"
	"github.com/gobindapaudel/portfolio/pkg/logger"
)

type fakeHomeCache struct {
	snap     *service.HomeSnapshot
	loadErr  error
	stored   int
	lastTTL  time.Duration
	storeErr error
}

func (f *fakeHomeCache) Load(context.Context) (*service.HomeSnapshot, error) {
	return f.snap, f.loadErr
}

func (f *fakeHomeCache) Store(_ context.Context, snap *service.HomeSnapshot, ttl time.Duration) error {
	f.stored++
	f.lastTTL = ttl
	if f.storeErr != nil {
		return f.storeErr
	}
	f.snap = snap
	return nil
}

func homeFixture() (*fakeProfileRepo, *fakeProjectRepo) {
	return &fakeProfileRepo{profile: &profile.Profile{ID: 1, Name: "Gobinda Paudel"}},
		&fakeProjectRepo{projects: []*project.Project{
			{ID: 1, Title: "Beta", DateCompleted: date(2024, 1, 1)},
			{ID: 2, Title: "Alpha", DateCompleted: date(2023, 1, 1)},
		}}
}

func titles(projects []*project.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Title)
	}
	return out
}

func TestHomeUseCaseWithoutCache(t *testing.T) {
	profiles, projects := homeFixture()
	uc := NewHomeUseCase(NewReader(profiles, projects, logger.NewNopLogger()), nil, time.Hour, logger.NewNopLogger())

	out := uc.Execute(context.Background(), HomeInput{})
	assert.Equal(t, project.DefaultSort, out.Sort)
	assert.Equal(t, "Gobinda Paudel", out.Profile.Name)
	assert.Equal(t, []string{"Beta", "Alpha"}, titles(out.Projects))

	out = uc.Execute(context.Background(), HomeInput{Sort: project.SortTitleAsc})
	assert.Equal(t, []string{"Alpha", "Beta"}, titles(out.Projects))
	assert.Equal(t, 2, projects.calls)
}

func TestHomeUseCaseServesSnapshotUntilExpiry(t *testing.T) {
	profiles, projects := homeFixture()
	cache := &fakeHomeCache{}
	uc := NewHomeUseCase(NewReader(profiles, projects, logger.NewNopLogger()), cache, time.Hour, logger.NewNopLogger())
	ctx := context.Background()

	uc.Execute(ctx, HomeInput{})
	require.Equal(t, 1, cache.stored)
	assert.Equal(t, time.Hour, cache.lastTTL)

	out := uc.Execute(ctx, HomeInput{Sort: project.SortDateAsc})
	assert.Equal(t, 1, profiles.calls)
	assert.Equal(t, 1, projects.calls)
	assert.Equal(t, []string{"Alpha", "Beta"}, titles(out.Projects))
	assert.Equal(t, []string{"Beta", "Alpha"}, titles(cache.snap.Projects))
}

func TestHomeUseCaseDoesNotCacheFallback(t *testing.T) {
	_, projects := homeFixture()
	cache := &fakeHomeCache{}
	profiles := &fakeProfileRepo{err: errors.New("db down")}
	uc := NewHomeUseCase(NewReader(profiles, projects, logger.NewNopLogger()), cache, time.Hour, logger.NewNopLogger())

	out := uc.Execute(context.Background(), HomeInput{})
	assert.Nil(t, out.Profile)
	assert.Zero(t, cache.stored)
}

func TestHomeUseCaseReadsThroughOnCacheFailure(t *testing.T) {
	profiles, projects := homeFixture()
	cache := &fakeHomeCache{loadErr: errors.New("redis down"), storeErr: errors.New("redis down")}
	uc := NewHomeUseCase(NewReader(profiles, projects, logger.NewNopLogger()), cache, time.Hour, logger.NewNopLogger())

	out := uc.Execute(context.Background(), HomeInput{})
	assert.Equal(t, "Gobinda Paudel", out.Profile.Name)
	assert.Len(t, out.Projects, 2)
	assert.Equal(t, 1, cache.stored)
}
