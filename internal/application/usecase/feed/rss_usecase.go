package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/feeds"
	"go.uber.org/zap"

	"github.com/gobindapaudel/portfolio/internal/application/usecase/portfolio"
	"github.com/gobindapaudel/portfolio/internal/domain/profile"
	"github.com/gobindapaudel/portfolio/pkg/logger"
)

type RSSUseCase struct {
	reader  *portfolio.Reader
	siteURL string
	logger  logger.Logger
	now     func() time.Time
}

// NewRSSUseCase takes the configured site URL override, which may be empty.
func NewRSSUseCase(reader *portfolio.Reader, siteURL string, log logger.Logger) *RSSUseCase {
	return &RSSUseCase{
		reader:  reader,
		siteURL: siteURL,
		logger:  log,
		now:     time.Now,
	}
}

func (uc *RSSUseCase) Execute(ctx context.Context) *feeds.Feed {
	uc.logger.Debug("Generating RSS feed...")

	owner := uc.reader.GetProfile(ctx)
	base := profile.SiteURL(uc.siteURL, owner)

	name := profile.FallbackSiteName
	description := profile.FallbackBio
	feed := &feeds.Feed{
		Link:    &feeds.Link{Href: base},
		Created: uc.now(),
	}
	if owner != nil {
		name = owner.Name
		description = owner.Bio
		feed.Author = &feeds.Author{Name: owner.Name, Email: owner.Email}
	}
	feed.Title = name + " - Projects"
	feed.Description = description

	projects := uc.reader.GetAllProjects(ctx)
	feed.Items = make([]*feeds.Item, 0, len(projects))
	for _, p := range projects {
		link := fmt.Sprintf("%s/projects/%d", base, p.ID)
		item := &feeds.Item{
			Id:          link,
			Title:       p.Title,
			Link:        &feeds.Link{Href: link},
			Description: p.Summary(),
			Created:     p.CreatedAt,
			Updated:     p.UpdatedAt,
		}
		if p.DateCompleted != nil {
			item.Created = *p.DateCompleted
		}
		feed.Items = append(feed.Items, item)
	}

	uc.logger.Debug("RSS feed generated successfully", zap.Int("item_count", len(feed.Items)))
	return feed
}
