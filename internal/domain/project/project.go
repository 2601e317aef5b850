package project

import (
	"context"
	"strings"
	"time"
)

type Project struct {
	ID               int64      `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	ShortDescription *string    `json:"short_description"`
	ImageURL         *string    `json:"image_url"`
	LiveURL          *string    `json:"live_url"`
	DemoURL          *string    `json:"demo_url"`
	GitHubURL        *string    `json:"github_url"`
	Tags             string     `json:"tags"`
	DateCompleted    *time.Time `json:"date_completed"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// TagList splits the comma-joined tags column. Blank entries are dropped.
func (p *Project) TagList() []string {
	if strings.TrimSpace(p.Tags) == "" {
		return []string{}
	}
	parts := strings.Split(p.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Summary prefers the short description.
func (p *Project) Summary() string {
	if p.ShortDescription != nil && *p.ShortDescription != "" {
		return *p.ShortDescription
	}
	return p.Description
}

// Year returns the completion year, or 0 when undated.
func (p *Project) Year() int {
	if p.DateCompleted == nil {
		return 0
	}
	return p.DateCompleted.Year()
}

type Repository interface {
	// ListByCompletion returns every project, newest completion first, undated last.
	ListByCompletion(ctx context.Context) ([]*Project, error)
	FindByID(ctx context.Context, id int64) (*Project, error)
}
