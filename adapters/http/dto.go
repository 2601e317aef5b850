package http

import (
	"time"

	"github.com/gobindapaudel/portfolio/internal/domain/profile"
	"github.com/gobindapaudel/portfolio/internal/domain/project"
	"github.com/gobindapaudel/portfolio/internal/domain/theme"
)

// Profile DTOs
type ProfileDTO struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Title           string    `json:"title"`
	Bio             string    `json:"bio"`
	Email           string    `json:"email"`
	LinkedInURL     *string   `json:"linkedin_url,omitempty"`
	GitHubURL       *string   `json:"github_url,omitempty"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
	WebsiteURL      *string   `json:"website_url,omitempty"`
	CVURL           *string   `json:"cv_url,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	return ProfileDTO{
		ID:              p.ID,
		Name:            p.Name,
		Title:           p.Title,
		Bio:             p.Bio,
		Email:           p.Email,
		LinkedInURL:     p.LinkedInURL,
		GitHubURL:       p.GitHubURL,
		ProfileImageURL: p.ProfileImageURL,
		WebsiteURL:      p.WebsiteURL,
		CVURL:           p.CVURL,
		UpdatedAt:       p.UpdatedAt,
	}
}

// Project DTOs
type ProjectSummaryDTO struct {
	ID               int64    `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"short_description"`
	ImageURL         *string  `json:"image_url,omitempty"`
	Tags             []string `json:"tags"`
	DateCompleted    *string  `json:"date_completed,omitempty"`
}

type ProjectDTO struct {
	ProjectSummaryDTO
	Description string    `json:"description"`
	LiveURL     *string   `json:"live_url,omitempty"`
	DemoURL     *string   `json:"demo_url,omitempty"`
	GitHubURL   *string   `json:"github_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToProjectSummaryDTO(p *project.Project) ProjectSummaryDTO {
	dto := ProjectSummaryDTO{
		ID:               p.ID,
		Title:            p.Title,
		ShortDescription: p.Summary(),
		ImageURL:         p.ImageURL,
		Tags:             p.TagList(),
	}
	if p.DateCompleted != nil {
		d := p.DateCompleted.Format(time.DateOnly)
		dto.DateCompleted = &d
	}
	return dto
}

func ToProjectDTO(p *project.Project) ProjectDTO {
	return ProjectDTO{
		ProjectSummaryDTO: ToProjectSummaryDTO(p),
		Description:       p.Description,
		LiveURL:           p.LiveURL,
		DemoURL:           p.DemoURL,
		GitHubURL:         p.GitHubURL,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

type ProjectViewsDTO struct {
	ProjectID int64 `json:"project_id"`
	Views     int64 `json:"views"`
}

// Theme DTOs
type ThemeDTO struct {
	Preference theme.Preference `json:"preference"`
	Mode       theme.Mode       `json:"mode"`
	Next       theme.Preference `json:"next"`
}

func ToThemeDTO(s theme.Snapshot) ThemeDTO {
	return ThemeDTO{
		Preference: s.Preference,
		Mode:       s.Mode,
		Next:       s.Preference.Next(),
	}
}
