package profile

import (
	"context"
	"strings"
	"time"
)

// Copy shown when no profile row is available.
const (
	FallbackName     = "Sarah Chen"
	FallbackTitle    = "Full-Stack Developer & Designer"
	FallbackBio      = "I craft beautiful, scalable web applications with a focus on user experience and clean code."
	FallbackImageURL = "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400&h=400&fit=crop"
	FallbackBrand    = "MyPortfolio"
	FallbackSiteName = "Portfolio"

	DefaultSiteURL = "https://gobindapoudel.com.np"
)

type Profile struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Title           string    `json:"title"`
	Bio             string    `json:"bio"`
	Email           string    `json:"email"`
	LinkedInURL     *string   `json:"linkedin_url"`
	GitHubURL       *string   `json:"github_url"`
	ProfileImageURL *string   `json:"profile_image_url"`
	WebsiteURL      *string   `json:"website_url"`
	CVURL           *string   `json:"cv_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// FirstName is the first word of Name, used where space is tight.
func (p *Profile) FirstName() string {
	fields := strings.Fields(p.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// SiteURL picks the public base URL: explicit override, then the profile's
// website, then DefaultSiteURL. The result never has a trailing slash.
func SiteURL(override string, p *Profile) string {
	url := override
	if url == "" && p != nil {
		url = Deref(p.WebsiteURL)
	}
	if url == "" {
		url = DefaultSiteURL
	}
	return strings.TrimRight(url, "/")
}

// Deref returns "" for a nil pointer.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type Repository interface {
	// Latest returns the most recently created profile.
	Latest(ctx context.Context) (*Profile, error)
}
