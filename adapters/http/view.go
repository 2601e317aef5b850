package http

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gobindapaudel/portfolio/internal/domain/profile"
	"github.com/gobindapaudel/portfolio/internal/domain/project"
	"github.com/gobindapaudel/portfolio/internal/domain/theme"
)

const (
	fallbackPageTitle       = "Portfolio website"
	fallbackPageDescription = "Personal portfolio website"
	notFoundPageTitle       = "Project Not Found"
	defaultOGImage          = "/default-og.jpg"

	cardPlaceholderImage   = "/placeholder.svg?height=300&width=400&query=project"
	detailPlaceholderImage = "/placeholder.svg?height=600&width=1000&query=project"

	maxCardTags = 3
)

type themeView struct {
	Preference string
	Mode       string
	Dark       bool
	Mounted    bool
	Next       string
}

func newThemeView(s theme.Snapshot) themeView {
	return themeView{
		Preference: string(s.Preference),
		Mode:       string(s.Mode),
		Dark:       s.IsDark(),
		Mounted:    s.Mounted,
		Next:       string(s.Preference.Next()),
	}
}

// pageView carries what the shared head, navbar and footer need.
type pageView struct {
	Title       string
	Description string
	Keywords    string
	SiteURL     string
	Canonical   string
	OGType      string
	OGImage     string
	Theme       themeView

	Brand      string
	BrandShort string
	OwnerName  string
	OwnerTitle string
	SinceYear  int
	Year       int
}

func newPageView(c *gin.Context, owner *profile.Profile, siteURL string) pageView {
	base := profile.SiteURL(siteURL, owner)
	v := pageView{
		Title:       fallbackPageTitle,
		Description: fallbackPageDescription,
		SiteURL:     base,
		Canonical:   base + c.Request.URL.Path,
		OGType:      "website",
		OGImage:     defaultOGImage,
		Theme:       newThemeView(themeSnapshot(c)),
		Brand:       profile.FallbackBrand,
		BrandShort:  profile.FallbackBrand,
		OwnerName:   profile.FallbackSiteName,
		SinceYear:   2024,
		Year:        time.Now().Year(),
	}
	if owner != nil {
		v.Title = owner.Name + " - " + owner.Title
		v.Description = owner.Bio
		v.Keywords = strings.Join([]string{"developer", "designer", "portfolio", strings.ToLower(owner.Title)}, ", ")
		if img := profile.Deref(owner.ProfileImageURL); img != "" {
			v.OGImage = img
		}
		v.Brand = owner.Name
		if first := owner.FirstName(); first != "" {
			v.BrandShort = first
		}
		v.OwnerName = owner.Name
		v.OwnerTitle = owner.Title
	}
	return v
}

type heroView struct {
	Name        string
	Title       string
	Bio         string
	ImageURL    string
	ImageAlt    string
	Email       string
	LinkedInURL string
	GitHubURL   string
	CVURL       string
}

func newHeroView(owner *profile.Profile) heroView {
	if owner == nil {
		return heroView{
			Name:     profile.FallbackName,
			Title:    profile.FallbackTitle,
			Bio:      profile.FallbackBio,
			ImageURL: profile.FallbackImageURL,
			ImageAlt: "Profile",
		}
	}
	h := heroView{
		Name:        orDefault(owner.Name, profile.FallbackName),
		Title:       orDefault(owner.Title, profile.FallbackTitle),
		Bio:         orDefault(owner.Bio, profile.FallbackBio),
		ImageURL:    orDefault(profile.Deref(owner.ProfileImageURL), profile.FallbackImageURL),
		ImageAlt:    orDefault(owner.Name, "Profile"),
		Email:       owner.Email,
		LinkedInURL: profile.Deref(owner.LinkedInURL),
		GitHubURL:   profile.Deref(owner.GitHubURL),
		CVURL:       profile.Deref(owner.CVURL),
	}
	return h
}

type contactView struct {
	Email       string
	LinkedInURL string
	GitHubURL   string
	CVURL       string
}

// newContactView is nil without a profile; the section is then omitted.
func newContactView(owner *profile.Profile) *contactView {
	if owner == nil {
		return nil
	}
	return &contactView{
		Email:       owner.Email,
		LinkedInURL: profile.Deref(owner.LinkedInURL),
		GitHubURL:   profile.Deref(owner.GitHubURL),
		CVURL:       profile.Deref(owner.CVURL),
	}
}

type projectCardView struct {
	ID       int64
	Title    string
	Summary  string
	ImageURL string
	Tags     []string
	MoreTags int
	Year     int
}

func newProjectCardView(p *project.Project) projectCardView {
	tags := p.TagList()
	v := projectCardView{
		ID:       p.ID,
		Title:    p.Title,
		Summary:  p.Summary(),
		ImageURL: orDefault(profile.Deref(p.ImageURL), cardPlaceholderImage),
		Tags:     tags,
		Year:     p.Year(),
	}
	if len(tags) > maxCardTags {
		v.Tags = tags[:maxCardTags]
		v.MoreTags = len(tags) - maxCardTags
	}
	return v
}

type sortOptionView struct {
	Value    string
	Label    string
	Selected bool
}

func newSortOptionViews(selected project.SortOption) []sortOptionView {
	opts := make([]sortOptionView, 0, len(project.SortOptions))
	for _, o := range project.SortOptions {
		opts = append(opts, sortOptionView{Value: string(o), Label: o.Label(), Selected: o == selected})
	}
	return opts
}

type homeView struct {
	pageView
	Hero        heroView
	Projects    []projectCardView
	Sort        string
	SortOptions []sortOptionView
	Contact     *contactView
}

type projectDetailView struct {
	pageView
	ID          int64
	ProjectName string
	Body        string
	ImageURL    string
	Completed   string
	Tags        []string
	LiveURL     string
	DemoURL     string
	GitHubURL   string
}

func newProjectDetailView(page pageView, owner *profile.Profile, p *project.Project) projectDetailView {
	name := profile.FallbackSiteName
	if owner != nil && owner.Name != "" {
		name = owner.Name
	}
	page.Title = p.Title + " - " + name
	page.Description = p.Description
	page.OGType = "article"
	page.OGImage = orDefault(profile.Deref(p.ImageURL), page.OGImage)

	v := projectDetailView{
		pageView:    page,
		ID:          p.ID,
		ProjectName: p.Title,
		Body:        p.Description,
		ImageURL:    orDefault(profile.Deref(p.ImageURL), detailPlaceholderImage),
		Tags:        p.TagList(),
		LiveURL:     profile.Deref(p.LiveURL),
		DemoURL:     profile.Deref(p.DemoURL),
		GitHubURL:   profile.Deref(p.GitHubURL),
	}
	if p.DateCompleted != nil {
		v.Completed = p.DateCompleted.Format("January 2, 2006")
	}
	return v
}

type errorView struct {
	pageView
	Status  int
	Message string
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
