package http

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gobindapaudel/portfolio/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type Handlers struct {
	Page    *PageHandler
	Profile *ProfileHandler
	Project *ProjectHandler
	RSS     *RSSHandler
	Theme   *ThemeHandler
}

func loadTemplates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.html")
}

func NewRouter(h Handlers, log logger.Logger) (*gin.Engine, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(
		RequestID(),
		AccessLog(log),
		ErrorMiddleware(log),
		Recovery(log),
		SecurityHeaders(),
		ThemeMiddleware(log),
	)

	router.StaticFS("/static", http.FS(static))
	router.GET("/placeholder.svg", func(c *gin.Context) {
		c.FileFromFS("placeholder.svg", http.FS(static))
	})
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

	router.GET("/", h.Page.Home)
	router.GET("/projects/:id", h.Page.ProjectDetail)
	router.POST("/theme/toggle", h.Theme.Toggle)
	router.GET("/rss.xml", h.RSS.GenerateRSS)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
		api.GET("/profile", h.Profile.GetProfile)
		api.GET("/theme", h.Theme.GetTheme)
		api.POST("/theme/toggle", h.Theme.ToggleAPI)

		projects := api.Group("/projects")
		{
			projects.GET("", h.Project.ListProjects)
			projects.GET("/:id", h.Project.GetProject)
			projects.GET("/:id/views", h.Project.GetProjectViews)
		}
	}

	router.NoRoute(h.Page.NotFound)
	return router, nil
}
