package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portfolioUC "github.com/gobindapaudel/portfolio/internal/application/usecase/portfolio"
	viewsUC "github.com/gobindapaudel/portfolio/internal/application/usecase/views"
	"github.com/gobindapaudel/portfolio/internal/domain/profile"
	"github.com/gobindapaudel/portfolio/internal/domain/project"
	"github.com/gobindapaudel/portfolio/pkg/apperror"
	"github.com/gobindapaudel/portfolio/pkg/logger"
)

type PageHandler struct {
	homeUseCase       *portfolioUC.HomeUseCase
	reader            *portfolioUC.Reader
	recordViewUseCase *viewsUC.RecordViewUseCase
	siteURL           string
	logger            logger.Logger
}

func NewPageHandler(
	homeUC *portfolioUC.HomeUseCase,
	reader *portfolioUC.Reader,
	recordViewUC *viewsUC.RecordViewUseCase,
	siteURL string,
	log logger.Logger,
) *PageHandler {
	return &PageHandler{
		homeUseCase:       homeUC,
		reader:            reader,
		recordViewUseCase: recordViewUC,
		siteURL:           siteURL,
		logger:            log,
	}
}

func (h *PageHandler) Home(c *gin.Context) {
	sortBy := project.ParseSortOption(c.Query("sort"))
	out := h.homeUseCase.Execute(c.Request.Context(), portfolioUC.HomeInput{Sort: sortBy})

	cards := make([]projectCardView, len(out.Projects))
	for i, p := range out.Projects {
		cards[i] = newProjectCardView(p)
	}

	c.HTML(http.StatusOK, "home.html", homeView{
		pageView:    newPageView(c, out.Profile, h.siteURL),
		Hero:        newHeroView(out.Profile),
		Projects:    cards,
		Sort:        string(out.Sort),
		SortOptions: newSortOptionViews(out.Sort),
		Contact:     newContactView(out.Profile),
	})
}

func (h *PageHandler) ProjectDetail(c *gin.Context) {
	ctx := c.Request.Context()
	owner := h.reader.GetProfile(ctx)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.renderNotFound(c, owner)
		return
	}

	p := h.reader.GetProjectByID(ctx, id)
	if p == nil {
		h.renderNotFound(c, owner)
		return
	}

	if h.recordViewUseCase != nil {
		h.recordViewUseCase.Execute(ctx, p.ID)
	}
	c.HTML(http.StatusOK, "project.html", newProjectDetailView(newPageView(c, owner, h.siteURL), owner, p))
}

// NotFound handles unmatched routes.
func (h *PageHandler) NotFound(c *gin.Context) {
	if isAPIRequest(c) {
		_ = c.Error(apperror.NewNotFound("route", c.Request.URL.Path))
		return
	}
	h.renderNotFound(c, h.reader.GetProfile(c.Request.Context()))
}

func (h *PageHandler) renderNotFound(c *gin.Context, owner *profile.Profile) {
	page := newPageView(c, owner, h.siteURL)
	page.Title = notFoundPageTitle
	c.HTML(http.StatusNotFound, "not_found.html", page)
}
