package http

import (
	"github.com/gin-gonic/gin"

	feedUC "github.com/gobindapaudel/portfolio/internal/application/usecase/feed"
	"github.com/gobindapaudel/portfolio/pkg/logger"
)

type RSSHandler struct {
	rssUseCase *feedUC.RSSUseCase
	logger     logger.Logger
}

func NewRSSHandler(uc *feedUC.RSSUseCase, log logger.Logger) *RSSHandler {
	return &RSSHandler{
		rssUseCase: uc,
		logger:     log,
	}
}

func (h *RSSHandler) GenerateRSS(c *gin.Context) {
	feed := h.rssUseCase.Execute(c.Request.Context())

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")
	if err := feed.WriteRss(c.Writer); err != nil {
		h.logger.Error("Failed to write RSS feed to response", err)
	}
}
