package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portfolioUC "github.com/gobindapaudel/portfolio/internal/application/usecase/portfolio"
	"github.com/gobindapaudel/portfolio/pkg/apperror"
	"github.com/gobindapaudel/portfolio/pkg/logger"
)

type ProfileHandler struct {
	reader *portfolioUC.Reader
	logger logger.Logger
}

func NewProfileHandler(reader *portfolioUC.Reader, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		reader: reader,
		logger: log,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	p := h.reader.GetProfile(c.Request.Context())
	if p == nil {
		c.Error(apperror.NewNotFound("profile", "latest"))
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(p))
}
