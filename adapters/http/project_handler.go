package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portfolioUC "github.com/gobindapaudel/portfolio/internal/application/usecase/portfolio"
	viewsUC "github.com/gobindapaudel/portfolio/internal/application/usecase/views"
	"github.com/gobindapaudel/portfolio/internal/domain/project"
	"github.com/gobindapaudel/portfolio/pkg/apperror"
	"github.com/gobindapaudel/portfolio/pkg/logger"
)

type ProjectHandler struct {
	reader            *portfolioUC.Reader
	countViewsUseCase *viewsUC.CountViewsUseCase
	logger            logger.Logger
}

func NewProjectHandler(reader *portfolioUC.Reader, countViewsUC *viewsUC.CountViewsUseCase, log logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		reader:            reader,
		countViewsUseCase: countViewsUC,
		logger:            log,
	}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	sortBy := project.ParseSortOption(c.Query("sort"))
	projects := project.Sort(h.reader.GetAllProjects(c.Request.Context()), sortBy)

	dtos := make([]ProjectSummaryDTO, len(projects))
	for i, p := range projects {
		dtos[i] = ToProjectSummaryDTO(p)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := parseProjectID(c)
	if err != nil {
		c.Error(err)
		return
	}
	p := h.reader.GetProjectByID(c.Request.Context(), projectID)
	if p == nil {
		c.Error(apperror.NewNotFound("project", c.Param("id")))
		return
	}
	c.JSON(http.StatusOK, ToProjectDTO(p))
}

func (h *ProjectHandler) GetProjectViews(c *gin.Context) {
	projectID, err := parseProjectID(c)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ProjectViewsDTO{
		ProjectID: projectID,
		Views:     h.countViewsUseCase.Execute(c.Request.Context(), projectID),
	})
}

func parseProjectID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperror.NewInvalidInput("invalid project ID", err)
	}
	return id, nil
}
