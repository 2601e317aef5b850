// Package portfolio is the read side of the site. Nothing above it ever sees
// a database error: faults are logged here and turned into nil or empty
// results so pages can fall back to placeholder copy.
package portfolio

import (
	"context"

	"go.uber.org/zap"

	"github.com/gobindapaudel/portfolio/internal/domain/profile"
	"github.com/gobindapaudel/portfolio/internal/domain/project"
	"github.com/gobindapaudel/portfolio/pkg/apperror"
	"github.com/gobindapaudel/portfolio/pkg/logger"
)

type Reader struct {
	profileRepo profile.Repository
	projectRepo project.Repository
	logger      logger.Logger
}

func NewReader(profileRepo profile.Repository, projectRepo project.Repository, log logger.Logger) *Reader {
	return &Reader{
		profileRepo: profileRepo,
		projectRepo: projectRepo,
		logger:      log,
	}
}

// GetProfile returns the latest profile, or nil.
func (r *Reader) GetProfile(ctx context.Context) *profile.Profile {
	p, err := r.profileRepo.Latest(ctx)
	if err != nil {
		r.logFault("Error fetching profile", err)
		return nil
	}
	return p
}

// GetAllProjects returns every project, newest completion first. Never nil.
func (r *Reader) GetAllProjects(ctx context.Context) []*project.Project {
	projects, err := r.projectRepo.ListByCompletion(ctx)
	if err != nil {
		r.logFault("Error fetching projects", err)
		return []*project.Project{}
	}
	if projects == nil {
		return []*project.Project{}
	}
	return projects
}

// GetProjectByID returns the project with the given id, or nil.
func (r *Reader) GetProjectByID(ctx context.Context, id int64) *project.Project {
	p, err := r.projectRepo.FindByID(ctx, id)
	if err != nil {
		r.logFault("Error fetching project", err, zap.Int64("project_id", id))
		return nil
	}
	return p
}

func (r *Reader) logFault(msg string, err error, fields ...zap.Field) {
	if apperror.IsNotFound(err) {
		r.logger.Info(msg+": not found", fields...)
		return
	}
	r.logger.Error(msg, err, fields...)
}
