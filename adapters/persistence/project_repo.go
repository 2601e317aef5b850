package persistence

import (
	"context"
	"errors"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/gobindapaudel/portfolio/internal/domain/project"
	"github.com/gobindapaudel/portfolio/pkg/apperror"
	"github.com/gobindapaudel/portfolio/pkg/logger"
	"github.com/gobindapaudel/portfolio/pkg/tracing"
)

var projectColumns = []string{
	"id", "title", "description", "short_description",
	"image_url", "live_url", "demo_url", "github_url",
	"tags", "date_completed", "created_at", "updated_at",
}

type postgresProjectRepo struct {
	db     DBTX
	logger logger.Logger
}

func NewPostgresProjectRepo(db DBTX, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

func scanProject(row pgx.Row) (*project.Project, error) {
	p := &project.Project{}
	var tags *string

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.ShortDescription,
		&p.ImageURL,
		&p.LiveURL,
		&p.DemoURL,
		&p.GitHubURL,
		&tags,
		&p.DateCompleted,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if tags != nil {
		p.Tags = *tags
	}
	return p, nil
}

func scanProjects(rows pgx.Rows) ([]*project.Project, error) {
	defer rows.Close()
	projects := make([]*project.Project, 0)

	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan project row", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func (r *postgresProjectRepo) ListByCompletion(ctx context.Context) (projects []*project.Project, err error) {
	ctx, span := tracing.StartSpan(ctx, "projects.ListByCompletion")
	defer func() {
		span.SetAttributes(attribute.Int("projects.count", len(projects)))
		tracing.EndSpan(span, err)
	}()

	query, args, err := psql.Select(projectColumns...).
		From("projects").
		OrderBy("date_completed DESC NULLS LAST", "id DESC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list projects query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
	}
	return scanProjects(rows)
}

func (r *postgresProjectRepo) FindByID(ctx context.Context, id int64) (p *project.Project, err error) {
	ctx, span := tracing.StartSpan(ctx, "projects.FindByID",
		trace.WithAttributes(attribute.Int64("project.id", id)))
	defer func() {
		if apperror.IsNotFound(err) {
			tracing.EndSpan(span, nil)
			return
		}
		tracing.EndSpan(span, err)
	}()

	query, args, err := psql.Select(projectColumns...).
		From("projects").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build find project query", err)
	}

	p, err = scanProject(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("project", strconv.FormatInt(id, 10))
		}
		return nil, apperror.NewInternal("failed to query project by id", err)
	}
	return p, nil
}
