package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/gobindapaudel/portfolio/internal/domain/profile"
	"github.com/gobindapaudel/portfolio/pkg/apperror"
	"github.com/gobindapaudel/portfolio/pkg/logger"
	"github.com/gobindapaudel/portfolio/pkg/tracing"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var profileColumns = []string{
	"id", "name", "title", "bio", "email",
	"linkedin_url", "github_url", "profile_image_url", "website_url", "cv_url",
	"created_at", "updated_at",
}

type postgresProfileRepo struct {
	db     DBTX
	logger logger.Logger
}

func NewPostgresProfileRepo(db DBTX, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

func (r *postgresProfileRepo) Latest(ctx context.Context) (p *profile.Profile, err error) {
	ctx, span := tracing.StartSpan(ctx, "portfolio_profile.Latest")
	defer func() {
		if apperror.IsNotFound(err) {
			tracing.EndSpan(span, nil)
			return
		}
		tracing.EndSpan(span, err)
	}()

	query, args, err := psql.Select(profileColumns...).
		From("portfolio_profile").
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build latest profile query", err)
	}

	p = &profile.Profile{}
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&p.ID,
		&p.Name,
		&p.Title,
		&p.Bio,
		&p.Email,
		&p.LinkedInURL,
		&p.GitHubURL,
		&p.ProfileImageURL,
		&p.WebsiteURL,
		&p.CVURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", "latest")
		}
		return nil, apperror.NewInternal("failed to query portfolio profile", err)
	}
	return p, nil
}
