package main

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/gobindapaudel/portfolio/internal/config"
	"github.com/gobindapaudel/portfolio/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type seedProject struct {
	title, description, short, tags string
	liveURL, githubURL               *string
	completed                        *time.Time
}

func ptr[T any](v T) *T { return &v }

func day(y int, m time.Month, d int) *time.Time {
	return ptr(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func main() {
	cfg, err := config.LoadConfig()
	log := logger.NewZapLogger(cfg.App.Env)
	defer log.Sync()
	if err != nil {
		log.Fatal("cannot load config", err)
	}
	log.Info("adding sample portfolio into database...")

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DB.ConnString())
	if err != nil {
		log.Fatal("cannot connect DB", err)
	}
	defer pool.Close()

	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		query, args, err := psql.Insert("portfolio_profile").
			Columns("name", "title", "bio", "email", "linkedin_url", "github_url", "website_url").
			Values(
				"Gobinda Paudel",
				"Web Developer",
				"I build fast, accessible web applications and the services behind them.",
				"hello@gobindapoudel.com.np",
				"https://www.linkedin.com/in/gobindapaudel",
				"https://github.com/gobindapaudel",
				"https://gobindapoudel.com.np",
			).ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return err
		}

		projects := []seedProject{
			{
				title:       "Voltanex",
				description: "Home energy monitor that streams solar and battery readings to a web dashboard.",
				short:       "Solar and battery monitoring dashboard.",
				tags:        "Arduino, Raspberry Pi, Go, PostgreSQL",
				githubURL:   ptr("https://github.com/gobindapaudel/voltanex"),
				completed:   day(2024, 8, 15),
			},
			{
				title:       "EduCare",
				description: "School management portal covering attendance, grading and parent messaging.",
				tags:        "Next.js, TypeScript, Neon",
				liveURL:     ptr("https://educare.example.com"),
				completed:   day(2023, 11, 2),
			},
			{
				title:       "Portfolio",
				description: "This site.",
				tags:        "Go, Gin, Redis",
			},
		}

		insert := psql.Insert("projects").
			Columns("title", "description", "short_description", "tags", "live_url", "github_url", "date_completed")
		for _, p := range projects {
			var short *string
			if p.short != "" {
				short = ptr(p.short)
			}
			insert = insert.Values(p.title, p.description, short, p.tags, p.liveURL, p.githubURL, p.completed)
		}
		query, args, err = insert.ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Fatal("cannot seed portfolio", err)
	}

	log.Info("seeded portfolio successfully", zap.Int("projects", 3))
}
