package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/gobindapaudel/portfolio/internal/config"
	"github.com/gobindapaudel/portfolio/pkg/logger"
)

// DBTX is the read surface the repositories need. *pgxpool.Pool satisfies it.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const pingTimeout = 5 * time.Second

// NewPostgresPool builds the pool once at start-up. A failed ping is only
// logged: the pool keeps dialing on demand and reads degrade until the
// database comes back.
func NewPostgresPool(cfg config.DBConfig, log logger.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, fmt.Errorf("do not create connection pool: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		log.Warn("PostgreSQL not reachable yet, serving fallback content until it is",
			zap.String("host", poolCfg.ConnConfig.Host), zap.Error(err))
		return pool, nil
	}

	log.Info("Connect PostgreSQL successfully.", zap.String("host", poolCfg.ConnConfig.Host))
	return pool, nil
}

// unavailableDB fails every query with the error that prevented the pool
// from being built.
type unavailableDB struct {
	err error
}

func NewUnavailableDB(err error) DBTX {
	return unavailableDB{err: err}
}

func (u unavailableDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, u.err
}

func (u unavailableDB) QueryRow(context.Context, string, ...any) pgx.Row {
	return errRow{err: u.err}
}

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error {
	return r.err
}
