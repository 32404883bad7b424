package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"turfbot/pkg/logger"
)

// NewPool creates a pgx connection pool for PostgreSQL.
func NewPool(ctx context.Context, dsn string, log logger.Logger) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	log.Info(ctx, "postgres connected", logger.String("host", pool.Config().ConnConfig.Host))
	return pool, nil
}
