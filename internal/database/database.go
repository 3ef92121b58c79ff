package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the subset of *pgxpool.Pool used by health checks and shutdown.
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// PoolOptions tunes the connection pool. Zero values keep pgx defaults.
type PoolOptions struct {
	MaxConns    int
	MaxIdleTime time.Duration
	MaxLifetime time.Duration
}

// NewPool connects to PostgreSQL and pings before returning.
func NewPool(ctx context.Context, connString string, opts PoolOptions) (*pgxpool.Pool, error) {
	config, err := poolConfig(connString, opts)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Info(LogMsgSuccessfullyConnectedToDatabase,
		"host", config.ConnConfig.Host,
		"database", config.ConnConfig.Database,
		"max_conns", config.MaxConns)
	return pool, nil
}

func poolConfig(connString string, opts PoolOptions) (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	if opts.MaxConns > 0 {
		config.MaxConns = int32(min(opts.MaxConns, math.MaxInt32))
	}
	if config.MaxConns > DefaultMinConnections {
		config.MinConns = DefaultMinConnections
	}
	if opts.MaxIdleTime > 0 {
		config.MaxConnIdleTime = opts.MaxIdleTime
	}
	if opts.MaxLifetime > 0 {
		config.MaxConnLifetime = opts.MaxLifetime
	}
	return config, nil
}
