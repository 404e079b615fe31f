// Package db provides database connection management for PostgreSQL.
// It uses pgx as the database driver for better performance and features.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tirecatalog/src/infra/config"
)

// Postgres wraps a lazily-created pgx connection pool.
//
// Construction performs no I/O: the pool is built and pinged on first use,
// then reused for the life of the process. This matters on serverless hosts,
// where an instance may serve one invocation or thousands, and paying the
// connection handshake at import time on every cold start is the dominant
// cost. A failed initialization leaves the pool absent so a later request
// can retry.
//
// The pool is the only process-wide shared resource. Each query acquires a
// connection and releases it before returning, on success and failure alike,
// so sequential requests within one instance can reuse it safely.
type Postgres struct {
	cfg config.DatabaseConfig
	log *slog.Logger

	mu   sync.Mutex
	pool *pgxpool.Pool
}

// New creates a Postgres handle without connecting. The first query, ping,
// or migration triggers pool creation.
func New(cfg config.DatabaseConfig, log *slog.Logger) *Postgres {
	return &Postgres{
		cfg: cfg,
		log: log,
	}
}

// acquirePool returns the shared pool, creating and verifying it on first use.
func (p *Postgres) acquirePool(ctx context.Context) (*pgxpool.Pool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pool != nil {
		return p.pool, nil
	}

	poolCfg, err := pgxpool.ParseConfig(p.cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// Narrow ceiling, no idle floor: the host caps concurrency per instance,
	// so reuse settings matter more than pool width.
	poolCfg.MaxConns = int32(p.cfg.MaxOpenConns)
	poolCfg.MinConns = 0
	poolCfg.MaxConnLifetime = p.cfg.ConnMaxLifetime
	poolCfg.MaxConnIdleTime = p.cfg.ConnMaxIdleTime
	poolCfg.ConnConfig.ConnectTimeout = p.cfg.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	p.log.Info("database connection established",
		"host", p.cfg.Host,
		"port", p.cfg.Port,
		"database", p.cfg.Name,
	)

	p.pool = pool
	return pool, nil
}

// Query runs a parameterized query, drawing a connection from the pool.
// The connection returns to the pool when the rows are closed, or
// immediately on error. Errors propagate unchanged; there are no retries.
func (p *Postgres) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	pool, err := p.acquirePool(ctx)
	if err != nil {
		return nil, err
	}
	return pool.Query(ctx, sql, args...)
}

// QueryRow runs a parameterized query expected to produce at most one row.
// Errors, including pool initialization failure and pgx.ErrNoRows for the
// empty case, surface from the returned row's Scan.
func (p *Postgres) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	pool, err := p.acquirePool(ctx)
	if err != nil {
		return errRow{err: err}
	}
	return pool.QueryRow(ctx, sql, args...)
}

// Exec runs a parameterized statement and reports the command result.
func (p *Postgres) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	pool, err := p.acquirePool(ctx)
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return pool.Exec(ctx, sql, args...)
}

// Health checks if the database is reachable.
// Returns nil if healthy, error otherwise.
func (p *Postgres) Health(ctx context.Context) error {
	pool, err := p.acquirePool(ctx)
	if err != nil {
		return err
	}
	return pool.Ping(ctx)
}

// Close closes the connection pool if one was created.
// The standalone server calls this during graceful shutdown; the function
// entrypoint never does, and the pool is abandoned on process teardown.
func (p *Postgres) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
		p.log.Info("database connection closed")
	}
}

// errRow defers a pool initialization failure to the Scan call, matching
// the pgx.Row contract.
type errRow struct {
	err error
}

func (r errRow) Scan(dest ...any) error {
	return r.err
}
