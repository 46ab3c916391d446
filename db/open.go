package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultTimeout is the default timeout applied to a single round trip against the relational store, per the 5s
// default named for DB calls.
const DefaultTimeout = 5 * time.Second

// Open creates a connection pool for the given config and verifies connectivity with a single ping, so that startup
// fails fast rather than lazily on the first query.
//
// NOTE: Unlike the teacher's 'sqlite.Open', there's no need for an initialization barrier here: 'pgxpool.New' doesn't
// touch any process-global C library state, so concurrent calls are already safe.
func Open(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", HandleError(err))
	}

	pingCtx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", HandleError(err))
	}

	return pool, nil
}
