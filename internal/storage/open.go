package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/GrowRoom_Go/internal/database"
)

// Options selects and configures a backend
type Options struct {
	Backend     string
	Path        string // directory for file, database file for sqlite
	PostgresURL string
	MaxConns    int
	CacheSize   int // 0 disables the cache
	CacheTTL    time.Duration
}

// Open builds the configured backend, wrapped in a CachedStore when
// CacheSize > 0. The Postgres backend runs migrations first.
func Open(ctx context.Context, opts Options) (Store, error) {
	var (
		store Store
		err   error
	)

	switch opts.Backend {
	case BackendMemory:
		store = NewMemoryStore()
	case BackendFile:
		store, err = NewFileStore(opts.Path)
	case BackendSQLite:
		store, err = NewSQLiteStore(opts.Path)
	case BackendPostgres:
		store, err = openPostgres(ctx, opts)
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownBackend, opts.Backend)
	}
	if err != nil {
		return nil, err
	}

	if opts.CacheSize > 0 {
		store = NewCachedStore(store, opts.CacheSize, opts.CacheTTL)
	}
	return store, nil
}

func openPostgres(ctx context.Context, opts Options) (Store, error) {
	if err := database.Migrate(ctx, opts.PostgresURL); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgMigrateFailed, err)
	}
	pool, err := database.NewPool(ctx, opts.PostgresURL, opts.MaxConns, time.Minute, 30*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenFailed, err)
	}
	return NewPostgresStore(pool), nil
}
