package storage

import (
	"context"
	"fmt"
	"os"
)

// HealthChecker is implemented by backends that can lose their connection
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// CheckHealth pings the store when it supports it. Backends without a
// health check are always healthy.
func CheckHealth(ctx context.Context, s Store) error {
	if hc, ok := s.(HealthChecker); ok {
		return hc.CheckHealth(ctx)
	}
	return nil
}

func (s *PostgresStore) CheckHealth(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *SQLiteStore) CheckHealth(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

func (s *FileStore) CheckHealth(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(s.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.dir)
	}
	return nil
}

func (s *CachedStore) CheckHealth(ctx context.Context) error {
	return CheckHealth(ctx, s.inner)
}
