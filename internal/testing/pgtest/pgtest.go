// Package pgtest starts a throwaway PostgreSQL container for integration tests.
package pgtest

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	image    = "postgres:15-alpine"
	dbName   = "growroom_test"
	user     = "testuser"
	password = "testpass"
)

// Start runs a container and returns its connection string. The test is
// skipped when Docker is unavailable; the container is terminated on cleanup.
func Start(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	var (
		container *postgres.PostgresContainer
		err       error
	)

	func() {
		// testcontainers panics when no Docker daemon is reachable
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test, docker unavailable: %v", r)
			}
		}()
		container, err = postgres.Run(ctx,
			image,
			postgres.WithDatabase(dbName),
			postgres.WithUsername(user),
			postgres.WithPassword(password),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
	}()
	if err != nil {
		t.Skipf("Skipping integration test, failed to start postgres: %v", err)
	}

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}
	return connStr
}
