package db

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/benx421/moneybox/internal/config"
)

// ConnectForTest connects using the environment configuration and skips the
// test when no database is reachable.
func ConnectForTest(t *testing.T) *DB {
	t.Helper()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	database, err := Connect(context.Background(), &cfg.Database, logger)
	if err != nil {
		t.Skipf("postgres not available: %v", err)
	}

	t.Cleanup(func() {
		_ = database.Close() //nolint:errcheck // test cleanup
	})

	return database
}
