package db

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/benx421/moneybox/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_UnreachableDatabase(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:           "127.0.0.1",
		Port:           "1",
		User:           "postgres",
		Password:       "postgres",
		DBName:         "moneybox",
		SSLMode:        "disable",
		MaxOpenConns:   1,
		MaxIdleConns:   1,
		ConnectTimeout: 500 * time.Millisecond,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	database, err := Connect(context.Background(), cfg, logger)

	assert.Error(t, err)
	assert.Nil(t, database)
}

func TestMigrate_IsRepeatable(t *testing.T) {
	database := ConnectForTest(t)
	ctx := context.Background()

	require.NoError(t, database.Migrate(ctx), "migrations must be safe to apply twice")

	for _, table := range []string{"users", "accounts", "idempotency_keys"} {
		var exists bool
		err := database.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)`, table,
		).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, "table %s", table)
	}
}
