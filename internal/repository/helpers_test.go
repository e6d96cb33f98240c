package repository

import (
	"context"
	"testing"

	"github.com/benx421/moneybox/internal/db"
	"github.com/shopspring/decimal"
)

func setupTestDB(t *testing.T) *db.DB {
	t.Helper()
	return db.ConnectForTest(t)
}

func truncateTables(t *testing.T, database *db.DB) {
	t.Helper()

	tables := []string{"idempotency_keys", "accounts", "users"}
	for _, table := range tables {
		_, err := database.ExecContext(context.Background(), "TRUNCATE TABLE "+table+" CASCADE")
		if err != nil {
			t.Fatalf("failed to truncate table %s: %v", table, err)
		}
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
