package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/benx421/moneybox/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Demo account IDs are fixed so local clients can target them across restarts
var (
	DemoAccountAliceID = uuid.MustParse("6b3b1b8e-6f0a-4c39-9d0e-1f6c1d2a0a01")
	DemoAccountBobID   = uuid.MustParse("6b3b1b8e-6f0a-4c39-9d0e-1f6c1d2a0a02")
	DemoAccountCarolID = uuid.MustParse("6b3b1b8e-6f0a-4c39-9d0e-1f6c1d2a0a03")
)

// DemoAccounts returns fresh copies of the accounts used for local runs.
// Carol has no owner, so her notices are skipped.
func DemoAccounts() []*models.Account {
	return []*models.Account{
		{
			ID:      DemoAccountAliceID,
			Owner:   &models.User{Email: "alice@example.com"},
			Balance: decimal.RequireFromString("1000.00"),
		},
		{
			ID:      DemoAccountBobID,
			Owner:   &models.User{Email: "bob@example.com"},
			Balance: decimal.RequireFromString("450.00"),
			PaidIn:  decimal.RequireFromString("3500.00"),
		},
		{
			ID:      DemoAccountCarolID,
			Balance: decimal.RequireFromString("250.00"),
		},
	}
}

// SeedDemoAccounts creates any demo account that does not exist yet
func SeedDemoAccounts(ctx context.Context, repo AccountRepository, logger *slog.Logger) error {
	for _, account := range DemoAccounts() {
		_, err := repo.GetAccountByID(ctx, account.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("failed to check demo account %s: %w", account.ID, err)
		}

		if err := repo.Create(ctx, account); err != nil {
			return fmt.Errorf("failed to seed demo account %s: %w", account.ID, err)
		}
		logger.Info("seeded demo account",
			"account_id", account.ID,
			"balance", account.Balance.StringFixed(2),
		)
	}
	return nil
}
