package service

import (
	"context"

	"github.com/benx421/moneybox/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// AccountDirectory resolves accounts by ID and persists their full state.
//
// GetAccountByID returns an error wrapping models.ErrNotFound when no such
// account exists.
type AccountDirectory interface {
	GetAccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	Update(ctx context.Context, account *models.Account) error
}

// NotificationChannel delivers notices to an owner's address
type NotificationChannel interface {
	NotifyFundsLow(ctx context.Context, address string) error
	NotifyApproachingPayInLimit(ctx context.Context, address string) error
}

// Withdrawer handles single-account withdrawals
type Withdrawer interface {
	Withdraw(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (*models.Account, error)
}

// Transferrer handles transfers between two accounts
type Transferrer interface {
	Transfer(ctx context.Context, fromAccountID, toAccountID uuid.UUID, amount decimal.Decimal) (from, to *models.Account, err error)
}

// AccountGetter handles account lookups
type AccountGetter interface {
	GetAccount(ctx context.Context, accountID uuid.UUID) (*models.Account, error)
}

// Ensure concrete types implement interfaces
var (
	_ Withdrawer    = (*WithdrawService)(nil)
	_ Transferrer   = (*TransferService)(nil)
	_ AccountGetter = (*AccountService)(nil)
)
