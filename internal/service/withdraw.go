// Package service implements the money-movement use-cases on top of the
// account directory and notification collaborators.
package service

import (
	"context"

	"github.com/benx421/moneybox/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WithdrawService handles single-account withdrawals
type WithdrawService struct {
	accounts AccountDirectory
	notifier NotificationChannel
}

// NewWithdrawService creates a new WithdrawService
func NewWithdrawService(accounts AccountDirectory, notifier NotificationChannel) *WithdrawService {
	return &WithdrawService{
		accounts: accounts,
		notifier: notifier,
	}
}

// Withdraw takes amount out of the account and persists it.
//
// The low-funds notice is driven by the balance before the withdrawal is
// applied. Directory and notifier errors are returned unchanged.
func (s *WithdrawService) Withdraw(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (*models.Account, error) {
	account, err := s.accounts.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if !account.HasSufficientBalance(amount) {
		return nil, insufficientFunds("insufficient funds to make withdrawal")
	}

	if account.HasLowFunds() {
		if err := notifyFundsLow(ctx, s.notifier, account); err != nil {
			return nil, err
		}
	}

	account.WithdrawFunds(amount)

	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}
