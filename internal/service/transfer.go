package service

import (
	"context"

	"github.com/benx421/moneybox/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferService handles transfers between two accounts
type TransferService struct {
	accounts AccountDirectory
	notifier NotificationChannel
}

// NewTransferService creates a new TransferService
func NewTransferService(accounts AccountDirectory, notifier NotificationChannel) *TransferService {
	return &TransferService{
		accounts: accounts,
		notifier: notifier,
	}
}

// Transfer moves amount from one account to another.
//
// The source low-funds notice is sent before the destination pay-in check, so
// it is not withdrawn when that check fails. Both accounts are persisted with
// separate Update calls, source first.
func (s *TransferService) Transfer(
	ctx context.Context,
	fromAccountID, toAccountID uuid.UUID,
	amount decimal.Decimal,
) (from, to *models.Account, err error) {
	from, err = s.accounts.GetAccountByID(ctx, fromAccountID)
	if err != nil {
		return nil, nil, err
	}

	to, err = s.accounts.GetAccountByID(ctx, toAccountID)
	if err != nil {
		return nil, nil, err
	}

	if !from.HasSufficientBalance(amount) {
		return nil, nil, insufficientFunds("insufficient funds to make transfer")
	}

	if from.HasLowFunds() {
		if err = notifyFundsLow(ctx, s.notifier, from); err != nil {
			return nil, nil, err
		}
	}

	if !to.HasSufficientPayInCapacity(amount) {
		return nil, nil, payInLimitReached("account pay in limit reached")
	}

	if to.IsNearPayInLimit(amount) {
		if err = notifyApproachingPayInLimit(ctx, s.notifier, to); err != nil {
			return nil, nil, err
		}
	}

	from.WithdrawFunds(amount)
	to.DepositFunds(amount)

	if err = s.accounts.Update(ctx, from); err != nil {
		return nil, nil, err
	}

	if err = s.accounts.Update(ctx, to); err != nil {
		return nil, nil, err
	}

	return from, to, nil
}
