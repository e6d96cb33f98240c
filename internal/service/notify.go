package service

import (
	"context"

	"github.com/benx421/moneybox/internal/models"
)

// notifyFundsLow is a no-op when the account has no address on file.
func notifyFundsLow(ctx context.Context, notifier NotificationChannel, account *models.Account) error {
	address, ok := account.NotificationAddress()
	if !ok {
		return nil
	}
	return notifier.NotifyFundsLow(ctx, address)
}

func notifyApproachingPayInLimit(ctx context.Context, notifier NotificationChannel, account *models.Account) error {
	address, ok := account.NotificationAddress()
	if !ok {
		return nil
	}
	return notifier.NotifyApproachingPayInLimit(ctx, address)
}
