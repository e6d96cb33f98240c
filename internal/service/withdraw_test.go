package service

import (
	"context"
	"errors"
	"testing"

	"github.com/benx421/moneybox/internal/models"
	"github.com/benx421/moneybox/internal/service/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestAccount(balance, paidIn, email string) *models.Account {
	account := &models.Account{
		ID:      uuid.New(),
		Balance: dec(balance),
		PaidIn:  dec(paidIn),
	}
	if email != "" {
		account.Owner = &models.User{ID: uuid.New(), Email: email}
	}
	return account
}

func balanceIs(want string) any {
	return mock.MatchedBy(func(a *models.Account) bool {
		return a.Balance.Equal(dec(want))
	})
}

func TestWithdrawService_Withdraw(t *testing.T) {
	t.Run("successful withdrawal", func(t *testing.T) {
		mockDirectory := mocks.NewMockAccountDirectory(t)
		mockNotifier := mocks.NewMockNotificationChannel(t)
		service := NewWithdrawService(mockDirectory, mockNotifier)
		ctx := context.Background()

		account := newTestAccount("1000", "0", "owner@example.com")

		mockDirectory.On("GetAccountByID", ctx, account.ID).Return(account, nil).Once()
		mockDirectory.On("Update", ctx, balanceIs("950")).Return(nil).Once()

		result, err := service.Withdraw(ctx, account.ID, dec("50"))

		require.NoError(t, err)
		assert.True(t, dec("950").Equal(result.Balance))
		assert.True(t, dec("-50").Equal(result.Withdrawn))
		mockNotifier.AssertNotCalled(t, "NotifyFundsLow", mock.Anything, mock.Anything)
	})

	t.Run("low funds notification before withdrawal", func(t *testing.T) {
		mockDirectory := mocks.NewMockAccountDirectory(t)
		mockNotifier := mocks.NewMockNotificationChannel(t)
		service := NewWithdrawService(mockDirectory, mockNotifier)
		ctx := context.Background()

		account := newTestAccount("450", "0", "owner@example.com")

		mockDirectory.On("GetAccountByID", ctx, account.ID).Return(account, nil).Once()
		notify := mockNotifier.On("NotifyFundsLow", ctx, "owner@example.com").Return(nil).Once()
		mockDirectory.On("Update", ctx, balanceIs("400")).Return(nil).Once().NotBefore(notify)

		result, err := service.Withdraw(ctx, account.ID, dec("50"))

		require.NoError(t, err)
		assert.True(t, dec("400").Equal(result.Balance))
	})

	t.Run("no notification when the withdrawal takes the balance under the threshold", func(t *testing.T) {
		mockDirectory := mocks.NewMockAccountDirectory(t)
		mockNotifier := mocks.NewMockNotificationChannel(t)
		service := NewWithdrawService(mockDirectory, mockNotifier)
		ctx := context.Background()

		account := newTestAccount("600", "0", "owner@example.com")

		mockDirectory.On("GetAccountByID", ctx, account.ID).Return(account, nil).Once()
		mockDirectory.On("Update", ctx, balanceIs("100")).Return(nil).Once()

		_, err := service.Withdraw(ctx, account.ID, dec("500"))

		require.NoError(t, err)
		mockNotifier.AssertNotCalled(t, "NotifyFundsLow", mock.Anything, mock.Anything)
	})

	t.Run("low funds without an owner skips notification", func(t *testing.T) {
		mockDirectory := mocks.NewMockAccountDirectory(t)
		mockNotifier := mocks.NewMockNotificationChannel(t)
		service := NewWithdrawService(mockDirectory, mockNotifier)
		ctx := context.Background()

		account := newTestAccount("450", "0", "")

		mockDirectory.On("GetAccountByID", ctx, account.ID).Return(account, nil).Once()
		mockDirectory.On("Update", ctx, balanceIs("400")).Return(nil).Once()

		_, err := service.Withdraw(ctx, account.ID, dec("50"))

		require.NoError(t, err)
		mockNotifier.AssertNotCalled(t, "NotifyFundsLow", mock.Anything, mock.Anything)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		mockDirectory := mocks.NewMockAccountDirectory(t)
		mockNotifier := mocks.NewMockNotificationChannel(t)
		service := NewWithdrawService(mockDirectory, mockNotifier)
		ctx := context.Background()

		account := newTestAccount("25", "0", "owner@example.com")

		mockDirectory.On("GetAccountByID", ctx, account.ID).Return(account, nil).Once()

		result, err := service.Withdraw(ctx, account.ID, dec("50"))

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, models.ErrInsufficientFunds)

		var svcErr *ServiceError
		if assert.ErrorAs(t, err, &svcErr) {
			assert.Equal(t, ErrCodeInsufficientFunds, svcErr.Code)
		}

		assert.True(t, dec("25").Equal(account.Balance))
		mockDirectory.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		mockNotifier.AssertNotCalled(t, "NotifyFundsLow", mock.Anything, mock.Anything)
	})

	t.Run("amount equal to balance is rejected", func(t *testing.T) {
		mockDirectory := mocks.NewMockAccountDirectory(t)
		service := NewWithdrawService(mockDirectory, mocks.NewMockNotificationChannel(t))
		ctx := context.Background()

		account := newTestAccount("50", "0", "owner@example.com")

		mockDirectory.On("GetAccountByID", ctx, account.ID).Return(account, nil).Once()

		_, err := service.Withdraw(ctx, account.ID, dec("50"))

		assert.ErrorIs(t, err, models.ErrInsufficientFunds)
		mockDirectory.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("account not found is returned unchanged", func(t *testing.T) {
		mockDirectory := mocks.NewMockAccountDirectory(t)
		service := NewWithdrawService(mockDirectory, mocks.NewMockNotificationChannel(t))
		ctx := context.Background()

		accountID := uuid.New()
		lookupErr := errors.New("lookup failed")

		mockDirectory.On("GetAccountByID", ctx, accountID).Return(nil, lookupErr).Once()

		result, err := service.Withdraw(ctx, accountID, dec("50"))

		assert.Nil(t, result)
		assert.Same(t, lookupErr, err)
	})

	t.Run("notification failure aborts before persisting", func(t *testing.T) {
		mockDirectory := mocks.NewMockAccountDirectory(t)
		mockNotifier := mocks.NewMockNotificationChannel(t)
		service := NewWithdrawService(mockDirectory, mockNotifier)
		ctx := context.Background()

		account := newTestAccount("450", "0", "owner@example.com")
		notifyErr := errors.New("smtp unavailable")

		mockDirectory.On("GetAccountByID", ctx, account.ID).Return(account, nil).Once()
		mockNotifier.On("NotifyFundsLow", ctx, "owner@example.com").Return(notifyErr).Once()

		_, err := service.Withdraw(ctx, account.ID, dec("50"))

		assert.Same(t, notifyErr, err)
		assert.True(t, dec("450").Equal(account.Balance))
		mockDirectory.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("persistence failure is returned unchanged", func(t *testing.T) {
		mockDirectory := mocks.NewMockAccountDirectory(t)
		service := NewWithdrawService(mockDirectory, mocks.NewMockNotificationChannel(t))
		ctx := context.Background()

		account := newTestAccount("1000", "0", "owner@example.com")
		updateErr := errors.New("connection reset")

		mockDirectory.On("GetAccountByID", ctx, account.ID).Return(account, nil).Once()
		mockDirectory.On("Update", ctx, account).Return(updateErr).Once()

		result, err := service.Withdraw(ctx, account.ID, dec("50"))

		assert.Nil(t, result)
		assert.Same(t, updateErr, err)
	})
}
