package service

import (
	"context"

	"github.com/benx421/moneybox/internal/models"
	"github.com/google/uuid"
)

// AccountService handles account lookups
type AccountService struct {
	accounts AccountDirectory
}

// NewAccountService creates a new AccountService
func NewAccountService(accounts AccountDirectory) *AccountService {
	return &AccountService{accounts: accounts}
}

// GetAccount retrieves an account by ID
func (s *AccountService) GetAccount(ctx context.Context, accountID uuid.UUID) (*models.Account, error) {
	return s.accounts.GetAccountByID(ctx, accountID)
}
