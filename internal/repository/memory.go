package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/benx421/moneybox/internal/models"
	"github.com/google/uuid"
)

var _ AccountRepository = (*MemoryAccountRepository)(nil)

// MemoryAccountRepository keeps accounts in process memory.
//
// Accounts are copied on the way in and out, so a caller holding an account
// never shares state with the repository or with other callers. The mutex
// protects the map only; it does not serialize a caller's load-modify-update.
type MemoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*models.Account
	now      func() time.Time
}

// NewMemoryAccountRepository creates an empty MemoryAccountRepository
func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{
		accounts: make(map[uuid.UUID]*models.Account),
		now:      time.Now,
	}
}

// GetAccountByID returns a copy of the stored account
func (r *MemoryAccountRepository) GetAccountByID(_ context.Context, id uuid.UUID) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", id, models.ErrNotFound)
	}
	return account.Clone(), nil
}

// Update replaces the stored account with a copy of account
func (r *MemoryAccountRepository) Update(_ context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.accounts[account.ID]
	if !ok {
		return fmt.Errorf("account %s: %w", account.ID, models.ErrNotFound)
	}

	account.CreatedAt = stored.CreatedAt
	account.UpdatedAt = r.now()
	r.accounts[account.ID] = account.Clone()
	return nil
}

// Create stores a new account. A zero account ID is replaced with a new UUID.
func (r *MemoryAccountRepository) Create(_ context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	if _, exists := r.accounts[account.ID]; exists {
		return fmt.Errorf("account %s already exists", account.ID)
	}
	if account.Owner != nil && account.Owner.ID == uuid.Nil {
		account.Owner.ID = uuid.New()
	}

	now := r.now()
	account.CreatedAt = now
	account.UpdatedAt = now
	r.accounts[account.ID] = account.Clone()
	return nil
}

// PingContext always succeeds; it lets the memory store stand in as a health checker.
func (r *MemoryAccountRepository) PingContext(_ context.Context) error {
	return nil
}
