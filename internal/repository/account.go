// Package repository provides the account directory and idempotency stores.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/benx421/moneybox/internal/db"
	"github.com/benx421/moneybox/internal/models"
	"github.com/google/uuid"
)

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	GetAccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	Create(ctx context.Context, account *models.Account) error
}

// accountRepository implements AccountRepository on PostgreSQL
type accountRepository struct {
	db *db.DB
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(database *db.DB) AccountRepository {
	return &accountRepository{db: database}
}

// GetAccountByID retrieves an account and its owner by the account UUID
func (r *accountRepository) GetAccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	query := `
		SELECT a.id, a.balance, a.withdrawn, a.paid_in, a.created_at, a.updated_at,
		       u.id, u.email
		FROM accounts a
		LEFT JOIN users u ON u.id = a.owner_id
		WHERE a.id = $1
	`

	var (
		account    models.Account
		ownerID    uuid.NullUUID
		ownerEmail sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&account.ID,
		&account.Balance,
		&account.Withdrawn,
		&account.PaidIn,
		&account.CreatedAt,
		&account.UpdatedAt,
		&ownerID,
		&ownerEmail,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account by id: %w", err)
	}

	if ownerID.Valid {
		account.Owner = &models.User{ID: ownerID.UUID, Email: ownerEmail.String}
	}

	return &account, nil
}

// Update persists the balance and both counters of the account
func (r *accountRepository) Update(ctx context.Context, account *models.Account) error {
	query := `
		UPDATE accounts
		SET balance = $2,
		    withdrawn = $3,
		    paid_in = $4,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		account.ID,
		account.Balance,
		account.Withdrawn,
		account.PaidIn,
	).Scan(&account.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("account %s: %w", account.ID, models.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	return nil
}

// Create inserts the account, registering its owner by email first when set.
// A zero account ID is replaced with a new UUID.
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}

	var ownerID uuid.NullUUID
	if account.Owner != nil {
		if account.Owner.ID == uuid.Nil {
			account.Owner.ID = uuid.New()
		}

		err := r.db.QueryRowContext(ctx, `
			INSERT INTO users (id, email)
			VALUES ($1, $2)
			ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
			RETURNING id
		`, account.Owner.ID, account.Owner.Email).Scan(&account.Owner.ID)
		if err != nil {
			return fmt.Errorf("failed to create account owner: %w", err)
		}
		ownerID = uuid.NullUUID{UUID: account.Owner.ID, Valid: true}
	}

	query := `
		INSERT INTO accounts (id, owner_id, balance, withdrawn, paid_in)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		account.ID,
		ownerID,
		account.Balance,
		account.Withdrawn,
		account.PaidIn,
	).Scan(&account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}
