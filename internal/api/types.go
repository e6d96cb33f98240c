package api

import (
	"time"

	"github.com/benx421/moneybox/internal/models"
)

// ErrorCode identifies an error response
type ErrorCode string

// Error codes returned in the error field of an Error body
const (
	ErrorCodeInvalidAmount     ErrorCode = "invalid_amount"
	ErrorCodeInvalidRequest    ErrorCode = "invalid_request"
	ErrorCodeAccountNotFound   ErrorCode = "account_not_found"
	ErrorCodeInsufficientFunds ErrorCode = "insufficient_funds"
	ErrorCodePayInLimitReached ErrorCode = "pay_in_limit_reached"
	ErrorCodeInternalError     ErrorCode = "internal_error"
)

// Error is the body of every non-2xx response
type Error struct {
	Error   ErrorCode `json:"error"`
	Message string    `json:"message"`
}

// HealthStatus is the status field of a HealthResponse
type HealthStatus string

// Health statuses
const (
	Healthy   HealthStatus = "healthy"
	Unhealthy HealthStatus = "unhealthy"
)

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status HealthStatus `json:"status"`
}

// WithdrawalRequest is the body of POST /api/v1/withdrawals
type WithdrawalRequest struct {
	AccountID string `json:"account_id"`
	Amount    string `json:"amount"`
}

// TransferRequest is the body of POST /api/v1/transfers
type TransferRequest struct {
	FromAccountID string `json:"from_account_id"`
	ToAccountID   string `json:"to_account_id"`
	Amount        string `json:"amount"`
}

// Account is the API view of an account
type Account struct {
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	AccountID  string    `json:"account_id"`
	OwnerEmail string    `json:"owner_email,omitempty"`
	Balance    string    `json:"balance"`
	Withdrawn  string    `json:"withdrawn"`
	PaidIn     string    `json:"paid_in"`
}

// WithdrawalResponse is the 200 body of POST /api/v1/withdrawals
type WithdrawalResponse struct {
	Account Account `json:"account"`
}

// TransferResponse is the 200 body of POST /api/v1/transfers
type TransferResponse struct {
	FromAccount Account `json:"from_account"`
	ToAccount   Account `json:"to_account"`
}

// NewAccount converts a domain account to its API view.
// Amounts are rendered with two decimal places.
func NewAccount(account *models.Account) Account {
	view := Account{
		AccountID: account.ID.String(),
		Balance:   account.Balance.StringFixed(2),
		Withdrawn: account.Withdrawn.StringFixed(2),
		PaidIn:    account.PaidIn.StringFixed(2),
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
	if address, ok := account.NotificationAddress(); ok {
		view.OwnerEmail = address
	}
	return view
}
