package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account-wide limits. They apply to every account and are not configurable.
var (
	// PayInLimit is the maximum cumulative amount an account may receive
	PayInLimit = decimal.NewFromInt(4000)

	// PayInLimitThreshold is the margin below PayInLimit that triggers an early warning
	PayInLimitThreshold = decimal.NewFromInt(500)

	// LowFundsThreshold is the balance below which the owner is told funds are low
	LowFundsThreshold = decimal.NewFromInt(500)
)

// User is the owner of an account
type User struct {
	ID    uuid.UUID `db:"id"`
	Email string    `db:"email"`
}

// Account holds a balance and the lifetime withdrawn and paid-in counters.
//
// Balance, Withdrawn and PaidIn are only changed through WithdrawFunds and
// DepositFunds. Neither mutator validates its input: callers check the
// matching predicate first.
type Account struct {
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
	Owner     *User           `db:"-"`
	Balance   decimal.Decimal `db:"balance"`
	Withdrawn decimal.Decimal `db:"withdrawn"`
	PaidIn    decimal.Decimal `db:"paid_in"`
	ID        uuid.UUID       `db:"id"`
}

// HasSufficientBalance reports whether the balance is strictly greater than amount
func (a *Account) HasSufficientBalance(amount decimal.Decimal) bool {
	return a.Balance.GreaterThan(amount)
}

// HasLowFunds reports whether the balance is below LowFundsThreshold
func (a *Account) HasLowFunds() bool {
	return a.Balance.LessThan(LowFundsThreshold)
}

// HasSufficientPayInCapacity reports whether depositing amount keeps PaidIn strictly under PayInLimit
func (a *Account) HasSufficientPayInCapacity(amount decimal.Decimal) bool {
	return a.PaidIn.Add(amount).LessThan(PayInLimit)
}

// IsNearPayInLimit reports whether depositing amount takes PaidIn past the warning margin
func (a *Account) IsNearPayInLimit(amount decimal.Decimal) bool {
	return a.PaidIn.Add(amount).GreaterThan(PayInLimit.Sub(PayInLimitThreshold))
}

// WithdrawFunds takes amount off the balance and records it against Withdrawn.
func (a *Account) WithdrawFunds(amount decimal.Decimal) {
	a.Balance = a.Balance.Sub(amount)
	a.Withdrawn = a.Withdrawn.Sub(amount)
}

// DepositFunds adds amount to the balance and to PaidIn.
func (a *Account) DepositFunds(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
	a.PaidIn = a.PaidIn.Add(amount)
}

// NotificationAddress returns the owner's email. ok is false when the account
// has no owner or the owner has no email on file.
func (a *Account) NotificationAddress() (address string, ok bool) {
	if a.Owner == nil || a.Owner.Email == "" {
		return "", false
	}
	return a.Owner.Email, true
}

// Clone returns a copy that shares no pointers with a
func (a *Account) Clone() *Account {
	cp := *a
	if a.Owner != nil {
		owner := *a.Owner
		cp.Owner = &owner
	}
	return &cp
}
