package models

import "errors"

// Domain errors returned by repositories and services
var (
	// ErrNotFound indicates the requested entity was not found
	ErrNotFound = errors.New("not found")

	// ErrInsufficientFunds indicates the balance does not cover the requested amount
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrPayInLimitReached indicates a deposit would take the account to or past PayInLimit
	ErrPayInLimitReached = errors.New("pay in limit reached")
)
