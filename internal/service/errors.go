package service

import (
	"fmt"

	"github.com/benx421/moneybox/internal/models"
)

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeInvalidAmount     = "invalid_amount"
	ErrCodeInsufficientFunds = "insufficient_funds"
	ErrCodePayInLimitReached = "pay_in_limit_reached"
)

func invalidAmount(message string) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeInvalidAmount,
		Message: message,
	}
}

func insufficientFunds(message string) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeInsufficientFunds,
		Message: message,
		Err:     models.ErrInsufficientFunds,
	}
}

func payInLimitReached(message string) *ServiceError {
	return &ServiceError{
		Code:    ErrCodePayInLimitReached,
		Message: message,
		Err:     models.ErrPayInLimitReached,
	}
}
