package service

import (
	"github.com/shopspring/decimal"
)

// MaxAmountPlaces is the number of decimal places an amount may carry
const MaxAmountPlaces = 2

// ValidateAmount checks that amount is positive and has at most
// MaxAmountPlaces decimal places.
//
// The use-cases accept any amount; callers at the API boundary apply this
// before invoking them.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return invalidAmount("invalid amount: must be greater than 0")
	}

	if !amount.Equal(amount.Round(MaxAmountPlaces)) {
		return invalidAmount("invalid amount: at most 2 decimal places")
	}

	return nil
}
