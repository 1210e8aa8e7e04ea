package services

import (
	"fmt"
	"regexp"

	"github.com/SscSPs/banking_portal/internal/apperrors"
	"github.com/shopspring/decimal"
)

var (
	pinPattern = regexp.MustCompile(`^[0-9]{4}$`)

	cashAmountUnit = decimal.NewFromInt(100)
	maxCashAmount  = decimal.NewFromInt(100000)
)

// ValidateAmount checks an amount for deposit, withdrawal or transfer: positive,
// a whole multiple of 100 and at most 100,000.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than 0", apperrors.ErrInvalidAmount)
	}
	if !amount.Mod(cashAmountUnit).IsZero() {
		return fmt.Errorf("%w: amount must be in multiples of 100", apperrors.ErrInvalidAmount)
	}
	if amount.GreaterThan(maxCashAmount) {
		return fmt.Errorf("%w: amount cannot be greater than 100,000", apperrors.ErrInvalidAmount)
	}
	return nil
}

// ValidatePinFormat checks that pin is exactly four ASCII digits.
func ValidatePinFormat(pin string) error {
	if pin == "" {
		return fmt.Errorf("%w: PIN cannot be empty", apperrors.ErrInvalidPin)
	}
	if !pinPattern.MatchString(pin) {
		return fmt.Errorf("%w: PIN must be 4 digits", apperrors.ErrInvalidPin)
	}
	return nil
}

// ValidateLoanAmount checks a loan principal: positive with at most two decimal places.
func ValidateLoanAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: loan amount must be greater than 0", apperrors.ErrInvalidAmount)
	}
	if !amount.Equal(amount.Truncate(2)) {
		return fmt.Errorf("%w: loan amount cannot have more than two decimal places", apperrors.ErrInvalidAmount)
	}
	return nil
}
