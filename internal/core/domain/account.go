package domain

import (
	"github.com/SscSPs/banking_portal/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Account is a customer's cash account. Its balance only moves through the
// ledger operations, each of which records exactly one Transaction.
type Account struct {
	AccountNumber string          `json:"accountNumber"` // Primary Key, system generated
	UserID        string          `json:"userID"`        // FK -> users.user_id
	Balance       decimal.Decimal `json:"balance"`       // Never negative
	PinHash       string          `json:"-"`             // Empty until a PIN is created
	AuditFields
}

// HasPin reports whether a PIN digest has been stored for the account.
func (a *Account) HasPin() bool {
	return a.PinHash != ""
}

// Credit adds amount to the balance.
func (a *Account) Credit(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
}

// Debit subtracts amount from the balance, refusing to take it below zero.
func (a *Account) Debit(amount decimal.Decimal) error {
	if a.Balance.LessThan(amount) {
		return apperrors.ErrInsufficientBalance
	}
	a.Balance = a.Balance.Sub(amount)
	return nil
}
