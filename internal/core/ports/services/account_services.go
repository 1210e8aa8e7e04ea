package services

import (
	"context"

	"github.com/SscSPs/banking_portal/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccount retrieves the account with the given number.
	GetAccount(ctx context.Context, accountNumber string) (*domain.Account, error)

	// IsPinCreated reports whether the account has a PIN.
	IsPinCreated(ctx context.Context, accountNumber string) (bool, error)

	// ListTransactions lists transactions touching the account, newest first.
	ListTransactions(ctx context.Context, accountNumber string, limit int, offset int) ([]domain.Transaction, error)
}

// AccountPinSvc defines PIN management operations.
type AccountPinSvc interface {
	// CreatePin stores the first PIN of an account after verifying the owner's password.
	CreatePin(ctx context.Context, accountNumber string, password string, pin string) error

	// UpdatePin replaces the PIN after verifying the old PIN and the owner's password.
	UpdatePin(ctx context.Context, accountNumber string, oldPin string, password string, newPin string) error
}

// AccountLedgerSvc defines the balance-changing operations. Each one records
// exactly one transaction, which is returned on success.
type AccountLedgerSvc interface {
	CashDeposit(ctx context.Context, accountNumber string, pin string, amount decimal.Decimal) (*domain.Transaction, error)
	CashWithdrawal(ctx context.Context, accountNumber string, pin string, amount decimal.Decimal) (*domain.Transaction, error)
	FundTransfer(ctx context.Context, sourceAccountNumber string, targetAccountNumber string, pin string, amount decimal.Decimal) (*domain.Transaction, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountPinSvc
	AccountLedgerSvc
}
