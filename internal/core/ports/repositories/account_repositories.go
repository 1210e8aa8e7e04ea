package repositories

import (
	"context"

	"github.com/SscSPs/banking_portal/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByNumber retrieves an account by its account number.
	FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)

	// FindAccountByUserID retrieves the account owned by a user.
	FindAccountByUserID(ctx context.Context, userID string) (*domain.Account, error)

	// AccountExists reports whether an account with the given number exists.
	AccountExists(ctx context.Context, accountNumber string) (bool, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount persists the balance and PIN digest of an existing account.
	UpdateAccount(ctx context.Context, account domain.Account) error
}

// AccountLocker defines the row-locking reads used inside a unit of work.
type AccountLocker interface {
	// FindAccountByNumberForUpdate selects an account and locks it until the unit of work ends.
	FindAccountByNumberForUpdate(ctx context.Context, accountNumber string) (*domain.Account, error)

	// FindAccountsByNumbersForUpdate locks every listed account that exists, in
	// account-number order, and returns them keyed by account number. Missing
	// accounts are simply absent from the map.
	FindAccountsByNumbersForUpdate(ctx context.Context, accountNumbers []string) (map[string]domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountLocker
}
