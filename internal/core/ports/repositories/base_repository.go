package repositories

import (
	"context"
)

// LedgerStore exposes the repositories bound to a single database transaction.
type LedgerStore interface {
	Accounts() AccountRepositoryFacade
	Loans() LoanRepositoryFacade
	Transactions() TransactionRepository
	Users() UserRepositoryFacade
}

// UnitOfWork runs fn inside one database transaction. If fn returns an error (or
// panics) every write made through store is rolled back; otherwise it is committed.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, store LedgerStore) error) error
}
