package repositories

import (
	"context"

	"github.com/SscSPs/banking_portal/internal/core/domain"
)

// TransactionRepository is append-only: transactions are inserted and read, never changed.
type TransactionRepository interface {
	// SaveTransaction inserts a new transaction record.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// ListTransactionsByAccountNumber lists transactions where the account is the
	// source or the target, newest first.
	ListTransactionsByAccountNumber(ctx context.Context, accountNumber string, limit int, offset int) ([]domain.Transaction, error)
}
