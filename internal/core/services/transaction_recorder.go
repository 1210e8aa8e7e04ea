package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/banking_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/banking_portal/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// transactionRecorder appends the single ledger record of a balance change. It is
// called inside the unit of work after the balances are staged, so the record
// commits or rolls back together with them.
type transactionRecorder struct {
	now   func() time.Time
	newID func() string
}

func newTransactionRecorder() transactionRecorder {
	return transactionRecorder{now: time.Now, newID: uuid.NewString}
}

func (r transactionRecorder) record(ctx context.Context, repo portsrepo.TransactionRepository, txnType domain.TransactionType, amount decimal.Decimal, source, target string) (*domain.Transaction, error) {
	txn := domain.Transaction{
		TransactionID:       r.newID(),
		Amount:              amount,
		Type:                txnType,
		TransactionDate:     r.now(),
		SourceAccountNumber: source,
		TargetAccountNumber: target,
	}
	if err := repo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to record %s transaction: %w", txnType, err)
	}
	return &txn, nil
}
