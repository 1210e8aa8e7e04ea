package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/banking_portal/internal/apperrors"
	"github.com/SscSPs/banking_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/banking_portal/internal/core/ports/repositories"
	"github.com/SscSPs/banking_portal/internal/models"
	"github.com/SscSPs/banking_portal/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db DBTX) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository{db: db}}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// SaveTransaction appends a transaction record.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (transaction_id, amount, transaction_type, transaction_date,
			source_account_number, target_account_number)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.db.Exec(ctx, query, m.TransactionID, m.Amount, m.TransactionType, m.TransactionDate,
		m.SourceAccountNumber, m.TargetAccountNumber)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to save transaction %s", m.TransactionID), err)
	}
	return nil
}

// ListTransactionsByAccountNumber lists transactions touching the account, newest first.
func (r *PgxTransactionRepository) ListTransactionsByAccountNumber(ctx context.Context, accountNumber string, limit int, offset int) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, amount, transaction_type, transaction_date,
			source_account_number, target_account_number
		FROM transactions
		WHERE source_account_number = $1 OR target_account_number = $1
		ORDER BY transaction_date DESC, transaction_id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, accountNumber, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to list transactions for account %s", accountNumber), err)
	}
	defer rows.Close()

	txns := []models.Transaction{}
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(&m.TransactionID, &m.Amount, &m.TransactionType, &m.TransactionDate,
			&m.SourceAccountNumber, &m.TargetAccountNumber); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		txns = append(txns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}
	return mapping.ToDomainTransactionSlice(txns), nil
}
