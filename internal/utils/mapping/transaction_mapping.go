package mapping

import (
	"github.com/SscSPs/banking_portal/internal/core/domain"
	"github.com/SscSPs/banking_portal/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:       d.TransactionID,
		Amount:              d.Amount,
		TransactionType:     models.TransactionType(d.Type),
		TransactionDate:     d.TransactionDate,
		SourceAccountNumber: toNullString(d.SourceAccountNumber),
		TargetAccountNumber: toNullString(d.TargetAccountNumber),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:       m.TransactionID,
		Amount:              m.Amount,
		Type:                domain.TransactionType(m.TransactionType),
		TransactionDate:     m.TransactionDate,
		SourceAccountNumber: fromNullString(m.SourceAccountNumber),
		TargetAccountNumber: fromNullString(m.TargetAccountNumber),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
