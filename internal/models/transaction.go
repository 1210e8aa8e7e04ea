package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is stored as text in the transactions.transaction_type column.
type TransactionType string

// Transaction is the persistence shape of a transaction row. Rows are never updated.
type Transaction struct {
	TransactionID       string          `db:"transaction_id"`
	Amount              decimal.Decimal `db:"amount"`
	TransactionType     TransactionType `db:"transaction_type"`
	TransactionDate     time.Time       `db:"transaction_date"`
	SourceAccountNumber sql.NullString  `db:"source_account_number"`
	TargetAccountNumber sql.NullString  `db:"target_account_number"`
}
