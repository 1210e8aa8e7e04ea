package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tags what kind of money movement a Transaction records.
type TransactionType string

const (
	CashDeposit      TransactionType = "CASH_DEPOSIT"
	CashWithdrawal   TransactionType = "CASH_WITHDRAWAL"
	CashTransfer     TransactionType = "CASH_TRANSFER"
	LoanDisbursement TransactionType = "LOAN_DISBURSEMENT"
	LoanRepayment    TransactionType = "LOAN_REPAYMENT"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case CashDeposit, CashWithdrawal, CashTransfer, LoanDisbursement, LoanRepayment:
		return true
	}
	return false
}

// Transaction is an immutable ledger record. Source and target are empty when
// the movement has no account on that side (cash in, cash out, loan flows).
type Transaction struct {
	TransactionID       string          `json:"transactionID"` // Primary Key (UUID)
	Amount              decimal.Decimal `json:"amount"`        // Always positive
	Type                TransactionType `json:"transactionType"`
	TransactionDate     time.Time       `json:"transactionDate"`
	SourceAccountNumber string          `json:"sourceAccountNumber,omitempty"` // Nullable
	TargetAccountNumber string          `json:"targetAccountNumber,omitempty"` // Nullable
}
