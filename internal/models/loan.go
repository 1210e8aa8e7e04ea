package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// LoanStatus is stored as text in the loans.status column.
type LoanStatus string

// Loan is the persistence shape of a loan row.
type Loan struct {
	LoanID             string          `db:"loan_id"`
	AccountNumber      string          `db:"account_number"`
	Amount             decimal.Decimal `db:"amount"`
	InterestRate       decimal.Decimal `db:"interest_rate"`
	RepaymentPeriod    int             `db:"repayment_period"`
	OutstandingBalance decimal.Decimal `db:"outstanding_balance"`
	Description        sql.NullString  `db:"description"`
	Status             LoanStatus      `db:"status"`
	AuditFields
}
