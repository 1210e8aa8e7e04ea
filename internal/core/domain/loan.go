package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus is the state of a loan in its lifecycle.
type LoanStatus string

const (
	LoanPending  LoanStatus = "PENDING"
	LoanApproved LoanStatus = "APPROVED"
	LoanRepaid   LoanStatus = "REPAID"
)

// Terms applied to every loan.
var (
	DefaultInterestRate = decimal.NewFromInt(5) // percent
)

const DefaultRepaymentPeriod = 12 // months

// IsValid reports whether s is one of the known statuses.
func (s LoanStatus) IsValid() bool {
	switch s {
	case LoanPending, LoanApproved, LoanRepaid:
		return true
	}
	return false
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// PENDING -> APPROVED -> REPAID; REPAID is terminal.
func (s LoanStatus) CanTransitionTo(next LoanStatus) bool {
	switch s {
	case LoanPending:
		return next == LoanApproved
	case LoanApproved:
		return next == LoanRepaid
	case LoanRepaid:
		return false
	}
	return false
}

// Loan is a loan taken against an account.
type Loan struct {
	LoanID             string          `json:"loanID"`             // Primary Key (UUID)
	AccountNumber      string          `json:"accountNumber"`      // FK -> accounts.account_number
	Amount             decimal.Decimal `json:"amount"`             // Principal
	InterestRate       decimal.Decimal `json:"interestRate"`       // Percent, fixed
	RepaymentPeriod    int             `json:"repaymentPeriod"`    // Months, fixed
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"` // Principal plus interest still owed
	Description        string          `json:"description"`
	Status             LoanStatus      `json:"status"`
	AuditFields
}

// NewLoan builds a PENDING loan with the default terms. The outstanding balance
// is principal * (1 + rate/100), rounded to cents.
func NewLoan(loanID, accountNumber string, amount decimal.Decimal, description string, now time.Time) Loan {
	factor := decimal.NewFromInt(1).Add(DefaultInterestRate.Div(decimal.NewFromInt(100)))
	return Loan{
		LoanID:             loanID,
		AccountNumber:      accountNumber,
		Amount:             amount,
		InterestRate:       DefaultInterestRate,
		RepaymentPeriod:    DefaultRepaymentPeriod,
		OutstandingBalance: amount.Mul(factor).Round(2),
		Description:        description,
		Status:             LoanPending,
		AuditFields: AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
}
