package services

import (
	"context"

	"github.com/SscSPs/banking_portal/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LoanWriterSvc defines the loan lifecycle transitions.
type LoanWriterSvc interface {
	// ApplyForLoan creates a PENDING loan for the account.
	ApplyForLoan(ctx context.Context, accountNumber string, amount decimal.Decimal, description string) (*domain.Loan, error)

	// ApproveLoan moves a PENDING loan to APPROVED and disburses the principal.
	ApproveLoan(ctx context.Context, loanID string) (*domain.Loan, error)

	// RepayLoan applies a repayment to an APPROVED loan, marking it REPAID when nothing is left.
	RepayLoan(ctx context.Context, loanID string, amount decimal.Decimal) (*domain.Loan, error)
}

// LoanReaderSvc defines read operations for loan data
type LoanReaderSvc interface {
	GetLoansByAccountNumber(ctx context.Context, accountNumber string) ([]domain.Loan, error)
}

// LoanSvcFacade combines all loan-related service interfaces
type LoanSvcFacade interface {
	LoanWriterSvc
	LoanReaderSvc
}
