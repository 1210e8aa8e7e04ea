package repositories

import (
	"context"

	"github.com/SscSPs/banking_portal/internal/core/domain"
)

// LoanReader defines read operations for loan data
type LoanReader interface {
	// FindLoanByID retrieves a loan by its ID.
	FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error)

	// FindLoanByIDForUpdate retrieves a loan and locks it until the unit of work ends.
	FindLoanByIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error)

	// ListLoansByAccountNumber lists an account's loans ordered by creation time, then ID.
	ListLoansByAccountNumber(ctx context.Context, accountNumber string) ([]domain.Loan, error)
}

// LoanWriter defines write operations for loan data
type LoanWriter interface {
	SaveLoan(ctx context.Context, loan domain.Loan) error
	UpdateLoan(ctx context.Context, loan domain.Loan) error
}

// LoanRepositoryFacade combines all loan-related repository interfaces
type LoanRepositoryFacade interface {
	LoanReader
	LoanWriter
}
