package dto

import (
	"github.com/SscSPs/banking_portal/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LoanApplicationRequest defines the data needed to apply for a loan.
type LoanApplicationRequest struct {
	AccountNumber string          `json:"accountNumber" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Description   string          `json:"description" binding:"max=255"`
}

// LoanRepaymentParams is bound from the query string of the repay endpoint.
type LoanRepaymentParams struct {
	Amount string `form:"amount" binding:"required"`
}

// LoanResponse defines the data returned for a loan.
type LoanResponse struct {
	ID                 string          `json:"id"`
	AccountNumber      string          `json:"accountNumber"`
	Amount             decimal.Decimal `json:"amount"`
	InterestRate       decimal.Decimal `json:"interestRate"`
	RepaymentPeriod    int             `json:"repaymentPeriod"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"`
	Description        string          `json:"description"`
	Status             string          `json:"status"`
}

// ToLoanResponse converts a domain.Loan to LoanResponse DTO
func ToLoanResponse(loan *domain.Loan) LoanResponse {
	return LoanResponse{
		ID:                 loan.LoanID,
		AccountNumber:      loan.AccountNumber,
		Amount:             loan.Amount,
		InterestRate:       loan.InterestRate,
		RepaymentPeriod:    loan.RepaymentPeriod,
		OutstandingBalance: loan.OutstandingBalance,
		Description:        loan.Description,
		Status:             string(loan.Status),
	}
}

// ToListLoanResponse converts a slice of domain.Loan to LoanResponse DTOs
func ToListLoanResponse(loans []domain.Loan) []LoanResponse {
	res := make([]LoanResponse, len(loans))
	for i := range loans {
		res[i] = ToLoanResponse(&loans[i])
	}
	return res
}
