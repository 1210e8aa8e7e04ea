package mapping

import (
	"github.com/SscSPs/banking_portal/internal/core/domain"
	"github.com/SscSPs/banking_portal/internal/models"
)

// ToModelLoan converts a domain Loan to a model Loan
func ToModelLoan(d domain.Loan) models.Loan {
	return models.Loan{
		LoanID:             d.LoanID,
		AccountNumber:      d.AccountNumber,
		Amount:             d.Amount,
		InterestRate:       d.InterestRate,
		RepaymentPeriod:    d.RepaymentPeriod,
		OutstandingBalance: d.OutstandingBalance,
		Description:        toNullString(d.Description),
		Status:             models.LoanStatus(d.Status),
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLoan converts a model Loan to a domain Loan
func ToDomainLoan(m models.Loan) domain.Loan {
	return domain.Loan{
		LoanID:             m.LoanID,
		AccountNumber:      m.AccountNumber,
		Amount:             m.Amount,
		InterestRate:       m.InterestRate,
		RepaymentPeriod:    m.RepaymentPeriod,
		OutstandingBalance: m.OutstandingBalance,
		Description:        fromNullString(m.Description),
		Status:             domain.LoanStatus(m.Status),
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLoanSlice converts a slice of model Loans to a slice of domain Loans
func ToDomainLoanSlice(ms []models.Loan) []domain.Loan {
	ds := make([]domain.Loan, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLoan(m)
	}
	return ds
}
