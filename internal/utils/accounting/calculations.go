package accounting

import (
	"github.com/SscSPs/banking_portal/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NetEffect returns the signed change a transaction made to the given account's
// balance. Deposits, incoming transfers and loan disbursements are positive;
// withdrawals, outgoing transfers and loan repayments are negative.
func NetEffect(txn domain.Transaction, accountNumber string) decimal.Decimal {
	switch txn.Type {
	case domain.CashDeposit:
		if txn.SourceAccountNumber == accountNumber {
			return txn.Amount
		}
	case domain.CashWithdrawal, domain.LoanRepayment:
		if txn.SourceAccountNumber == accountNumber {
			return txn.Amount.Neg()
		}
	case domain.LoanDisbursement:
		if txn.TargetAccountNumber == accountNumber {
			return txn.Amount
		}
	case domain.CashTransfer:
		effect := decimal.Zero
		if txn.SourceAccountNumber == accountNumber {
			effect = effect.Sub(txn.Amount)
		}
		if txn.TargetAccountNumber == accountNumber {
			effect = effect.Add(txn.Amount)
		}
		return effect
	}
	return decimal.Zero
}
