package dto

import (
	"time"

	"github.com/SscSPs/banking_portal/internal/core/domain"
	"github.com/SscSPs/banking_portal/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// PinCreateRequest defines the data needed to create a PIN.
type PinCreateRequest struct {
	Password string `json:"password"`
	Pin      string `json:"pin"`
}

// PinUpdateRequest defines the data needed to replace a PIN.
type PinUpdateRequest struct {
	OldPin   string `json:"oldPin"`
	Password string `json:"password"`
	NewPin   string `json:"newPin"`
}

// AmountRequest is used by deposit and withdrawal. The amount rules are enforced
// by the ledger, not by request binding, so that every violation reports the same error.
type AmountRequest struct {
	Pin    string          `json:"pin"`
	Amount decimal.Decimal `json:"amount"`
}

// FundTransferRequest moves money from the caller's account to another account.
type FundTransferRequest struct {
	TargetAccountNumber string          `json:"targetAccountNumber" binding:"required"`
	Pin                 string          `json:"pin"`
	Amount              decimal.Decimal `json:"amount"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountNumber string          `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
	HasPin        bool            `json:"hasPin"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// PinStatusResponse reports whether a PIN has been created.
type PinStatusResponse struct {
	HasPin bool `json:"hasPIN"`
}

// MessageResponse carries a human readable outcome.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// LedgerOperationResponse is returned by deposit, withdrawal and transfer.
type LedgerOperationResponse struct {
	Msg           string `json:"msg"`
	TransactionID string `json:"transactionID"`
}

// TransactionResponse defines the data returned for one transaction.
// SignedAmount is the effect on the viewing account's balance.
type TransactionResponse struct {
	TransactionID       string          `json:"transactionID"`
	Amount              decimal.Decimal `json:"amount"`
	SignedAmount        decimal.Decimal `json:"signedAmount"`
	TransactionType     string          `json:"transactionType"`
	TransactionDate     time.Time       `json:"transactionDate"`
	SourceAccountNumber string          `json:"sourceAccountNumber,omitempty"`
	TargetAccountNumber string          `json:"targetAccountNumber,omitempty"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountNumber: acc.AccountNumber,
		Balance:       acc.Balance,
		HasPin:        acc.HasPin(),
		CreatedAt:     acc.CreatedAt,
	}
}

// ToTransactionResponse converts a domain.Transaction as seen from viewer's account.
func ToTransactionResponse(txn domain.Transaction, viewer string) TransactionResponse {
	return TransactionResponse{
		TransactionID:       txn.TransactionID,
		Amount:              txn.Amount,
		SignedAmount:        accounting.NetEffect(txn, viewer),
		TransactionType:     string(txn.Type),
		TransactionDate:     txn.TransactionDate,
		SourceAccountNumber: txn.SourceAccountNumber,
		TargetAccountNumber: txn.TargetAccountNumber,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to response DTOs
func ToListTransactionResponse(txns []domain.Transaction, viewer string) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(txn, viewer)
	}
	return res
}
