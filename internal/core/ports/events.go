package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionEvent is published after a balance-changing unit of work commits.
type TransactionEvent struct {
	TransactionID       string          `json:"transactionID"`
	Type                string          `json:"transactionType"`
	Amount              decimal.Decimal `json:"amount"`
	SourceAccountNumber string          `json:"sourceAccountNumber,omitempty"`
	TargetAccountNumber string          `json:"targetAccountNumber,omitempty"`
	LoanID              string          `json:"loanID,omitempty"`
	OccurredAt          time.Time       `json:"occurredAt"`
}

// EventPublisher delivers ledger events to downstream consumers.
type EventPublisher interface {
	PublishTransaction(ctx context.Context, event TransactionEvent) error
	Close() error
}
