package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/banking_portal/internal/apperrors"
	"github.com/SscSPs/banking_portal/internal/core/domain"
	"github.com/SscSPs/banking_portal/internal/core/ports"
	"github.com/SscSPs/banking_portal/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Publisher ports.EventPublisher
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a rejected request. Business rule failures are not errors of the system.
func (s *BaseService) LogWarn(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("reason", err.Error()))
	args = append(args, keyvals...)
	logger.Warn(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// PublishTransaction announces a committed transaction. Delivery failures are
// logged and never undo the committed ledger change.
func (s *BaseService) PublishTransaction(ctx context.Context, txn *domain.Transaction, loanID string) {
	if s.Publisher == nil || txn == nil {
		return
	}
	event := ports.TransactionEvent{
		TransactionID:       txn.TransactionID,
		Type:                string(txn.Type),
		Amount:              txn.Amount,
		SourceAccountNumber: txn.SourceAccountNumber,
		TargetAccountNumber: txn.TargetAccountNumber,
		LoanID:              loanID,
		OccurredAt:          txn.TransactionDate,
	}
	if err := s.Publisher.PublishTransaction(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish transaction event",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("transaction_type", string(txn.Type)))
	}
}

// LogRejection logs business rule violations at warn level and anything else as an error.
func (s *BaseService) LogRejection(ctx context.Context, err error, msg string, keyvals ...any) {
	if isBusinessError(err) {
		s.LogWarn(ctx, err, msg, keyvals...)
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}

func isBusinessError(err error) bool {
	for _, target := range []error{
		apperrors.ErrNotFound,
		apperrors.ErrUnauthorized,
		apperrors.ErrInvalidAmount,
		apperrors.ErrInsufficientBalance,
		apperrors.ErrInvalidPin,
		apperrors.ErrFundTransfer,
		apperrors.ErrIllegalLoanState,
		apperrors.ErrDuplicate,
		apperrors.ErrValidation,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
