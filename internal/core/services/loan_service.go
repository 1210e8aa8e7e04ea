package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/banking_portal/internal/apperrors"
	"github.com/SscSPs/banking_portal/internal/core/domain"
	"github.com/SscSPs/banking_portal/internal/core/ports"
	portsrepo "github.com/SscSPs/banking_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/banking_portal/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxLoanToBalance caps a loan at this multiple of the account balance.
var maxLoanToBalance = decimal.NewFromInt(2)

// loanService drives the PENDING -> APPROVED -> REPAID loan lifecycle.
type loanService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	loanRepo    portsrepo.LoanReader
	uow         portsrepo.UnitOfWork
	recorder    transactionRecorder
	newLoanID   func() string
}

// LoanServiceOption is a functional option for configuring the loan service
type LoanServiceOption func(*loanService)

// WithLoanEventPublisher adds the publisher that announces disbursements and repayments
func WithLoanEventPublisher(publisher ports.EventPublisher) LoanServiceOption {
	return func(s *loanService) {
		s.Publisher = publisher
	}
}

// WithLoanClock overrides the clock used to stamp loans and transactions
func WithLoanClock(now func() time.Time) LoanServiceOption {
	return func(s *loanService) {
		s.recorder.now = now
	}
}

// NewLoanService creates a new loan service with the provided options
func NewLoanService(repos portsrepo.RepositoryProvider, options ...LoanServiceOption) portssvc.LoanSvcFacade {
	svc := &loanService{
		accountRepo: repos.AccountRepo,
		loanRepo:    repos.LoanRepo,
		uow:         repos.UnitOfWork,
		recorder:    newTransactionRecorder(),
		newLoanID:   uuid.NewString,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.LoanSvcFacade = (*loanService)(nil)

func (s *loanService) ApplyForLoan(ctx context.Context, accountNumber string, amount decimal.Decimal, description string) (*domain.Loan, error) {
	var loan domain.Loan
	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.LedgerStore) error {
		if err := ValidateLoanAmount(amount); err != nil {
			return err
		}
		account, err := store.Accounts().FindAccountByNumber(ctx, accountNumber)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: %s", apperrors.ErrAccountDoesNotExist, accountNumber)
			}
			return err
		}
		if !account.Balance.IsPositive() {
			return fmt.Errorf("%w: account must have positive balance", apperrors.ErrInsufficientBalance)
		}
		if amount.GreaterThan(account.Balance.Mul(maxLoanToBalance)) {
			return fmt.Errorf("%w: loan amount cannot exceed twice the account balance", apperrors.ErrInvalidAmount)
		}

		loan = domain.NewLoan(s.newLoanID(), accountNumber, amount, description, s.recorder.now())
		return store.Loans().SaveLoan(ctx, loan)
	})
	if err != nil {
		s.LogRejection(ctx, err, "Loan application failed",
			slog.String("account_number", accountNumber),
			slog.String("amount", amount.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Loan application created",
		slog.String("loan_id", loan.LoanID),
		slog.String("account_number", accountNumber),
		slog.String("amount", amount.String()),
		slog.String("outstanding_balance", loan.OutstandingBalance.String()))
	return &loan, nil
}

func (s *loanService) ApproveLoan(ctx context.Context, loanID string) (*domain.Loan, error) {
	var (
		loan     *domain.Loan
		recorded *domain.Transaction
	)
	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.LedgerStore) error {
		var err error
		loan, err = s.lockLoan(ctx, store, loanID)
		if err != nil {
			return err
		}
		if !loan.Status.CanTransitionTo(domain.LoanApproved) {
			return fmt.Errorf("%w: loan is not in PENDING status", apperrors.ErrIllegalLoanState)
		}
		account, err := s.lockLoanAccount(ctx, store, loan)
		if err != nil {
			return err
		}

		now := s.recorder.now()
		loan.Status = domain.LoanApproved
		loan.LastUpdatedAt = now
		account.Credit(loan.Amount)
		account.LastUpdatedAt = now

		if err := store.Accounts().UpdateAccount(ctx, *account); err != nil {
			return err
		}
		if err := store.Loans().UpdateLoan(ctx, *loan); err != nil {
			return err
		}

		recorded, err = s.recorder.record(ctx, store.Transactions(), domain.LoanDisbursement, loan.Amount, "", account.AccountNumber)
		return err
	})
	if err != nil {
		s.LogRejection(ctx, err, "Loan approval failed", slog.String("loan_id", loanID))
		return nil, err
	}

	s.LogInfo(ctx, "Loan approved and disbursed",
		slog.String("loan_id", loanID),
		slog.String("account_number", loan.AccountNumber),
		slog.String("amount", loan.Amount.String()))
	s.PublishTransaction(ctx, recorded, loanID)
	return loan, nil
}

func (s *loanService) RepayLoan(ctx context.Context, loanID string, amount decimal.Decimal) (*domain.Loan, error) {
	var (
		loan     *domain.Loan
		recorded *domain.Transaction
	)
	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.LedgerStore) error {
		var err error
		loan, err = s.lockLoan(ctx, store, loanID)
		if err != nil {
			return err
		}
		if loan.Status != domain.LoanApproved {
			return fmt.Errorf("%w: loan is not in APPROVED status", apperrors.ErrIllegalLoanState)
		}
		if err := ValidateLoanAmount(amount); err != nil {
			return err
		}
		if amount.GreaterThan(loan.OutstandingBalance) {
			return fmt.Errorf("%w: repayment amount exceeds outstanding balance", apperrors.ErrInvalidAmount)
		}
		account, err := s.lockLoanAccount(ctx, store, loan)
		if err != nil {
			return err
		}
		if err := account.Debit(amount); err != nil {
			return fmt.Errorf("%w for loan repayment", err)
		}

		now := s.recorder.now()
		account.LastUpdatedAt = now
		loan.OutstandingBalance = loan.OutstandingBalance.Sub(amount)
		if loan.OutstandingBalance.IsZero() && loan.Status.CanTransitionTo(domain.LoanRepaid) {
			loan.Status = domain.LoanRepaid
		}
		loan.LastUpdatedAt = now

		if err := store.Accounts().UpdateAccount(ctx, *account); err != nil {
			return err
		}
		if err := store.Loans().UpdateLoan(ctx, *loan); err != nil {
			return err
		}

		recorded, err = s.recorder.record(ctx, store.Transactions(), domain.LoanRepayment, amount, account.AccountNumber, "")
		return err
	})
	if err != nil {
		s.LogRejection(ctx, err, "Loan repayment failed",
			slog.String("loan_id", loanID),
			slog.String("amount", amount.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Loan repayment applied",
		slog.String("loan_id", loanID),
		slog.String("amount", amount.String()),
		slog.String("outstanding_balance", loan.OutstandingBalance.String()),
		slog.String("status", string(loan.Status)))
	s.PublishTransaction(ctx, recorded, loanID)
	return loan, nil
}

func (s *loanService) GetLoansByAccountNumber(ctx context.Context, accountNumber string) ([]domain.Loan, error) {
	exists, err := s.accountRepo.AccountExists(ctx, accountNumber)
	if err != nil {
		s.LogError(ctx, err, "Failed to check account existence", slog.String("account_number", accountNumber))
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrAccountDoesNotExist, accountNumber)
	}

	loans, err := s.loanRepo.ListLoansByAccountNumber(ctx, accountNumber)
	if err != nil {
		s.LogError(ctx, err, "Failed to list loans", slog.String("account_number", accountNumber))
		return nil, err
	}
	return loans, nil
}

// lockLoan loads and locks the loan. Loans are always locked before their account.
func (s *loanService) lockLoan(ctx context.Context, store portsrepo.LedgerStore, loanID string) (*domain.Loan, error) {
	loan, err := store.Loans().FindLoanByIDForUpdate(ctx, loanID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrLoanNotFound
		}
		return nil, err
	}
	return loan, nil
}

func (s *loanService) lockLoanAccount(ctx context.Context, store portsrepo.LedgerStore, loan *domain.Loan) (*domain.Account, error) {
	account, err := store.Accounts().FindAccountByNumberForUpdate(ctx, loan.AccountNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrAccountDoesNotExist, loan.AccountNumber)
		}
		return nil, err
	}
	return account, nil
}
