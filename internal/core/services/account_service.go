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
	"github.com/shopspring/decimal"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	txnRepo     portsrepo.TransactionRepository
	uow         portsrepo.UnitOfWork
	encoder     portssvc.SecretEncoder
	recorder    transactionRecorder
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithAccountEventPublisher adds the publisher that announces committed transactions
func WithAccountEventPublisher(publisher ports.EventPublisher) AccountServiceOption {
	return func(s *accountService) {
		s.Publisher = publisher
	}
}

// WithAccountClock overrides the clock used to stamp accounts and transactions
func WithAccountClock(now func() time.Time) AccountServiceOption {
	return func(s *accountService) {
		s.recorder.now = now
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repos portsrepo.RepositoryProvider, encoder portssvc.SecretEncoder, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: repos.AccountRepo,
		txnRepo:     repos.TransactionRepo,
		uow:         repos.UnitOfWork,
		encoder:     encoder,
		recorder:    newTransactionRecorder(),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) GetAccount(ctx context.Context, accountNumber string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		return nil, s.accountLookupError(ctx, err, accountNumber)
	}
	return account, nil
}

func (s *accountService) IsPinCreated(ctx context.Context, accountNumber string) (bool, error) {
	account, err := s.GetAccount(ctx, accountNumber)
	if err != nil {
		return false, err
	}
	return account.HasPin(), nil
}

func (s *accountService) ListTransactions(ctx context.Context, accountNumber string, limit int, offset int) ([]domain.Transaction, error) {
	exists, err := s.accountRepo.AccountExists(ctx, accountNumber)
	if err != nil {
		s.LogError(ctx, err, "Failed to check account existence", slog.String("account_number", accountNumber))
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrAccountDoesNotExist, accountNumber)
	}

	txns, err := s.txnRepo.ListTransactionsByAccountNumber(ctx, accountNumber, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("account_number", accountNumber))
		return nil, err
	}
	return txns, nil
}

func (s *accountService) CreatePin(ctx context.Context, accountNumber string, password string, pin string) error {
	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.LedgerStore) error {
		account, err := s.lockAccount(ctx, store, accountNumber)
		if err != nil {
			return err
		}
		if err := s.verifyPassword(ctx, store, account, password); err != nil {
			return err
		}
		if account.HasPin() {
			return apperrors.ErrPinAlreadyExists
		}
		if err := ValidatePinFormat(pin); err != nil {
			return err
		}
		return s.storePin(ctx, store, account, pin)
	})
	if err != nil {
		s.LogRejection(ctx, err, "PIN creation failed", slog.String("account_number", accountNumber))
		return err
	}

	s.LogInfo(ctx, "PIN created", slog.String("account_number", accountNumber))
	return nil
}

func (s *accountService) UpdatePin(ctx context.Context, accountNumber string, oldPin string, password string, newPin string) error {
	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.LedgerStore) error {
		account, err := s.lockAccount(ctx, store, accountNumber)
		if err != nil {
			return err
		}
		if err := s.verifyPassword(ctx, store, account, password); err != nil {
			return err
		}
		if err := s.verifyPin(account, oldPin); err != nil {
			return err
		}
		if err := ValidatePinFormat(newPin); err != nil {
			return err
		}
		return s.storePin(ctx, store, account, newPin)
	})
	if err != nil {
		s.LogRejection(ctx, err, "PIN update failed", slog.String("account_number", accountNumber))
		return err
	}

	s.LogInfo(ctx, "PIN updated", slog.String("account_number", accountNumber))
	return nil
}

func (s *accountService) CashDeposit(ctx context.Context, accountNumber string, pin string, amount decimal.Decimal) (*domain.Transaction, error) {
	var recorded *domain.Transaction
	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.LedgerStore) error {
		account, err := s.lockAccount(ctx, store, accountNumber)
		if err != nil {
			return err
		}
		if err := s.verifyPin(account, pin); err != nil {
			return err
		}
		if err := ValidateAmount(amount); err != nil {
			return err
		}

		account.Credit(amount)
		account.LastUpdatedAt = s.recorder.now()
		if err := store.Accounts().UpdateAccount(ctx, *account); err != nil {
			return err
		}

		recorded, err = s.recorder.record(ctx, store.Transactions(), domain.CashDeposit, amount, accountNumber, "")
		return err
	})
	if err != nil {
		s.LogRejection(ctx, err, "Cash deposit failed",
			slog.String("account_number", accountNumber),
			slog.String("amount", amount.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Cash deposited",
		slog.String("account_number", accountNumber),
		slog.String("amount", amount.String()),
		slog.String("transaction_id", recorded.TransactionID))
	s.PublishTransaction(ctx, recorded, "")
	return recorded, nil
}

func (s *accountService) CashWithdrawal(ctx context.Context, accountNumber string, pin string, amount decimal.Decimal) (*domain.Transaction, error) {
	var recorded *domain.Transaction
	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.LedgerStore) error {
		account, err := s.lockAccount(ctx, store, accountNumber)
		if err != nil {
			return err
		}
		if err := s.verifyPin(account, pin); err != nil {
			return err
		}
		if err := ValidateAmount(amount); err != nil {
			return err
		}

		if err := account.Debit(amount); err != nil {
			return err
		}
		account.LastUpdatedAt = s.recorder.now()
		if err := store.Accounts().UpdateAccount(ctx, *account); err != nil {
			return err
		}

		recorded, err = s.recorder.record(ctx, store.Transactions(), domain.CashWithdrawal, amount, accountNumber, "")
		return err
	})
	if err != nil {
		s.LogRejection(ctx, err, "Cash withdrawal failed",
			slog.String("account_number", accountNumber),
			slog.String("amount", amount.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Cash withdrawn",
		slog.String("account_number", accountNumber),
		slog.String("amount", amount.String()),
		slog.String("transaction_id", recorded.TransactionID))
	s.PublishTransaction(ctx, recorded, "")
	return recorded, nil
}

func (s *accountService) FundTransfer(ctx context.Context, sourceAccountNumber string, targetAccountNumber string, pin string, amount decimal.Decimal) (*domain.Transaction, error) {
	var recorded *domain.Transaction
	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.LedgerStore) error {
		numbers := []string{sourceAccountNumber}
		if targetAccountNumber != sourceAccountNumber {
			numbers = append(numbers, targetAccountNumber)
		}
		// Both rows are locked in one statement, in account-number order.
		accounts, err := store.Accounts().FindAccountsByNumbersForUpdate(ctx, numbers)
		if err != nil {
			return err
		}

		source, ok := accounts[sourceAccountNumber]
		if !ok {
			return fmt.Errorf("%w: %s", apperrors.ErrAccountDoesNotExist, sourceAccountNumber)
		}
		if err := s.verifyPin(&source, pin); err != nil {
			return err
		}
		if err := ValidateAmount(amount); err != nil {
			return err
		}
		if sourceAccountNumber == targetAccountNumber {
			return apperrors.ErrFundTransfer
		}
		target, ok := accounts[targetAccountNumber]
		if !ok {
			return fmt.Errorf("%w: target account %s", apperrors.ErrAccountDoesNotExist, targetAccountNumber)
		}

		if err := source.Debit(amount); err != nil {
			return err
		}
		target.Credit(amount)

		now := s.recorder.now()
		source.LastUpdatedAt = now
		target.LastUpdatedAt = now
		if err := store.Accounts().UpdateAccount(ctx, source); err != nil {
			return err
		}
		if err := store.Accounts().UpdateAccount(ctx, target); err != nil {
			return err
		}

		recorded, err = s.recorder.record(ctx, store.Transactions(), domain.CashTransfer, amount, sourceAccountNumber, targetAccountNumber)
		return err
	})
	if err != nil {
		s.LogRejection(ctx, err, "Fund transfer failed",
			slog.String("source_account", sourceAccountNumber),
			slog.String("target_account", targetAccountNumber),
			slog.String("amount", amount.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Fund transferred",
		slog.String("source_account", sourceAccountNumber),
		slog.String("target_account", targetAccountNumber),
		slog.String("amount", amount.String()),
		slog.String("transaction_id", recorded.TransactionID))
	s.PublishTransaction(ctx, recorded, "")
	return recorded, nil
}

// lockAccount loads and locks the account for the rest of the unit of work.
func (s *accountService) lockAccount(ctx context.Context, store portsrepo.LedgerStore, accountNumber string) (*domain.Account, error) {
	account, err := store.Accounts().FindAccountByNumberForUpdate(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrAccountDoesNotExist, accountNumber)
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) verifyPassword(ctx context.Context, store portsrepo.LedgerStore, account *domain.Account, password string) error {
	if password == "" {
		return fmt.Errorf("%w: password cannot be empty", apperrors.ErrUnauthorized)
	}
	user, err := store.Users().FindUserByID(ctx, account.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: account owner not found", apperrors.ErrUnauthorized)
		}
		return err
	}
	if !s.encoder.Matches(password, user.PasswordHash) {
		return fmt.Errorf("%w: invalid password", apperrors.ErrUnauthorized)
	}
	return nil
}

func (s *accountService) verifyPin(account *domain.Account, pin string) error {
	if !account.HasPin() {
		return fmt.Errorf("%w: PIN has not been created for this account", apperrors.ErrUnauthorized)
	}
	if pin == "" {
		return fmt.Errorf("%w: PIN cannot be empty", apperrors.ErrUnauthorized)
	}
	if !s.encoder.Matches(pin, account.PinHash) {
		return fmt.Errorf("%w: invalid PIN", apperrors.ErrUnauthorized)
	}
	return nil
}

func (s *accountService) storePin(ctx context.Context, store portsrepo.LedgerStore, account *domain.Account, pin string) error {
	digest, err := s.encoder.Encode(pin)
	if err != nil {
		return apperrors.NewAppError(500, "failed to hash PIN", err)
	}
	account.PinHash = digest
	account.LastUpdatedAt = s.recorder.now()
	return store.Accounts().UpdateAccount(ctx, *account)
}

func (s *accountService) accountLookupError(ctx context.Context, err error, accountNumber string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("%w: %s", apperrors.ErrAccountDoesNotExist, accountNumber)
	}
	s.LogError(ctx, err, "Failed to find account", slog.String("account_number", accountNumber))
	return err
}
