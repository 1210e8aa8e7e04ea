package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/banking_portal/internal/apperrors"
	"github.com/SscSPs/banking_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/banking_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/banking_portal/internal/core/ports/services"
	"github.com/SscSPs/banking_portal/internal/dto"
	"github.com/SscSPs/banking_portal/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxAccountNumberAttempts bounds the search for an unused account number.
const maxAccountNumberAttempts = 10

type userService struct {
	BaseService
	userRepo         portsrepo.UserReader
	uow              portsrepo.UnitOfWork
	encoder          portssvc.SecretEncoder
	newAccountNumber func() string
	now              func() time.Time
}

// UserServiceOption is a functional option for configuring the user service
type UserServiceOption func(*userService)

// WithAccountNumberGenerator overrides how candidate account numbers are produced
func WithAccountNumberGenerator(gen func() string) UserServiceOption {
	return func(s *userService) {
		s.newAccountNumber = gen
	}
}

// NewUserService creates a new user service with the provided options
func NewUserService(repos portsrepo.RepositoryProvider, encoder portssvc.SecretEncoder, options ...UserServiceOption) portssvc.UserSvcFacade {
	svc := &userService{
		userRepo:         repos.UserRepo,
		uow:              repos.UnitOfWork,
		encoder:          encoder,
		newAccountNumber: utils.GenerateAccountNumber,
		now:              time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user", slog.String("user_id", userID))
		}
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}

// Register creates the user and opens their account in one unit of work.
func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, *domain.Account, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	name := strings.TrimSpace(req.Name)
	if email == "" || name == "" || req.Password == "" {
		return nil, nil, fmt.Errorf("%w: name, email and password are required", apperrors.ErrValidation)
	}

	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, nil, fmt.Errorf("%w: email is already registered", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up user by email")
		return nil, nil, err
	}

	passwordHash, err := s.encoder.Encode(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, nil, apperrors.NewAppError(500, "failed to hash password", err)
	}

	now := s.now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	var account domain.Account

	err = s.uow.Do(ctx, func(ctx context.Context, store portsrepo.LedgerStore) error {
		if err := store.Users().SaveUser(ctx, user); err != nil {
			return err
		}
		accountNumber, err := s.generateUniqueAccountNumber(ctx, store.Accounts())
		if err != nil {
			return err
		}
		account = domain.Account{
			AccountNumber: accountNumber,
			UserID:        user.UserID,
			Balance:       decimal.Zero,
			AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		}
		return store.Accounts().SaveAccount(ctx, account)
	})
	if err != nil {
		s.LogRejection(ctx, err, "User registration failed")
		return nil, nil, err
	}

	s.LogInfo(ctx, "User registered",
		slog.String("user_id", user.UserID),
		slog.String("account_number", account.AccountNumber))
	return &user, &account, nil
}

func (s *userService) generateUniqueAccountNumber(ctx context.Context, accounts portsrepo.AccountReader) (string, error) {
	for attempt := 0; attempt < maxAccountNumberAttempts; attempt++ {
		candidate := s.newAccountNumber()
		exists, err := accounts.AccountExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		s.LogDebug(ctx, "Account number collision, retrying", slog.String("candidate", candidate))
	}
	return "", apperrors.NewAppError(500, "could not allocate a unique account number", nil)
}
