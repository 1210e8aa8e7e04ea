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
	"github.com/SscSPs/banking_portal/internal/platform/config"
	"github.com/SscSPs/banking_portal/internal/utils"
)

var errInvalidCredentials = fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)

type authService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	userRepo    portsrepo.UserReader
	encoder     portssvc.SecretEncoder
	cfg         *config.Config
}

// NewAuthService creates the login service. Tokens are signed with the configured JWT secret.
func NewAuthService(cfg *config.Config, repos portsrepo.RepositoryProvider, encoder portssvc.SecretEncoder) portssvc.AuthSvcFacade {
	return &authService{
		accountRepo: repos.AccountRepo,
		userRepo:    repos.UserRepo,
		encoder:     encoder,
		cfg:         cfg,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login accepts an account number or, when the identifier contains '@', an email.
// Unknown identifiers and wrong passwords yield the same error.
func (s *authService) Login(ctx context.Context, identifier string, password string) (string, time.Time, *domain.Account, error) {
	identifier = strings.TrimSpace(identifier)

	user, account, err := s.resolve(ctx, identifier)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, err, "Login failed: unknown identifier")
			return "", time.Time{}, nil, errInvalidCredentials
		}
		s.LogError(ctx, err, "Login failed")
		return "", time.Time{}, nil, err
	}

	if !s.encoder.Matches(password, user.PasswordHash) {
		s.LogWarn(ctx, errInvalidCredentials, "Login failed: wrong password", slog.String("account_number", account.AccountNumber))
		return "", time.Time{}, nil, errInvalidCredentials
	}

	token, expiresAt, err := utils.GenerateJWT(account.AccountNumber, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token")
		return "", time.Time{}, nil, apperrors.NewAppError(500, "failed to generate token", err)
	}

	s.LogInfo(ctx, "Login succeeded", slog.String("account_number", account.AccountNumber))
	return token, expiresAt, account, nil
}

func (s *authService) resolve(ctx context.Context, identifier string) (*domain.User, *domain.Account, error) {
	if strings.Contains(identifier, "@") {
		user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(identifier))
		if err != nil {
			return nil, nil, err
		}
		account, err := s.accountRepo.FindAccountByUserID(ctx, user.UserID)
		if err != nil {
			return nil, nil, err
		}
		return user, account, nil
	}

	account, err := s.accountRepo.FindAccountByNumber(ctx, identifier)
	if err != nil {
		return nil, nil, err
	}
	user, err := s.userRepo.FindUserByID(ctx, account.UserID)
	if err != nil {
		return nil, nil, err
	}
	return user, account, nil
}
