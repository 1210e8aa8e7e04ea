package services

import (
	"context"
	"time"

	"github.com/SscSPs/banking_portal/internal/core/domain"
)

// AuthSvcFacade defines the login operation.
type AuthSvcFacade interface {
	// Login verifies the password of the user identified by an account number or
	// an email address and issues an access token whose subject is the account number.
	Login(ctx context.Context, identifier string, password string) (token string, expiresAt time.Time, account *domain.Account, err error)
}

// SecretEncoder hashes and verifies secrets. Passwords and PINs use the same encoder.
type SecretEncoder interface {
	Encode(plain string) (string, error)
	Matches(plain string, digest string) bool
}
