package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/banking_portal/internal/apperrors"
	"github.com/SscSPs/banking_portal/internal/core/domain"
	"github.com/SscSPs/banking_portal/internal/core/services"
	"github.com/SscSPs/banking_portal/internal/platform/config"
	"github.com/SscSPs/banking_portal/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture() (*fixture, *config.Config) {
	return newFixture(), &config.Config{JWTSecret: "test-secret", JWTExpiryDuration: time.Hour, JWTIssuer: "test"}
}

func TestLogin_ByAccountNumber(t *testing.T) {
	f, cfg := newAuthFixture()
	ctx := context.Background()
	f.accounts.On("FindAccountByNumber", ctx, "abc123").Return(&domain.Account{AccountNumber: "abc123", UserID: "u1"}, nil).Once()
	f.users.On("FindUserByID", ctx, "u1").Return(&domain.User{UserID: "u1", PasswordHash: "enc:pw"}, nil).Once()

	svc := services.NewAuthService(cfg, f.provider(), plainEncoder{})
	token, expiresAt, account, err := svc.Login(ctx, "abc123", "pw")

	require.NoError(t, err)
	assert.Equal(t, "abc123", account.AccountNumber)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := utils.ParseAndValidateJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "abc123", claims.Subject)
}

func TestLogin_ByEmail(t *testing.T) {
	f, cfg := newAuthFixture()
	ctx := context.Background()
	f.users.On("FindUserByEmail", ctx, "jane@example.com").Return(&domain.User{UserID: "u1", PasswordHash: "enc:pw"}, nil).Once()
	f.accounts.On("FindAccountByUserID", ctx, "u1").Return(&domain.Account{AccountNumber: "abc123", UserID: "u1"}, nil).Once()

	svc := services.NewAuthService(cfg, f.provider(), plainEncoder{})
	_, _, account, err := svc.Login(ctx, "Jane@Example.com", "pw")

	require.NoError(t, err)
	assert.Equal(t, "abc123", account.AccountNumber)
}

func TestLogin_Failures(t *testing.T) {
	f, cfg := newAuthFixture()
	ctx := context.Background()
	f.accounts.On("FindAccountByNumber", ctx, "zzz999").Return(nil, apperrors.ErrNotFound).Once()
	f.accounts.On("FindAccountByNumber", ctx, "abc123").Return(&domain.Account{AccountNumber: "abc123", UserID: "u1"}, nil).Once()
	f.users.On("FindUserByID", ctx, "u1").Return(&domain.User{UserID: "u1", PasswordHash: "enc:pw"}, nil).Once()
	f.accounts.On("FindAccountByNumber", ctx, "dberr1").Return(nil, assert.AnError).Once()

	svc := services.NewAuthService(cfg, f.provider(), plainEncoder{})

	_, _, _, err := svc.Login(ctx, "zzz999", "pw")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, _, _, err = svc.Login(ctx, "abc123", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, _, _, err = svc.Login(ctx, "dberr1", "pw")
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, apperrors.ErrUnauthorized)
}
