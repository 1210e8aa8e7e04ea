package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/banking_portal/internal/apperrors"
	"github.com/SscSPs/banking_portal/internal/core/domain"
	"github.com/SscSPs/banking_portal/internal/core/ports"
	portssvc "github.com/SscSPs/banking_portal/internal/core/ports/services"
	"github.com/SscSPs/banking_portal/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	f       *fixture
	now     time.Time
	service portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.f = newFixture()
	suite.now = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	suite.service = services.NewAccountService(
		suite.f.provider(),
		plainEncoder{},
		services.WithAccountEventPublisher(suite.f.publisher),
		services.WithAccountClock(func() time.Time { return suite.now }),
	)
}

func (suite *AccountServiceTestSuite) account(number, balance string, pin string) *domain.Account {
	acc := &domain.Account{AccountNumber: number, UserID: "user-" + number, Balance: dec(balance)}
	if pin != "" {
		acc.PinHash = "enc:" + pin
	}
	return acc
}

func (suite *AccountServiceTestSuite) assertNoWrites() {
	suite.f.accounts.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
	suite.f.transactions.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
	suite.f.publisher.AssertNotCalled(suite.T(), "PublishTransaction", mock.Anything, mock.Anything)
	suite.Equal(0, suite.f.uow.commits)
}

// --- Cash deposit ---

func (suite *AccountServiceTestSuite) TestCashDeposit_Success() {
	ctx := context.Background()
	suite.f.accounts.On("FindAccountByNumberForUpdate", ctx, "abc123").Return(suite.account("abc123", "150", "1234"), nil).Once()
	suite.f.accounts.On("UpdateAccount", ctx, accountWith("abc123", "650")).Return(nil).Once()
	suite.f.transactions.On("SaveTransaction", ctx, txnWith(domain.CashDeposit, "500", "abc123", "")).Return(nil).Once()
	suite.f.publisher.On("PublishTransaction", ctx, mock.MatchedBy(func(e ports.TransactionEvent) bool {
		return e.Type == string(domain.CashDeposit) && e.SourceAccountNumber == "abc123"
	})).Return(nil).Once()

	txn, err := suite.service.CashDeposit(ctx, "abc123", "1234", dec("500"))

	suite.Require().NoError(err)
	suite.Equal(domain.CashDeposit, txn.Type)
	suite.Equal(suite.now, txn.TransactionDate)
	suite.Equal(1, suite.f.uow.commits)
	suite.f.accounts.AssertExpectations(suite.T())
	suite.f.transactions.AssertExpectations(suite.T())
	suite.f.publisher.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCashDeposit_InvalidAmounts() {
	ctx := context.Background()
	for _, amount := range []string{"0", "-100", "150", "100000.01", "100100"} {
		suite.f.accounts.On("FindAccountByNumberForUpdate", ctx, "abc123").Return(suite.account("abc123", "0", "1234"), nil).Once()

		_, err := suite.service.CashDeposit(ctx, "abc123", "1234", dec(amount))

		suite.ErrorIs(err, apperrors.ErrInvalidAmount, "amount %s", amount)
	}
	suite.assertNoWrites()
}

func (suite *AccountServiceTestSuite) TestCashDeposit_BoundaryAmountsAccepted() {
	ctx := context.Background()
	for _, amount := range []string{"100", "100000"} {
		suite.f.accounts.On("FindAccountByNumberForUpdate", ctx, "abc123").Return(suite.account("abc123", "0", "1234"), nil).Once()
		suite.f.accounts.On("UpdateAccount", ctx, accountWith("abc123", amount)).Return(nil).Once()
		suite.f.transactions.On("SaveTransaction", ctx, txnWith(domain.CashDeposit, amount, "abc123", "")).Return(nil).Once()
		suite.f.publisher.On("PublishTransaction", ctx, mock.Anything).Return(nil).Once()

		_, err := suite.service.CashDeposit(ctx, "abc123", "1234", dec(amount))

		suite.NoError(err, "amount %s", amount)
	}
	suite.Equal(2, suite.f.uow.commits)
}

func (suite *AccountServiceTestSuite) TestCashDeposit_PinChecks() {
	ctx := context.Background()

	suite.f.accounts.On("FindAccountByNumberForUpdate", ctx, "nopin1").Return(suite.account("nopin1", "0", ""), nil).Once()
	_, err := suite.service.CashDeposit(ctx, "nopin1", "1234", dec("500"))
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	suite.f.accounts.On("FindAccountByNumberForUpdate", ctx, "abc123").Return(suite.account("abc123", "0", "1234"), nil).Twice()
	_, err = suite.service.CashDeposit(ctx, "abc123", "", dec("500"))
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	_, err = suite.service.CashDeposit(ctx, "abc123", "9999", dec("500"))
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	suite.assertNoWrites()
}

func (suite *AccountServiceTestSuite) TestCashDeposit_AccountNotFound() {
	ctx := context.Background()
	suite.f.accounts.On("FindAccountByNumberForUpdate", ctx, "zzz999").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CashDeposit(ctx, "zzz999", "1234", dec("500"))

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.ErrorIs(err, apperrors.ErrAccountDoesNotExist)
	suite.assertNoWrites()
}

func (suite *AccountServiceTestSuite) TestCashDeposit_RecordFailureRollsBack() {
	ctx := context.Background()
	suite.f.accounts.On("FindAccountByNumberForUpdate", ctx, "abc123").Return(suite.account("abc123", "0", "1234"), nil).Once()
	suite.f.accounts.On("UpdateAccount", ctx, mock.Anything).Return(nil).Once()
	suite.f.transactions.On("SaveTransaction", ctx, mock.Anything).Return(assert.AnError).Once()

	_, err := suite.service.CashDeposit(ctx, "abc123", "1234", dec("500"))

	suite.ErrorIs(err, assert.AnError)
	suite.Equal(0, suite.f.uow.commits)
	suite.Equal(1, suite.f.uow.rollbacks)
	suite.f.publisher.AssertNotCalled(suite.T(), "PublishTransaction", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCashDeposit_PublishFailureDoesNotFailOperation() {
	ctx := context.Background()
	suite.f.accounts.On("FindAccountByNumberForUpdate", ctx, "abc123").Return(suite.account("abc123", "0", "1234"), nil).Once()
	suite.f.accounts.On("UpdateAccount", ctx, mock.Anything).Return(nil).Once()
	suite.f.transactions.On("SaveTransaction", ctx, mock.Anything).Return(nil).Once()
	suite.f.publisher.On("PublishTransaction", ctx, mock.Anything).Return(assert.AnError).Once()

	_, err := suite.service.CashDeposit(ctx, "abc123", "1234", dec("500"))

	suite.NoError(err)
	suite.Equal(1, suite.f.uow.commits)
}

// --- Cash withdrawal ---

func (suite *AccountServiceTestSuite) TestCashWithdrawal_Success() {
	ctx := context.Background()
	suite.f.accounts.On("FindAccountByNumberForUpdate", ctx, "abc123").Return(suite.account("abc123", "1000", "1234"), nil).Once()
	suite.f.accounts.On("UpdateAccount", ctx, accountWith("abc123", "700")).Return(nil).Once()
	suite.f.transactions.On("SaveTransaction", ctx, txnWith(domain.CashWithdrawal, "300", "abc123", "")).Return(nil).Once()
	suite.f.publisher.On("PublishTransaction", ctx, mock.Anything).Return(nil).Once()

	txn, err := suite.service.CashWithdrawal(ctx, "abc123", "1234", dec("300"))

	suite.Require().NoError(err)
	suite.Equal(domain.CashWithdrawal, txn.Type)
	suite.f.accounts.AssertExpectations(suite.T())
	suite.f.transactions.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCashWithdrawal_EntireBalance() {
	ctx := context.Background()
	suite.f.accounts.On("FindAccountByNumberForUpdate", ctx, "abc123").Return(suite.account("abc123", "500", "1234"), nil).Once()
	suite.f.accounts.On("UpdateAccount", ctx, accountWith("abc123", "0")).Return(nil).Once()
	suite.f.transactions.On("SaveTransaction", ctx, mock.Anything).Return(nil).Once()
	suite.f.publisher.On("PublishTransaction", ctx, mock.Anything).Return(nil).Once()

	_, err := suite.service.CashWithdrawal(ctx, "abc123", "1234", dec("500"))

	suite.NoError(err)
	suite.f.accounts.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCashWithdrawal_InsufficientBalance() {
	ctx := context.Background()
	suite.f.accounts.On("FindAccountByNumberForUpdate", ctx, "abc123").Return(suite.account("abc123", "150", "1234"), nil).Once()

	_, err := suite.service.CashWithdrawal(ctx, "abc123", "1234", dec("1000"))

	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
	suite.assertNoWrites()
}

// --- Fund transfer ---

func (suite *AccountServiceTestSuite) TestFundTransfer_Success() {
	ctx := context.Background()
	accounts := map[string]domain.Account{
		"bbb222": *suite.account("bbb222", "1000", "1234"),
		"aaa111": *suite.account("aaa111", "200", ""),
	}
	suite.f.accounts.On("FindAccountsByNumbersForUpdate", ctx, []string{"bbb222", "aaa111"}).Return(accounts, nil).Once()
	suite.f.accounts.On("UpdateAccount", ctx, accountWith("bbb222", "600")).Return(nil).Once()
	suite.f.accounts.On("UpdateAccount", ctx, accountWith("aaa111", "600")).Return(nil).Once()
	suite.f.transactions.On("SaveTransaction", ctx, txnWith(domain.CashTransfer, "400", "bbb222", "aaa111")).Return(nil).Once()
	suite.f.publisher.On("PublishTransaction", ctx, mock.MatchedBy(func(e ports.TransactionEvent) bool {
		return e.SourceAccountNumber == "bbb222" && e.TargetAccountNumber == "aaa111"
	})).Return(nil).Once()

	txn, err := suite.service.FundTransfer(ctx, "bbb222", "aaa111", "1234", dec("400"))

	suite.Require().NoError(err)
	suite.Equal(domain.CashTransfer, txn.Type)
	suite.Equal(1, suite.f.uow.commits)
	suite.f.accounts.AssertExpectations(suite.T())
	suite.f.transactions.AssertNumberOfCalls(suite.T(), "SaveTransaction", 1)
}

func (suite *AccountServiceTestSuite) TestFundTransfer_SameAccount() {
	ctx := context.Background()
	accounts := map[string]domain.Account{"aaa111": *suite.account("aaa111", "1000", "1234")}
	suite.f.accounts.On("FindAccountsByNumbersForUpdate", ctx, []string{"aaa111"}).Return(accounts, nil).Once()

	_, err := suite.service.FundTransfer(ctx, "aaa111", "aaa111", "1234", dec("100"))

	suite.ErrorIs(err, apperrors.ErrFundTransfer)
	suite.assertNoWrites()
}

func (suite *AccountServiceTestSuite) TestFundTransfer_TargetMissing() {
	ctx := context.Background()
	accounts := map[string]domain.Account{"aaa111": *suite.account("aaa111", "1000", "1234")}
	suite.f.accounts.On("FindAccountsByNumbersForUpdate", ctx, []string{"aaa111", "zzz999"}).Return(accounts, nil).Once()

	_, err := suite.service.FundTransfer(ctx, "aaa111", "zzz999", "1234", dec("100"))

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.assertNoWrites()
}

func (suite *AccountServiceTestSuite) TestFundTransfer_SourceMissing() {
	ctx := context.Background()
	accounts := map[string]domain.Account{"aaa111": *suite.account("aaa111", "1000", "1234")}
	suite.f.accounts.On("FindAccountsByNumbersForUpdate", ctx, []string{"zzz999", "aaa111"}).Return(accounts, nil).Once()

	_, err := suite.service.FundTransfer(ctx, "zzz999", "aaa111", "1234", dec("100"))

	suite.ErrorIs(err, apperrors.ErrAccountDoesNotExist)
	suite.assertNoWrites()
}

func (suite *AccountServiceTestSuite) TestFundTransfer_InsufficientBalance() {
	ctx := context.Background()
	accounts := map[string]domain.Account{
		"aaa111": *suite.account("aaa111", "100", "1234"),
		"bbb222": *suite.account("bbb222", "0", ""),
	}
	suite.f.accounts.On("FindAccountsByNumbersForUpdate", ctx, []string{"aaa111", "bbb222"}).Return(accounts, nil).Once()

	_, err := suite.service.FundTransfer(ctx, "aaa111", "bbb222", "1234", dec("200"))

	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
	suite.assertNoWrites()
}

func (suite *AccountServiceTestSuite) TestFundTransfer_PinCheckedBeforeAmount() {
	ctx := context.Background()
	accounts := map[string]domain.Account{
		"aaa111": *suite.account("aaa111", "100", "1234"),
		"bbb222": *suite.account("bbb222", "0", ""),
	}
	suite.f.accounts.On("FindAccountsByNumbersForUpdate", ctx, []string{"aaa111", "bbb222"}).Return(accounts, nil).Once()

	_, err := suite.service.FundTransfer(ctx, "aaa111", "bbb222", "0000", dec("150"))

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.assertNoWrites()
}

// --- PIN management ---

func (suite *AccountServiceTestSuite) TestCreatePin_Success() {
	ctx := context.Background()
	acc := suite.account("abc123", "0", "")
	suite.f.accounts.On("FindAccountByNumberForUpdate", ctx, "abc123").Return(acc, nil).Once()
	suite.f.users.On("FindUserByID", ctx, acc.UserID).Return(&domain.User{UserID: acc.UserID, PasswordHash: "enc:secret-pw"}, nil).Once()
	suite.f.accounts.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountNumber == "abc123" && a.PinHash == "enc:4321"
	})).Return(nil).Once()

	err := suite.service.CreatePin(ctx, "abc123", "secret-pw", "4321")

	suite.NoError(err)
	suite.f.accounts.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreatePin_Failures() {
	ctx := context.Background()
	user := &domain.User{UserID: "user-abc123", PasswordHash: "enc:secret-pw"}

	tests := []struct {
		name     string
		account  *domain.Account
		password string
		pin      string
		wantErr  error
	}{
		{"wrong password", suite.account("abc123", "0", ""), "nope", "1234", apperrors.ErrUnauthorized},
		{"empty password", suite.account("abc123", "0", ""), "", "1234", apperrors.ErrUnauthorized},
		{"pin already exists", suite.account("abc123", "0", "1111"), "secret-pw", "1234", apperrors.ErrPinAlreadyExists},
		{"empty pin", suite.account("abc123", "0", ""), "secret-pw", "", apperrors.ErrInvalidPin},
		{"short pin", suite.account("abc123", "0", ""), "secret-pw", "123", apperrors.ErrInvalidPin},
		{"non digit pin", suite.account("abc123", "0", ""), "secret-pw", "12a4", apperrors.ErrInvalidPin},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.f.accounts.On("FindAccountByNumberForUpdate", ctx, "abc123").Return(tt.account, nil).Once()
			suite.f.users.On("FindUserByID", ctx, "user-abc123").Return(user, nil).Maybe()

			err := suite.service.CreatePin(ctx, "abc123", tt.password, tt.pin)

			suite.ErrorIs(err, tt.wantErr)
		})
	}
	suite.f.accounts.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdatePin_Success() {
	ctx := context.Background()
	acc := suite.account("abc123", "0", "1111")
	suite.f.accounts.On("FindAccountByNumberForUpdate", ctx, "abc123").Return(acc, nil).Once()
	suite.f.users.On("FindUserByID", ctx, acc.UserID).Return(&domain.User{UserID: acc.UserID, PasswordHash: "enc:secret-pw"}, nil).Once()
	suite.f.accounts.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.PinHash == "enc:2222"
	})).Return(nil).Once()

	err := suite.service.UpdatePin(ctx, "abc123", "1111", "secret-pw", "2222")

	suite.NoError(err)
	suite.f.accounts.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdatePin_Failures() {
	ctx := context.Background()
	user := &domain.User{UserID: "user-abc123", PasswordHash: "enc:secret-pw"}

	tests := []struct {
		name     string
		account  *domain.Account
		oldPin   string
		password string
		newPin   string
		wantErr  error
	}{
		{"wrong password", suite.account("abc123", "0", "1111"), "1111", "bad", "2222", apperrors.ErrUnauthorized},
		{"pin not created", suite.account("abc123", "0", ""), "1111", "secret-pw", "2222", apperrors.ErrUnauthorized},
		{"wrong old pin", suite.account("abc123", "0", "1111"), "9999", "secret-pw", "2222", apperrors.ErrUnauthorized},
		{"bad new pin", suite.account("abc123", "0", "1111"), "1111", "secret-pw", "22222", apperrors.ErrInvalidPin},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.f.accounts.On("FindAccountByNumberForUpdate", ctx, "abc123").Return(tt.account, nil).Once()
			suite.f.users.On("FindUserByID", ctx, "user-abc123").Return(user, nil).Maybe()

			err := suite.service.UpdatePin(ctx, "abc123", tt.oldPin, tt.password, tt.newPin)

			suite.ErrorIs(err, tt.wantErr)
		})
	}
	suite.f.accounts.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

// --- Reads ---

func (suite *AccountServiceTestSuite) TestIsPinCreated() {
	ctx := context.Background()
	suite.f.accounts.On("FindAccountByNumber", ctx, "abc123").Return(suite.account("abc123", "0", "1111"), nil).Once()
	suite.f.accounts.On("FindAccountByNumber", ctx, "def456").Return(suite.account("def456", "0", ""), nil).Once()
	suite.f.accounts.On("FindAccountByNumber", ctx, "zzz999").Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.IsPinCreated(ctx, "abc123")
	suite.NoError(err)
	suite.True(created)

	created, err = suite.service.IsPinCreated(ctx, "def456")
	suite.NoError(err)
	suite.False(created)

	_, err = suite.service.IsPinCreated(ctx, "zzz999")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestListTransactions() {
	ctx := context.Background()
	history := []domain.Transaction{{TransactionID: "t1", Type: domain.CashDeposit, Amount: dec("100"), SourceAccountNumber: "abc123"}}
	suite.f.accounts.On("AccountExists", ctx, "abc123").Return(true, nil).Once()
	suite.f.transactions.On("ListTransactionsByAccountNumber", ctx, "abc123", 20, 0).Return(history, nil).Once()

	got, err := suite.service.ListTransactions(ctx, "abc123", 20, 0)

	suite.NoError(err)
	suite.Equal(history, got)

	suite.f.accounts.On("AccountExists", ctx, "zzz999").Return(false, nil).Once()
	_, err = suite.service.ListTransactions(ctx, "zzz999", 20, 0)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
