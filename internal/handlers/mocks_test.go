package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/banking_portal/internal/core/domain"
	portssvc "github.com/SscSPs/banking_portal/internal/core/ports/services"
	"github.com/SscSPs/banking_portal/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccount(ctx context.Context, accountNumber string) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) IsPinCreated(ctx context.Context, accountNumber string) (bool, error) {
	args := m.Called(ctx, accountNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountService) ListTransactions(ctx context.Context, accountNumber string, limit int, offset int) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountNumber, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockAccountService) CreatePin(ctx context.Context, accountNumber string, password string, pin string) error {
	args := m.Called(ctx, accountNumber, password, pin)
	return args.Error(0)
}

func (m *MockAccountService) UpdatePin(ctx context.Context, accountNumber string, oldPin string, password string, newPin string) error {
	args := m.Called(ctx, accountNumber, oldPin, password, newPin)
	return args.Error(0)
}

func (m *MockAccountService) CashDeposit(ctx context.Context, accountNumber string, pin string, amount decimal.Decimal) (*domain.Transaction, error) {
	args := m.Called(ctx, accountNumber, pin, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockAccountService) CashWithdrawal(ctx context.Context, accountNumber string, pin string, amount decimal.Decimal) (*domain.Transaction, error) {
	args := m.Called(ctx, accountNumber, pin, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockAccountService) FundTransfer(ctx context.Context, sourceAccountNumber string, targetAccountNumber string, pin string, amount decimal.Decimal) (*domain.Transaction, error) {
	args := m.Called(ctx, sourceAccountNumber, targetAccountNumber, pin, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock LoanService ---
type MockLoanService struct {
	mock.Mock
}

func (m *MockLoanService) ApplyForLoan(ctx context.Context, accountNumber string, amount decimal.Decimal, description string) (*domain.Loan, error) {
	args := m.Called(ctx, accountNumber, amount, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanService) ApproveLoan(ctx context.Context, loanID string) (*domain.Loan, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanService) RepayLoan(ctx context.Context, loanID string, amount decimal.Decimal) (*domain.Loan, error) {
	args := m.Called(ctx, loanID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanService) GetLoansByAccountNumber(ctx context.Context, accountNumber string) ([]domain.Loan, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

var _ portssvc.LoanSvcFacade = (*MockLoanService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, *domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Get(1).(*domain.Account), args.Error(2)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, identifier string, password string) (string, time.Time, *domain.Account, error) {
	args := m.Called(ctx, identifier, password)
	if args.Get(2) == nil {
		return "", time.Time{}, nil, args.Error(3)
	}
	return args.String(0), args.Get(1).(time.Time), args.Get(2).(*domain.Account), args.Error(3)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

func decimalEq(expected string) interface{} {
	want := decimal.RequireFromString(expected)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}
