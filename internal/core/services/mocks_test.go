package services_test

import (
	"context"
	"strings"

	"github.com/SscSPs/banking_portal/internal/core/domain"
	"github.com/SscSPs/banking_portal/internal/core/ports"
	portsrepo "github.com/SscSPs/banking_portal/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByUserID(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) AccountExists(ctx context.Context, accountNumber string) (bool, error) {
	args := m.Called(ctx, accountNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByNumberForUpdate(ctx context.Context, accountNumber string) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByNumbersForUpdate(ctx context.Context, accountNumbers []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountNumbers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

// MockLoanRepository is a mock type for the LoanRepositoryFacade interface
type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) FindLoanByIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	args := m.Called(ctx, loanID)
	if fn, ok := args.Get(0).(func(context.Context, string) *domain.Loan); ok {
		return fn(ctx, loanID), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) ListLoansByAccountNumber(ctx context.Context, accountNumber string) ([]domain.Loan, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) SaveLoan(ctx context.Context, loan domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockLoanRepository) UpdateLoan(ctx context.Context, loan domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

// MockTransactionRepository is a mock type for the TransactionRepository interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListTransactionsByAccountNumber(ctx context.Context, accountNumber string, limit int, offset int) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountNumber, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockEventPublisher is a mock type for the EventPublisher interface
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishTransaction(ctx context.Context, event ports.TransactionEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}

// plainEncoder stands in for bcrypt so tests stay fast and digests are predictable.
type plainEncoder struct{}

func (plainEncoder) Encode(plain string) (string, error) { return "enc:" + plain, nil }

func (plainEncoder) Matches(plain, digest string) bool {
	return strings.HasPrefix(digest, "enc:") && digest == "enc:"+plain
}

// stubStore hands the mocks to the unit of work callback.
type stubStore struct {
	accounts     *MockAccountRepository
	loans        *MockLoanRepository
	transactions *MockTransactionRepository
	users        *MockUserRepository
}

func (s *stubStore) Accounts() portsrepo.AccountRepositoryFacade { return s.accounts }
func (s *stubStore) Loans() portsrepo.LoanRepositoryFacade       { return s.loans }
func (s *stubStore) Transactions() portsrepo.TransactionRepository {
	return s.transactions
}
func (s *stubStore) Users() portsrepo.UserRepositoryFacade { return s.users }

// stubUnitOfWork runs the callback against the mocks and counts the outcomes.
type stubUnitOfWork struct {
	store     *stubStore
	commits   int
	rollbacks int
}

func (u *stubUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, store portsrepo.LedgerStore) error) error {
	if err := fn(ctx, u.store); err != nil {
		u.rollbacks++
		return err
	}
	u.commits++
	return nil
}

// fixture bundles the mocks shared by the service suites.
type fixture struct {
	accounts     *MockAccountRepository
	loans        *MockLoanRepository
	transactions *MockTransactionRepository
	users        *MockUserRepository
	publisher    *MockEventPublisher
	uow          *stubUnitOfWork
}

func newFixture() *fixture {
	f := &fixture{
		accounts:     new(MockAccountRepository),
		loans:        new(MockLoanRepository),
		transactions: new(MockTransactionRepository),
		users:        new(MockUserRepository),
		publisher:    new(MockEventPublisher),
	}
	f.uow = &stubUnitOfWork{store: &stubStore{
		accounts:     f.accounts,
		loans:        f.loans,
		transactions: f.transactions,
		users:        f.users,
	}}
	return f
}

func (f *fixture) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     f.accounts,
		LoanRepo:        f.loans,
		TransactionRepo: f.transactions,
		UserRepo:        f.users,
		UnitOfWork:      f.uow,
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// accountWith matches an account update by number and exact balance.
func accountWith(number string, balance string) any {
	want := dec(balance)
	return mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountNumber == number && a.Balance.Equal(want)
	})
}

// txnWith matches a recorded transaction by type, amount and both sides.
func txnWith(txnType domain.TransactionType, amount string, source, target string) any {
	want := dec(amount)
	return mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Type == txnType && t.Amount.Equal(want) &&
			t.SourceAccountNumber == source && t.TargetAccountNumber == target &&
			t.TransactionID != ""
	})
}
