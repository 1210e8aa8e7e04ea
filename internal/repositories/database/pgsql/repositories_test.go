package pgsql

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/banking_portal/internal/apperrors"
	"github.com/SscSPs/banking_portal/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errRow struct{ err error }

func (r errRow) Scan(dest ...any) error { return r.err }

// failingDB returns err from every call.
type failingDB struct{ err error }

func (f failingDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, f.err
}

func (f failingDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, f.err
}

func (f failingDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return errRow{err: f.err}
}

func TestRepositories_WrapConnectionFailures(t *testing.T) {
	ctx := context.Background()
	db := failingDB{err: errors.New("connection reset by peer")}
	accounts := newPgxAccountRepository(db)
	loans := newPgxLoanRepository(db)
	txns := newPgxTransactionRepository(db)
	users := newPgxUserRepository(db)

	calls := map[string]func() error{
		"SaveAccount": func() error { return accounts.SaveAccount(ctx, domain.Account{AccountNumber: "a1"}) },
		"FindAccountByNumber": func() error {
			_, err := accounts.FindAccountByNumber(ctx, "a1")
			return err
		},
		"FindAccountsByNumbersForUpdate": func() error {
			_, err := accounts.FindAccountsByNumbersForUpdate(ctx, []string{"a1", "a2"})
			return err
		},
		"FindLoanByID": func() error {
			_, err := loans.FindLoanByID(ctx, "l1")
			return err
		},
		"ListLoansByAccountNumber": func() error {
			_, err := loans.ListLoansByAccountNumber(ctx, "a1")
			return err
		},
		"SaveLoan":        func() error { return loans.SaveLoan(ctx, domain.Loan{LoanID: "l1"}) },
		"SaveTransaction": func() error { return txns.SaveTransaction(ctx, domain.Transaction{TransactionID: "t1"}) },
		"ListTransactionsByAccountNumber": func() error {
			_, err := txns.ListTransactionsByAccountNumber(ctx, "a1", 10, 0)
			return err
		},
		"SaveUser": func() error { return users.SaveUser(ctx, domain.User{UserID: "u1"}) },
		"FindUserByEmail": func() error {
			_, err := users.FindUserByEmail(ctx, "a@b.c")
			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			require.Error(t, err)
			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 500, appErr.Code)
			assert.ErrorIs(t, err, db.err)
			assert.NotErrorIs(t, err, apperrors.ErrNotFound)
		})
	}
}

func TestRepositories_TranslateDriverErrors(t *testing.T) {
	ctx := context.Background()

	_, err := newPgxLoanRepository(failingDB{err: pgx.ErrNoRows}).FindLoanByID(ctx, "l1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	var appErr *apperrors.AppError
	assert.False(t, errors.As(err, &appErr))

	dup := failingDB{err: &pgconn.PgError{Code: uniqueViolation}}
	err = newPgxUserRepository(dup).SaveUser(ctx, domain.User{UserID: "u1", Email: "a@b.c"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.False(t, errors.As(err, &appErr))
}
