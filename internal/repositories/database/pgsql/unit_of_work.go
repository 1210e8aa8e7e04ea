package pgsql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/banking_portal/internal/apperrors"
	portsrepo "github.com/SscSPs/banking_portal/internal/core/ports/repositories"
	"github.com/SscSPs/banking_portal/internal/middleware"
	"github.com/jackc/pgx/v5"
)

// txBeginner is satisfied by *pgxpool.Pool.
type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// UnitOfWork runs callbacks inside a single pgx transaction.
type UnitOfWork struct {
	BaseRepository
	pool txBeginner
}

// NewUnitOfWork creates a unit of work backed by the pool.
func NewUnitOfWork(pool txBeginner) *UnitOfWork {
	return &UnitOfWork{pool: pool}
}

var _ portsrepo.UnitOfWork = (*UnitOfWork)(nil)

// Do begins a transaction, hands fn a store bound to it, and commits if fn
// returns nil. Errors and panics roll the transaction back; a panic is re-raised.
func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, store portsrepo.LedgerStore) error) error {
	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}

	// Rollback must still reach the server when the request was cancelled.
	cleanupCtx := context.WithoutCancel(ctx)

	defer func() {
		if p := recover(); p != nil {
			_ = u.Rollback(cleanupCtx, tx)
			panic(p)
		}
	}()

	if err := fn(ctx, newLedgerStore(tx)); err != nil {
		if rbErr := u.Rollback(cleanupCtx, tx); rbErr != nil {
			middleware.GetLoggerFromCtx(ctx).Error("Rollback failed after unit of work error",
				slog.String("error", rbErr.Error()),
				slog.String("cause", err.Error()))
			return errors.Join(err, rbErr)
		}
		return err
	}

	return u.Commit(ctx, tx)
}

// ledgerStore binds every repository to the same transaction.
type ledgerStore struct {
	accounts     *PgxAccountRepository
	loans        *PgxLoanRepository
	transactions *PgxTransactionRepository
	users        *PgxUserRepository
}

func newLedgerStore(db DBTX) *ledgerStore {
	return &ledgerStore{
		accounts:     newPgxAccountRepository(db),
		loans:        newPgxLoanRepository(db),
		transactions: newPgxTransactionRepository(db),
		users:        newPgxUserRepository(db),
	}
}

func (s *ledgerStore) Accounts() portsrepo.AccountRepositoryFacade    { return s.accounts }
func (s *ledgerStore) Loans() portsrepo.LoanRepositoryFacade          { return s.loans }
func (s *ledgerStore) Transactions() portsrepo.TransactionRepository { return s.transactions }
func (s *ledgerStore) Users() portsrepo.UserRepositoryFacade          { return s.users }
