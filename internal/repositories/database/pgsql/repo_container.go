package pgsql

import (
	portsrepo "github.com/SscSPs/banking_portal/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider creates the repositories backed by the pool, plus the
// unit of work that binds them to a transaction.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(dbPool),
		LoanRepo:        newPgxLoanRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
		UnitOfWork:      NewUnitOfWork(dbPool),
	}
}
