package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/banking_portal/internal/apperrors"
	"github.com/SscSPs/banking_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/banking_portal/internal/core/ports/repositories"
	"github.com/SscSPs/banking_portal/internal/models"
	"github.com/SscSPs/banking_portal/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const loanColumns = `loan_id, account_number, amount, interest_rate, repayment_period,
	outstanding_balance, description, status, created_at, last_updated_at`

type PgxLoanRepository struct {
	BaseRepository
}

func newPgxLoanRepository(db DBTX) *PgxLoanRepository {
	return &PgxLoanRepository{BaseRepository{db: db}}
}

var _ portsrepo.LoanRepositoryFacade = (*PgxLoanRepository)(nil)

func scanLoan(row pgx.Row) (models.Loan, error) {
	var m models.Loan
	err := row.Scan(&m.LoanID, &m.AccountNumber, &m.Amount, &m.InterestRate, &m.RepaymentPeriod,
		&m.OutstandingBalance, &m.Description, &m.Status, &m.CreatedAt, &m.LastUpdatedAt)
	return m, err
}

func (r *PgxLoanRepository) findLoan(ctx context.Context, query, loanID string) (*domain.Loan, error) {
	m, err := scanLoan(r.db.QueryRow(ctx, query, loanID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find loan %s", loanID), err)
	}
	loan := mapping.ToDomainLoan(m)
	return &loan, nil
}

// FindLoanByID retrieves a loan by its ID.
func (r *PgxLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	return r.findLoan(ctx, `SELECT `+loanColumns+` FROM loans WHERE loan_id = $1;`, loanID)
}

// FindLoanByIDForUpdate retrieves a loan and locks its row.
func (r *PgxLoanRepository) FindLoanByIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	return r.findLoan(ctx, `SELECT `+loanColumns+` FROM loans WHERE loan_id = $1 FOR UPDATE;`, loanID)
}

// ListLoansByAccountNumber lists an account's loans, oldest first.
func (r *PgxLoanRepository) ListLoansByAccountNumber(ctx context.Context, accountNumber string) ([]domain.Loan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE account_number = $1
		ORDER BY created_at, loan_id;
	`
	rows, err := r.db.Query(ctx, query, accountNumber)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to list loans for account %s", accountNumber), err)
	}
	defer rows.Close()

	loans := []models.Loan{}
	for rows.Next() {
		m, err := scanLoan(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan loan row", err)
		}
		loans = append(loans, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating loan rows", err)
	}
	return mapping.ToDomainLoanSlice(loans), nil
}

// SaveLoan inserts a new loan.
func (r *PgxLoanRepository) SaveLoan(ctx context.Context, loan domain.Loan) error {
	m := mapping.ToModelLoan(loan)
	query := `
		INSERT INTO loans (loan_id, account_number, amount, interest_rate, repayment_period,
			outstanding_balance, description, status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query, m.LoanID, m.AccountNumber, m.Amount, m.InterestRate, m.RepaymentPeriod,
		m.OutstandingBalance, m.Description, m.Status, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: loan %s already exists", apperrors.ErrDuplicate, m.LoanID)
		}
		return apperrors.NewAppError(500, fmt.Sprintf("failed to save loan %s", m.LoanID), err)
	}
	return nil
}

// UpdateLoan writes the status and outstanding balance of an existing loan.
func (r *PgxLoanRepository) UpdateLoan(ctx context.Context, loan domain.Loan) error {
	m := mapping.ToModelLoan(loan)
	query := `
		UPDATE loans
		SET outstanding_balance = $2, status = $3, last_updated_at = $4
		WHERE loan_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, m.LoanID, m.OutstandingBalance, m.Status, m.LastUpdatedAt)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update loan %s", m.LoanID), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: loan %s", apperrors.ErrNotFound, m.LoanID)
	}
	return nil
}
