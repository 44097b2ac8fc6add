// Package finance persists accounts, transactions, and loans.
package finance

import (
	"context"

	"github.com/pandax-i/healthhub/internal/server/models"
)

// Repository defines storage operations for the finance records, scoped to
// an owning user id.
type Repository interface {
	// ListAccounts returns the user's accounts with current balances
	// derived in SQL from the transaction history.
	ListAccounts(ctx context.Context, userID int64) ([]models.AccountWithBalance, error)

	CreateAccount(ctx context.Context, a *models.Account) (*models.Account, error)

	// ListTransactions returns transactions joined with their account name,
	// newest first.
	ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error)

	CreateTransaction(ctx context.Context, t *models.Transaction) (*models.Transaction, error)

	ListLoans(ctx context.Context, userID int64) ([]models.Loan, error)
	CreateLoan(ctx context.Context, l *models.Loan) (*models.Loan, error)

	// SetLoanStatus updates a loan's status and stamps repayment_date when
	// it becomes paid or clears it otherwise, in one statement. Reports
	// whether a row was updated.
	SetLoanStatus(ctx context.Context, userID, id int64, status string) (bool, error)
}
