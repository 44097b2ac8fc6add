package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pandax-i/healthhub/internal/common"
	"github.com/pandax-i/healthhub/internal/server/models"
	"github.com/pandax-i/healthhub/internal/server/repositories/repomanager"
)

// FinanceService manages accounts, transactions, and loans. Account balances
// are derived from transactions at read time, never stored.
type FinanceService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewFinanceService constructs a FinanceService.
func NewFinanceService(db *sql.DB, m repomanager.RepositoryManager) *FinanceService {
	return &FinanceService{db: db, repomanager: m}
}

// ListAccounts returns the user's accounts with derived current balances.
func (s *FinanceService) ListAccounts(ctx context.Context, userID int64) ([]models.AccountWithBalance, error) {
	return s.repomanager.Finance(s.db).ListAccounts(ctx, userID)
}

// CreateAccount stores a new account. The name is required.
func (s *FinanceService) CreateAccount(ctx context.Context, a *models.Account) (*models.Account, error) {
	if strings.TrimSpace(a.AccountName) == "" {
		return nil, common.ErrInvalidInput
	}
	return s.repomanager.Finance(s.db).CreateAccount(ctx, a)
}

// ListTransactions returns the user's transactions, newest first, each with
// its account name.
func (s *FinanceService) ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	return s.repomanager.Finance(s.db).ListTransactions(ctx, userID)
}

// CreateTransaction stores a new income or expense entry. The account id,
// a known type, a positive amount, and a date are required.
func (s *FinanceService) CreateTransaction(ctx context.Context, t *models.Transaction) (*models.Transaction, error) {
	if t.AccountID == 0 || t.Amount <= 0 || t.TransactionDate == "" {
		return nil, common.ErrInvalidInput
	}
	if t.TransactionType != "income" && t.TransactionType != "expense" {
		return nil, common.ErrInvalidInput
	}
	return s.repomanager.Finance(s.db).CreateTransaction(ctx, t)
}

// ListLoans returns the user's loans, newest first.
func (s *FinanceService) ListLoans(ctx context.Context, userID int64) ([]models.Loan, error) {
	return s.repomanager.Finance(s.db).ListLoans(ctx, userID)
}

// CreateLoan stores a new loan. Type, person, amount, and date are required.
func (s *FinanceService) CreateLoan(ctx context.Context, l *models.Loan) (*models.Loan, error) {
	if l.LoanType != "lent" && l.LoanType != "borrowed" {
		return nil, common.ErrInvalidInput
	}
	if strings.TrimSpace(l.PersonName) == "" || l.Amount <= 0 || l.LoanDate == "" {
		return nil, common.ErrInvalidInput
	}
	return s.repomanager.Finance(s.db).CreateLoan(ctx, l)
}

// SetLoanStatus transitions a loan between pending and paid, stamping or
// clearing the repayment date in the same statement. An absent or
// foreign-owned loan yields ErrNotFound.
func (s *FinanceService) SetLoanStatus(ctx context.Context, userID, id int64, status string) error {
	if status != "pending" && status != "paid" {
		return common.ErrInvalidInput
	}
	ok, err := s.repomanager.Finance(s.db).SetLoanStatus(ctx, userID, id, status)
	if err != nil {
		return fmt.Errorf("error updating loan: %w", err)
	}
	if !ok {
		return common.ErrNotFound
	}
	return nil
}
