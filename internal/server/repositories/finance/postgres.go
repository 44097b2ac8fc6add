package finance

import (
	"context"
	"fmt"

	"github.com/pandax-i/healthhub/internal/dbx"
	"github.com/pandax-i/healthhub/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListAccounts(ctx context.Context, userID int64) ([]models.AccountWithBalance, error) {
	query :=
		`SELECT a.id, a.user_id, a.account_name, a.initial_balance, a.created_at,
		        a.initial_balance + COALESCE(SUM(
		            CASE WHEN t.transaction_type = 'income' THEN t.amount ELSE -t.amount END
		        ), 0) AS current_balance
		 FROM accounts a
		 LEFT JOIN transactions t ON t.account_id = a.id
		 WHERE a.user_id = $1
		 GROUP BY a.id
		 ORDER BY a.id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	accounts := []models.AccountWithBalance{}
	for rows.Next() {
		var a models.AccountWithBalance
		if err := rows.Scan(&a.ID, &a.UserID, &a.AccountName, &a.InitialBalance,
			&a.CreatedAt, &a.CurrentBalance); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return accounts, nil
}

func (r *PostgresRepository) CreateAccount(ctx context.Context, a *models.Account) (*models.Account, error) {
	query :=
		`INSERT INTO accounts (user_id, account_name, initial_balance)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, a.UserID, a.AccountName, a.InitialBalance).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *PostgresRepository) ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	query :=
		`SELECT t.id, t.user_id, t.account_id, t.transaction_type, t.amount,
		        t.category, t.notes, to_char(t.transaction_date, 'YYYY-MM-DD'), a.account_name
		 FROM transactions t
		 JOIN accounts a ON t.account_id = a.id
		 WHERE t.user_id = $1
		 ORDER BY t.transaction_date DESC, t.id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	txs := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.AccountID, &t.TransactionType,
			&t.Amount, &t.Category, &t.Notes, &t.TransactionDate, &t.AccountName); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return txs, nil
}

func (r *PostgresRepository) CreateTransaction(ctx context.Context, t *models.Transaction) (*models.Transaction, error) {
	query :=
		`INSERT INTO transactions (user_id, account_id, transaction_type, amount, category, notes, transaction_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7::date)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		t.UserID, t.AccountID, t.TransactionType, t.Amount, t.Category, t.Notes, t.TransactionDate).
		Scan(&t.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return t, nil
}

func (r *PostgresRepository) ListLoans(ctx context.Context, userID int64) ([]models.Loan, error) {
	query :=
		`SELECT id, user_id, loan_type, person_name, amount, notes,
		        to_char(loan_date, 'YYYY-MM-DD'), status, repayment_date
		 FROM loans
		 WHERE user_id = $1
		 ORDER BY loan_date DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	loans := []models.Loan{}
	for rows.Next() {
		var l models.Loan
		if err := rows.Scan(&l.ID, &l.UserID, &l.LoanType, &l.PersonName,
			&l.Amount, &l.Notes, &l.LoanDate, &l.Status, &l.RepaymentDate); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		loans = append(loans, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return loans, nil
}

func (r *PostgresRepository) CreateLoan(ctx context.Context, l *models.Loan) (*models.Loan, error) {
	query :=
		`INSERT INTO loans (user_id, loan_type, person_name, amount, notes, loan_date)
		 VALUES ($1, $2, $3, $4, $5, $6::date)
		 RETURNING id, status
		 `

	err := r.db.QueryRowContext(ctx, query,
		l.UserID, l.LoanType, l.PersonName, l.Amount, l.Notes, l.LoanDate).
		Scan(&l.ID, &l.Status)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return l, nil
}

func (r *PostgresRepository) SetLoanStatus(ctx context.Context, userID, id int64, status string) (bool, error) {
	query :=
		`UPDATE loans
		 SET status = $1,
		     repayment_date = CASE WHEN $1 = 'paid' THEN now() ELSE NULL END
		 WHERE id = $2 AND user_id = $3
		 `

	res, err := r.db.ExecContext(ctx, query, status, id, userID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return affected > 0, nil
}
