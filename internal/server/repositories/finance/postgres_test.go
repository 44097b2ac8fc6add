package finance

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/pandax-i/healthhub/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestListAccounts_DerivesBalance(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "user_id", "account_name", "initial_balance", "created_at", "current_balance"}).
		AddRow(int64(1), int64(1), "checking", 100.0, time.Now(), 175.5).
		AddRow(int64(2), int64(1), "savings", 500.0, time.Now(), 500.0)
	mock.ExpectQuery(`SELECT\s+a\.id,.*COALESCE\(SUM\(.*FROM\s+accounts\s+a\s+LEFT\s+JOIN\s+transactions\s+t`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	accounts, err := repo.ListAccounts(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListAccounts error: %v", err)
	}
	if len(accounts) != 2 || accounts[0].CurrentBalance != 175.5 {
		t.Fatalf("unexpected accounts: %+v", accounts)
	}
}

func TestCreateAccount(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+accounts\s+\(user_id,\s*account_name,\s*initial_balance\)`).
		WithArgs(int64(1), "checking", 100.0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), time.Now()))

	a, err := repo.CreateAccount(context.Background(), &models.Account{
		UserID: 1, AccountName: "checking", InitialBalance: 100,
	})
	if err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}
	if a.ID != 7 {
		t.Fatalf("unexpected id: %d", a.ID)
	}
}

func TestListTransactions_JoinsAccountName(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "user_id", "account_id", "transaction_type", "amount",
		"category", "notes", "transaction_date", "account_name"}).
		AddRow(int64(3), int64(1), int64(1), "expense", 12.5, "food", "lunch", "2026-08-29", "checking")
	mock.ExpectQuery(`SELECT\s+t\.id,.*FROM\s+transactions\s+t\s+JOIN\s+accounts\s+a\s+ON\s+t\.account_id\s*=\s*a\.id`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	txs, err := repo.ListTransactions(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListTransactions error: %v", err)
	}
	if len(txs) != 1 || txs[0].AccountName != "checking" || txs[0].TransactionDate != "2026-08-29" {
		t.Fatalf("unexpected transactions: %+v", txs)
	}
}

func TestCreateTransaction(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+transactions`).
		WithArgs(int64(1), int64(2), "income", 50.0, "salary", "", "2026-08-30").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	tx, err := repo.CreateTransaction(context.Background(), &models.Transaction{
		UserID: 1, AccountID: 2, TransactionType: "income", Amount: 50,
		Category: "salary", TransactionDate: "2026-08-30",
	})
	if err != nil {
		t.Fatalf("CreateTransaction error: %v", err)
	}
	if tx.ID != 11 {
		t.Fatalf("unexpected id: %d", tx.ID)
	}
}

func TestListLoans(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "user_id", "loan_type", "person_name", "amount",
		"notes", "loan_date", "status", "repayment_date"}).
		AddRow(int64(1), int64(1), "lent", "alex", 200.0, "", "2026-08-01", "pending", nil)
	mock.ExpectQuery(`SELECT\s+id,.*FROM\s+loans\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+loan_date\s+DESC`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	loans, err := repo.ListLoans(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListLoans error: %v", err)
	}
	if len(loans) != 1 || loans[0].Status != "pending" || loans[0].RepaymentDate != nil {
		t.Fatalf("unexpected loans: %+v", loans)
	}
}

func TestCreateLoan(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+loans`).
		WithArgs(int64(1), "borrowed", "sam", 75.0, "rent", "2026-08-15").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(int64(4), "pending"))

	l, err := repo.CreateLoan(context.Background(), &models.Loan{
		UserID: 1, LoanType: "borrowed", PersonName: "sam", Amount: 75,
		Notes: "rent", LoanDate: "2026-08-15",
	})
	if err != nil {
		t.Fatalf("CreateLoan error: %v", err)
	}
	if l.ID != 4 || l.Status != "pending" {
		t.Fatalf("unexpected loan: %+v", l)
	}
}

func TestSetLoanStatus(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `UPDATE\s+loans\s+SET\s+status\s*=\s*\$1,\s*repayment_date\s*=\s*CASE\s+WHEN\s+\$1\s*=\s*'paid'\s+THEN\s+now\(\)\s+ELSE\s+NULL\s+END\s+WHERE\s+id\s*=\s*\$2\s+AND\s+user_id\s*=\s*\$3`

	mock.ExpectExec(q).
		WithArgs("paid", int64(9), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.SetLoanStatus(context.Background(), 1, 9, "paid")
	if err != nil || !ok {
		t.Fatalf("SetLoanStatus = (%v, %v)", ok, err)
	}

	mock.ExpectExec(q).
		WithArgs("paid", int64(99), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err = repo.SetLoanStatus(context.Background(), 1, 99, "paid")
	if err != nil || ok {
		t.Fatalf("SetLoanStatus on missing loan = (%v, %v)", ok, err)
	}
}

func TestListLoans_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,.*FROM\s+loans`).
		WithArgs(int64(1)).
		WillReturnError(errors.New("boom"))

	if _, err := repo.ListLoans(context.Background(), 1); err == nil {
		t.Fatalf("expected error")
	}
}
