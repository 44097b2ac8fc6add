package memos

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/pandax-i/healthhub/internal/common"
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

func TestList_OrdersByPriority(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "user_id", "task_name", "priority", "is_completed", "completed_at", "created_at"}).
		AddRow(int64(1), int64(1), "urgent", "high", false, nil, time.Now()).
		AddRow(int64(2), int64(1), "later", "low", false, nil, time.Now())
	mock.ExpectQuery(`SELECT\s+id,.*FROM\s+memos\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+is_completed\s+ASC,\s+CASE\s+priority`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	memos, err := repo.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(memos) != 2 || memos[0].Priority != "high" {
		t.Fatalf("unexpected memos: %+v", memos)
	}
}

func TestSetStatus(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `UPDATE\s+memos\s+SET\s+is_completed\s*=\s*\$1,\s*completed_at\s*=\s*CASE\s+WHEN\s+\$1\s+THEN\s+now\(\)\s+ELSE\s+NULL\s+END\s+WHERE\s+id\s*=\s*\$2\s+AND\s+user_id\s*=\s*\$3`

	mock.ExpectExec(q).
		WithArgs(true, int64(4), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.SetStatus(context.Background(), 1, 4, true)
	if err != nil || !ok {
		t.Fatalf("SetStatus = (%v, %v)", ok, err)
	}

	mock.ExpectExec(q).
		WithArgs(false, int64(99), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err = repo.SetStatus(context.Background(), 1, 99, false)
	if err != nil || ok {
		t.Fatalf("SetStatus = (%v, %v), want (false, nil)", ok, err)
	}
}

func TestCreate_DefaultsFromDB(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+memos`).
		WithArgs(int64(1), "buy milk", "medium").
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_completed", "created_at"}).
			AddRow(int64(5), false, time.Now()))

	m := &models.Memo{UserID: 1, TaskName: "buy milk", Priority: "medium"}
	got, err := repo.Create(context.Background(), m)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 5 || got.IsCompleted {
		t.Fatalf("unexpected memo: %+v", got)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+memos`).
		WithArgs(int64(7), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), 1, 7); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound, got %v", err)
	}
}

func TestSearchCompleted(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	done := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "task_name", "priority", "is_completed", "completed_at", "created_at"}).
		AddRow(int64(3), int64(1), "pay rent", "high", true, done, time.Now())
	mock.ExpectQuery(`SELECT\s+id,.*FROM\s+memos\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+is_completed\s*=\s*TRUE\s+AND\s+task_name\s+ILIKE\s+\$2`).
		WithArgs(int64(1), "%rent%").
		WillReturnRows(rows)

	memos, err := repo.SearchCompleted(context.Background(), 1, "rent")
	if err != nil {
		t.Fatalf("SearchCompleted error: %v", err)
	}
	if len(memos) != 1 || !memos[0].IsCompleted || memos[0].CompletedAt == nil {
		t.Fatalf("unexpected memos: %+v", memos)
	}
}
