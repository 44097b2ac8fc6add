package httpapi

import (
	"database/sql"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pandax-i/healthhub/internal/logging"
	"github.com/pandax-i/healthhub/internal/server/auth"
	"github.com/pandax-i/healthhub/internal/server/config"
	"github.com/pandax-i/healthhub/internal/server/repositories/repomanager"
	"github.com/pandax-i/healthhub/internal/server/services"
)

const testSecret = "test-secret"

// newTestAPI wires the real services and repositories over a sqlmock DB so
// requests exercise the full path from router to SQL.
func newTestAPI(t *testing.T) (http.Handler, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp),
		sqlmock.MonitorPingsOption(true),
	)
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		SecretKey:             testSecret,
		TokenValidityDuration: time.Hour,
		FrontendCallbackURL:   "http://localhost:5173/callback.html",
	}
	rm := &repomanager.PostgresRepositoryManager{}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	api := New(Deps{
		Logger:  logger,
		DB:      db,
		Users:   services.NewUserService(db, rm, cfg),
		Meds:    services.NewMedicationService(db, rm),
		Stool:   services.NewStoolService(db, rm),
		Daily:   services.NewDailyService(db, rm),
		Memos:   services.NewMemoService(db, rm),
		Finance: services.NewFinanceService(db, rm),
	}, cfg)

	return api.Router(), mock, db
}

func bearer(t *testing.T, userID int64) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, "a@b.c", []byte(testSecret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	return "Bearer " + token
}

func TestRegisterEndpoint(t *testing.T) {
	h, mock, _ := newTestAPI(t)

	mock.ExpectQuery(`INSERT INTO users \(email, password_hash\)`).
		WithArgs("a@b.c", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), time.Now()))

	req := httptest.NewRequest(http.MethodPost, "/api/register",
		strings.NewReader(`{"email":"a@b.c","password":"secret1"}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
}

func TestRegisterEndpoint_Duplicate(t *testing.T) {
	h, mock, _ := newTestAPI(t)

	mock.ExpectQuery(`INSERT INTO users \(email, password_hash\)`).
		WithArgs("a@b.c", sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	req := httptest.NewRequest(http.MethodPost, "/api/register",
		strings.NewReader(`{"email":"a@b.c","password":"secret1"}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "message") {
		t.Fatalf("error body missing message: %s", rr.Body.String())
	}
}

func TestRegisterEndpoint_ShortPassword(t *testing.T) {
	h, _, _ := newTestAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/register",
		strings.NewReader(`{"email":"a@b.c","password":"12345"}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
}

func TestLoginEndpoint_UnknownEmail(t *testing.T) {
	h, mock, _ := newTestAPI(t)

	mock.ExpectQuery(`SELECT id, email, password_hash, username, created_at FROM users`).
		WithArgs("ghost@b.c").
		WillReturnError(sql.ErrNoRows)

	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"email":"ghost@b.c","password":"whatever"}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	h, _, _ := newTestAPI(t)

	for _, path := range []string{"/api/me", "/api/medications/", "/api/memos/", "/api/finance/accounts"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("%s: status = %d, want 401", path, rr.Code)
		}
	}
}

func TestTakeEndpoint_InsufficientStock(t *testing.T) {
	h, mock, _ := newTestAPI(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE medications SET stock = stock - \$1`).
		WithArgs(1, int64(5), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT 1 FROM medications WHERE id = \$1 AND user_id = \$2`).
		WithArgs(int64(5), int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectRollback()

	req := httptest.NewRequest(http.MethodPost, "/api/medications/5/take", nil)
	req.Header.Set("Authorization", bearer(t, 42))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMemoDeleteEndpoint(t *testing.T) {
	h, mock, _ := newTestAPI(t)

	mock.ExpectExec(`DELETE FROM memos WHERE id = \$1 AND user_id = \$2`).
		WithArgs(int64(7), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest(http.MethodDelete, "/api/memos/7", nil)
	req.Header.Set("Authorization", bearer(t, 42))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	h, mock, _ := newTestAPI(t)

	mock.ExpectPing()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
}
