// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/pandax-i/healthhub/internal/dbx"
	"github.com/pandax-i/healthhub/internal/server/migrations"
	"github.com/pandax-i/healthhub/internal/server/repositories/daily"
	"github.com/pandax-i/healthhub/internal/server/repositories/finance"
	"github.com/pandax-i/healthhub/internal/server/repositories/medications"
	"github.com/pandax-i/healthhub/internal/server/repositories/memos"
	"github.com/pandax-i/healthhub/internal/server/repositories/stool"
	"github.com/pandax-i/healthhub/internal/server/repositories/users"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Medications returns a medications.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Medications(db dbx.DBTX) medications.Repository {
	return medications.NewPostgresRepository(db)
}

// Stool returns a stool.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Stool(db dbx.DBTX) stool.Repository {
	return stool.NewPostgresRepository(db)
}

// Daily returns a daily.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Daily(db dbx.DBTX) daily.Repository {
	return daily.NewPostgresRepository(db)
}

// Memos returns a memos.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Memos(db dbx.DBTX) memos.Repository {
	return memos.NewPostgresRepository(db)
}

// Finance returns a finance.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Finance(db dbx.DBTX) finance.Repository {
	return finance.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetDialect("pgx")
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager(db *sql.DB) (RepositoryManager, error) {
	return &PostgresRepositoryManager{}, nil
}
