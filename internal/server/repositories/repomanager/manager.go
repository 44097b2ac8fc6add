package repomanager

import (
	"context"
	"database/sql"

	"github.com/pandax-i/healthhub/internal/dbx"
	"github.com/pandax-i/healthhub/internal/server/repositories/daily"
	"github.com/pandax-i/healthhub/internal/server/repositories/finance"
	"github.com/pandax-i/healthhub/internal/server/repositories/medications"
	"github.com/pandax-i/healthhub/internal/server/repositories/memos"
	"github.com/pandax-i/healthhub/internal/server/repositories/stool"
	"github.com/pandax-i/healthhub/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Medications(db dbx.DBTX) medications.Repository
	Stool(db dbx.DBTX) stool.Repository
	Daily(db dbx.DBTX) daily.Repository
	Memos(db dbx.DBTX) memos.Repository
	Finance(db dbx.DBTX) finance.Repository
}
