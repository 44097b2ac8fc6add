// Package server initializes and runs the application: configuration,
// logging, database pool, migrations, services, and the HTTP endpoint with
// graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/pandax-i/healthhub/internal/logging"
	"github.com/pandax-i/healthhub/internal/server/config"
	"github.com/pandax-i/healthhub/internal/server/httpapi"
	"github.com/pandax-i/healthhub/internal/server/oauthx"
	"github.com/pandax-i/healthhub/internal/server/repositories/repomanager"
	"github.com/pandax-i/healthhub/internal/server/services"
)

const (
	maxOpenConns    = 10
	shutdownTimeout = 10 * time.Second
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	db.SetMaxOpenConns(maxOpenConns)
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm, err := repomanager.NewPostgresRepositoryManager(db)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	provider := oauthx.NewHTTPProvider(cfg)

	api := httpapi.New(httpapi.Deps{
		Logger:  logger,
		DB:      db,
		Users:   services.NewUserService(db, rm, cfg),
		OAuth:   services.NewOAuthService(db, rm, provider, cfg),
		Meds:    services.NewMedicationService(db, rm),
		Stool:   services.NewStoolService(db, rm),
		Daily:   services.NewDailyService(db, rm),
		Memos:   services.NewMemoService(db, rm),
		Finance: services.NewFinanceService(db, rm),
	}, cfg)

	srv := httpapi.NewServer(cfg.EndpointAddrHTTP, api.Router(), logger)

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
}

// Run serves until the context is canceled or SIGINT/SIGTERM arrives, then
// shuts the endpoint down with a bounded deadline and closes the pool.
func (app *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.server.Run()
	}()

	select {
	case err := <-errCh:
		app.db.Close()
		return err
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	err := app.server.Shutdown(shutdownCtx)
	if dbErr := app.db.Close(); err == nil {
		err = dbErr
	}
	return err
}
