// Package httpapi exposes the application over REST: a chi router mounted
// under /api, JSON in and out, bearer-token protection for everything past
// the auth endpoints.
package httpapi

import (
	"database/sql"

	"github.com/pandax-i/healthhub/internal/logging"
	"github.com/pandax-i/healthhub/internal/server/config"
	"github.com/pandax-i/healthhub/internal/server/services"
)

// API holds the handler dependencies.
type API struct {
	logger              logging.Logger
	db                  *sql.DB
	users               *services.UserService
	oauth               *services.OAuthService
	meds                *services.MedicationService
	stool               *services.StoolService
	daily               *services.DailyService
	memos               *services.MemoService
	finance             *services.FinanceService
	secretKey           []byte
	frontendCallbackURL string
	corsAllowedOrigins  []string
}

// Deps bundles everything the API needs.
type Deps struct {
	Logger  logging.Logger
	DB      *sql.DB
	Users   *services.UserService
	OAuth   *services.OAuthService
	Meds    *services.MedicationService
	Stool   *services.StoolService
	Daily   *services.DailyService
	Memos   *services.MemoService
	Finance *services.FinanceService
}

// New constructs the API.
func New(d Deps, cfg *config.Config) *API {
	return &API{
		logger:              d.Logger,
		db:                  d.DB,
		users:               d.Users,
		oauth:               d.OAuth,
		meds:                d.Meds,
		stool:               d.Stool,
		daily:               d.Daily,
		memos:               d.Memos,
		finance:             d.Finance,
		secretKey:           []byte(cfg.SecretKey),
		frontendCallbackURL: cfg.FrontendCallbackURL,
		corsAllowedOrigins:  cfg.CORSAllowedOrigins,
	}
}
