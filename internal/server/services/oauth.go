package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pandax-i/healthhub/internal/common"
	"github.com/pandax-i/healthhub/internal/server/auth"
	"github.com/pandax-i/healthhub/internal/server/config"
	"github.com/pandax-i/healthhub/internal/server/oauthx"
	"github.com/pandax-i/healthhub/internal/server/repositories/repomanager"
)

// OAuthService completes delegated logins: it redeems the authorization code
// with the external provider, creates or fetches the matching local account,
// and issues a session token.
type OAuthService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	provider              oauthx.Provider
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewOAuthService constructs an OAuthService.
func NewOAuthService(db *sql.DB, m repomanager.RepositoryManager, provider oauthx.Provider, cfg *config.Config) *OAuthService {
	return &OAuthService{
		db:                    db,
		repomanager:           m,
		provider:              provider,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// AuthCodeURL returns the provider page to redirect the browser to.
func (s *OAuthService) AuthCodeURL() string {
	return s.provider.AuthCodeURL()
}

// Complete redeems the authorization code and returns a session token for
// the matching local account, creating the account on first login. Provider
// failures yield ErrUpstream. Concurrent first logins both succeed: the
// insert serializes on the unique email and the loser fetches the winner's
// row.
func (s *OAuthService) Complete(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", common.ErrInvalidInput
	}

	info, err := s.provider.FetchUser(ctx, code)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}
	if info.Email == "" {
		return "", fmt.Errorf("%w: provider returned no email", common.ErrUpstream)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.CreateOAuth(ctx, info.Username, info.Email)
	if errors.Is(err, common.ErrConflict) {
		user, err = repo.GetByEmail(ctx, info.Email)
	}
	if err != nil {
		return "", fmt.Errorf("error resolving user: %w", err)
	}

	return auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenValidityDuration)
}
