// Package services contains server-side business logic. This file implements
// UserService: registration, password login, password changes, and the
// profile view.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pandax-i/healthhub/internal/common"
	"github.com/pandax-i/healthhub/internal/server/auth"
	"github.com/pandax-i/healthhub/internal/server/config"
	"github.com/pandax-i/healthhub/internal/server/models"
	"github.com/pandax-i/healthhub/internal/server/repositories/repomanager"
)

// minPasswordLength is the minimum accepted plaintext password length.
const minPasswordLength = 6

// UserService provides password-based authentication:
// - Register: create local accounts
// - Login: verify credentials and mint a session token
// - ChangePassword: rotate the stored hash
// - Profile: client-safe view of the account
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a local account. The email must be non-empty and the
// password at least six characters; a duplicate email yields ErrConflict.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, common.ErrInvalidInput
	}
	if len(password) < minPasswordLength {
		return nil, common.ErrInvalidInput
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, email, hash)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and returns a signed session token.
// Unknown email, an account without a local password, and a wrong password
// are indistinguishable: all yield ErrUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", common.ErrInvalidInput
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrUnauthorized
		}
		return "", fmt.Errorf("error loading user: %w", err)
	}
	if user.PasswordHash == nil || !auth.CheckPassword(*user.PasswordHash, password) {
		return "", common.ErrUnauthorized
	}

	return auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenValidityDuration)
}

// ChangePassword verifies the old password and stores a hash of the new one.
// Accounts created through OAuth have no local password and yield
// ErrForbidden; an old-password mismatch yields ErrUnauthorized.
func (s *UserService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	if oldPassword == "" || len(newPassword) < minPasswordLength {
		return common.ErrInvalidInput
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("error loading user: %w", err)
	}
	if user.PasswordHash == nil {
		return common.ErrForbidden
	}
	if !auth.CheckPassword(*user.PasswordHash, oldPassword) {
		return common.ErrUnauthorized
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	if err := repo.UpdatePasswordHash(ctx, userID, hash); err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	return nil
}

// Profile returns the client-safe view of the account.
func (s *UserService) Profile(ctx context.Context, userID int64) (*models.Profile, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	p := user.Profile()
	return &p, nil
}
