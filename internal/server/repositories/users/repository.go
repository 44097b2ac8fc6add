// Package users persists identity records.
package users

import (
	"context"

	"github.com/pandax-i/healthhub/internal/server/models"
)

// Repository defines storage operations for user identities.
type Repository interface {
	// Create inserts a local account with a password hash.
	// A duplicate email yields common.ErrConflict.
	Create(ctx context.Context, email, passwordHash string) (*models.User, error)

	// CreateOAuth inserts an account without a password hash. Concurrent
	// first logins serialize on the unique email constraint: on conflict no
	// row is inserted and common.ErrConflict is returned so the caller can
	// fetch the existing record instead.
	CreateOAuth(ctx context.Context, username, email string) (*models.User, error)

	// GetByEmail returns the user with the given email or common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user with the given id or common.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// UpdatePasswordHash replaces the stored hash for the given user.
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error
}
