// Package memos persists to-do entries.
package memos

import (
	"context"

	"github.com/pandax-i/healthhub/internal/server/models"
)

// Repository defines storage operations for memos, scoped to an owning user.
type Repository interface {
	// List returns memos incomplete-first, then by priority
	// (high, medium, low), newest first within a priority.
	List(ctx context.Context, userID int64) ([]models.Memo, error)

	Create(ctx context.Context, m *models.Memo) (*models.Memo, error)

	// SetStatus updates is_completed and sets completed_at when completing
	// or clears it when reopening, in one statement. Reports whether a row
	// was updated.
	SetStatus(ctx context.Context, userID, id int64, isCompleted bool) (bool, error)

	Delete(ctx context.Context, userID, id int64) error

	// SearchCompleted returns completed memos whose task name matches q,
	// most recently completed first.
	SearchCompleted(ctx context.Context, userID int64, q string) ([]models.Memo, error)
}
