// Package stool persists bowel-movement logs.
package stool

import (
	"context"

	"github.com/pandax-i/healthhub/internal/server/models"
)

// Repository defines storage operations for stool logs, scoped to an owner.
type Repository interface {
	List(ctx context.Context, userID int64) ([]models.StoolLog, error)

	// Dates returns the distinct dates (YYYY-MM-DD) that have at least one
	// log, for calendar markers.
	Dates(ctx context.Context, userID int64) ([]string, error)

	Create(ctx context.Context, l *models.StoolLog) (*models.StoolLog, error)
	Update(ctx context.Context, l *models.StoolLog) (*models.StoolLog, error)
	Delete(ctx context.Context, userID, id int64) error
}
