package services

import (
	"context"
	"database/sql"

	"github.com/pandax-i/healthhub/internal/common"
	"github.com/pandax-i/healthhub/internal/server/models"
	"github.com/pandax-i/healthhub/internal/server/repositories/repomanager"
)

// StoolService manages bowel-movement logs.
type StoolService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewStoolService constructs a StoolService.
func NewStoolService(db *sql.DB, m repomanager.RepositoryManager) *StoolService {
	return &StoolService{db: db, repomanager: m}
}

// List returns the user's logs, newest first.
func (s *StoolService) List(ctx context.Context, userID int64) ([]models.StoolLog, error) {
	return s.repomanager.Stool(s.db).List(ctx, userID)
}

// Dates returns the distinct dates that have at least one log, for calendar
// markers.
func (s *StoolService) Dates(ctx context.Context, userID int64) ([]string, error) {
	return s.repomanager.Stool(s.db).Dates(ctx, userID)
}

// Create stores a new log. The date is required.
func (s *StoolService) Create(ctx context.Context, l *models.StoolLog) (*models.StoolLog, error) {
	if l.LogDate == "" {
		return nil, common.ErrInvalidInput
	}
	return s.repomanager.Stool(s.db).Create(ctx, l)
}

// Update overwrites an owned log; absent or foreign rows yield ErrNotFound.
func (s *StoolService) Update(ctx context.Context, l *models.StoolLog) (*models.StoolLog, error) {
	if l.LogDate == "" {
		return nil, common.ErrInvalidInput
	}
	return s.repomanager.Stool(s.db).Update(ctx, l)
}

// Delete removes an owned log.
func (s *StoolService) Delete(ctx context.Context, userID, id int64) error {
	return s.repomanager.Stool(s.db).Delete(ctx, userID, id)
}
