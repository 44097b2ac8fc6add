package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pandax-i/healthhub/internal/common"
	"github.com/pandax-i/healthhub/internal/dbx"
	"github.com/pandax-i/healthhub/internal/server/models"
	"github.com/pandax-i/healthhub/internal/server/repositories/repomanager"
)

// DailyService manages user-defined daily items and their per-date logs.
// Deleting an item cascades to its logs in one transaction, because items
// and logs are linked by item name rather than a foreign key.
type DailyService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewDailyService constructs a DailyService.
func NewDailyService(db *sql.DB, m repomanager.RepositoryManager) *DailyService {
	return &DailyService{db: db, repomanager: m}
}

// ListItems returns the user's items.
func (s *DailyService) ListItems(ctx context.Context, userID int64) ([]models.DailyItem, error) {
	return s.repomanager.Daily(s.db).ListItems(ctx, userID)
}

// CreateItem stores a new item. Name and type are required.
func (s *DailyService) CreateItem(ctx context.Context, item *models.DailyItem) (*models.DailyItem, error) {
	if strings.TrimSpace(item.ItemName) == "" || item.ItemType == "" {
		return nil, common.ErrInvalidInput
	}
	return s.repomanager.Daily(s.db).CreateItem(ctx, item)
}

// DeleteItem removes an owned item together with every log sharing its name,
// in one transaction. An absent or foreign-owned item rolls back with
// ErrNotFound.
func (s *DailyService) DeleteItem(ctx context.Context, userID, id int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Daily(tx)

		name, err := repo.GetItemName(ctx, userID, id)
		if err != nil {
			return err
		}
		if _, err := repo.DeleteLogsByItemName(ctx, userID, name); err != nil {
			return fmt.Errorf("error deleting item logs: %w", err)
		}
		if err := repo.DeleteItem(ctx, userID, id); err != nil {
			return fmt.Errorf("error deleting item: %w", err)
		}
		return nil
	})
}

// CompleteItem marks an owned one-time item completed and stamps the
// completion time. A row that is absent, foreign-owned, or not one-time
// yields ErrNotFound.
func (s *DailyService) CompleteItem(ctx context.Context, userID, id int64) error {
	ok, err := s.repomanager.Daily(s.db).CompleteItem(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("error completing item: %w", err)
	}
	if !ok {
		return common.ErrNotFound
	}
	return nil
}

// LogsByDate returns the user's logs for one calendar date.
func (s *DailyService) LogsByDate(ctx context.Context, userID int64, date string) ([]models.DailyLog, error) {
	if date == "" {
		return nil, common.ErrInvalidInput
	}
	return s.repomanager.Daily(s.db).LogsByDate(ctx, userID, date)
}

// SaveLog inserts a log or overwrites the status and notes of an existing
// one for the same (date, item name).
func (s *DailyService) SaveLog(ctx context.Context, l *models.DailyLog) error {
	if l.LogDate == "" || strings.TrimSpace(l.ItemName) == "" {
		return common.ErrInvalidInput
	}
	return s.repomanager.Daily(s.db).UpsertLog(ctx, l)
}

// SearchLogs returns the newest logs whose item name or notes match q.
func (s *DailyService) SearchLogs(ctx context.Context, userID int64, q string) ([]models.DailyLog, error) {
	if strings.TrimSpace(q) == "" {
		return nil, common.ErrInvalidInput
	}
	return s.repomanager.Daily(s.db).SearchLogs(ctx, userID, q)
}
