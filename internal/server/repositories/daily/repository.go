// Package daily persists user-defined daily items and their per-date logs.
package daily

import (
	"context"

	"github.com/pandax-i/healthhub/internal/server/models"
)

// Repository defines storage operations for daily items and logs, scoped to
// an owning user id. The item-delete pieces are meant to run inside one
// transaction: GetItemName, DeleteLogsByItemName, DeleteItem.
type Repository interface {
	ListItems(ctx context.Context, userID int64) ([]models.DailyItem, error)
	CreateItem(ctx context.Context, item *models.DailyItem) (*models.DailyItem, error)

	// GetItemName returns the name of an owned item or common.ErrNotFound.
	GetItemName(ctx context.Context, userID, id int64) (string, error)

	// DeleteLogsByItemName removes all logs linked to the item name and
	// returns how many rows were removed.
	DeleteLogsByItemName(ctx context.Context, userID int64, itemName string) (int64, error)

	DeleteItem(ctx context.Context, userID, id int64) error

	// CompleteItem marks an owned one-time item completed and stamps
	// completed_at; it reports whether a row was updated.
	CompleteItem(ctx context.Context, userID, id int64) (bool, error)

	LogsByDate(ctx context.Context, userID int64, date string) ([]models.DailyLog, error)

	// UpsertLog inserts a log or, when one already exists for the same
	// (user, date, item name), overwrites its status and notes.
	UpsertLog(ctx context.Context, l *models.DailyLog) error

	// SearchLogs returns up to 50 logs whose item name or notes match q,
	// newest first.
	SearchLogs(ctx context.Context, userID int64, q string) ([]models.DailyLog, error)
}
