package daily

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pandax-i/healthhub/internal/common"
	"github.com/pandax-i/healthhub/internal/dbx"
	"github.com/pandax-i/healthhub/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListItems(ctx context.Context, userID int64) ([]models.DailyItem, error) {
	query :=
		`SELECT id, user_id, item_name, item_type, status, completed_at, created_at
		 FROM daily_items
		 WHERE user_id = $1
		 ORDER BY created_at ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := []models.DailyItem{}
	for rows.Next() {
		var it models.DailyItem
		if err := rows.Scan(&it.ID, &it.UserID, &it.ItemName, &it.ItemType,
			&it.Status, &it.CompletedAt, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return items, nil
}

func (r *PostgresRepository) CreateItem(ctx context.Context, item *models.DailyItem) (*models.DailyItem, error) {
	query :=
		`INSERT INTO daily_items (user_id, item_name, item_type)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, item.UserID, item.ItemName, item.ItemType).
		Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) GetItemName(ctx context.Context, userID, id int64) (string, error) {
	query := `SELECT item_name FROM daily_items WHERE id = $1 AND user_id = $2`

	var name string
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return name, nil
}

func (r *PostgresRepository) DeleteLogsByItemName(ctx context.Context, userID int64, itemName string) (int64, error) {
	query := `DELETE FROM daily_logs WHERE user_id = $1 AND item_name = $2`

	res, err := r.db.ExecContext(ctx, query, userID, itemName)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return affected, nil
}

func (r *PostgresRepository) DeleteItem(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM daily_items WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) CompleteItem(ctx context.Context, userID, id int64) (bool, error) {
	query :=
		`UPDATE daily_items SET status = 'completed', completed_at = now()
		 WHERE id = $1 AND user_id = $2 AND item_type = 'one-time'
		 `

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return affected > 0, nil
}

func (r *PostgresRepository) LogsByDate(ctx context.Context, userID int64, date string) ([]models.DailyLog, error) {
	query :=
		`SELECT id, user_id, to_char(log_date, 'YYYY-MM-DD'), item_name, status, notes
		 FROM daily_logs
		 WHERE user_id = $1 AND log_date = $2::date
		 `

	return r.queryLogs(ctx, query, userID, date)
}

func (r *PostgresRepository) UpsertLog(ctx context.Context, l *models.DailyLog) error {
	query :=
		`INSERT INTO daily_logs (user_id, log_date, item_name, status, notes)
		 VALUES ($1, $2::date, $3, $4, $5)
		 ON CONFLICT (user_id, log_date, item_name)
		 DO UPDATE SET status = EXCLUDED.status, notes = EXCLUDED.notes
		 `

	if _, err := r.db.ExecContext(ctx, query, l.UserID, l.LogDate, l.ItemName, l.Status, l.Notes); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) SearchLogs(ctx context.Context, userID int64, q string) ([]models.DailyLog, error) {
	query :=
		`SELECT id, user_id, to_char(log_date, 'YYYY-MM-DD'), item_name, status, notes
		 FROM daily_logs
		 WHERE user_id = $1 AND (item_name ILIKE $2 OR notes ILIKE $2)
		 ORDER BY log_date DESC
		 LIMIT 50
		 `

	return r.queryLogs(ctx, query, userID, "%"+q+"%")
}

func (r *PostgresRepository) queryLogs(ctx context.Context, query string, args ...any) ([]models.DailyLog, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	logs := []models.DailyLog{}
	for rows.Next() {
		var l models.DailyLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.LogDate, &l.ItemName, &l.Status, &l.Notes); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return logs, nil
}
