package memos

import (
	"context"
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

func (r *PostgresRepository) List(ctx context.Context, userID int64) ([]models.Memo, error) {
	query :=
		`SELECT id, user_id, task_name, priority, is_completed, completed_at, created_at
		 FROM memos
		 WHERE user_id = $1
		 ORDER BY
		   is_completed ASC,
		   CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END,
		   created_at DESC
		 `

	return r.queryMemos(ctx, query, userID)
}

func (r *PostgresRepository) Create(ctx context.Context, m *models.Memo) (*models.Memo, error) {
	query :=
		`INSERT INTO memos (user_id, task_name, priority)
		 VALUES ($1, $2, $3)
		 RETURNING id, is_completed, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, m.UserID, m.TaskName, m.Priority).
		Scan(&m.ID, &m.IsCompleted, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return m, nil
}

func (r *PostgresRepository) SetStatus(ctx context.Context, userID, id int64, isCompleted bool) (bool, error) {
	query :=
		`UPDATE memos
		 SET is_completed = $1,
		     completed_at = CASE WHEN $1 THEN now() ELSE NULL END
		 WHERE id = $2 AND user_id = $3
		 `

	res, err := r.db.ExecContext(ctx, query, isCompleted, id, userID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return affected > 0, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM memos WHERE id = $1 AND user_id = $2`

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

func (r *PostgresRepository) SearchCompleted(ctx context.Context, userID int64, q string) ([]models.Memo, error) {
	query :=
		`SELECT id, user_id, task_name, priority, is_completed, completed_at, created_at
		 FROM memos
		 WHERE user_id = $1 AND is_completed = TRUE AND task_name ILIKE $2
		 ORDER BY completed_at DESC
		 `

	return r.queryMemos(ctx, query, userID, "%"+q+"%")
}

func (r *PostgresRepository) queryMemos(ctx context.Context, query string, args ...any) ([]models.Memo, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	memos := []models.Memo{}
	for rows.Next() {
		var m models.Memo
		if err := rows.Scan(&m.ID, &m.UserID, &m.TaskName, &m.Priority,
			&m.IsCompleted, &m.CompletedAt, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		memos = append(memos, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return memos, nil
}
