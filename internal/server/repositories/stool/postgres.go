package stool

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

func (r *PostgresRepository) List(ctx context.Context, userID int64) ([]models.StoolLog, error) {
	query :=
		`SELECT id, user_id, to_char(log_date, 'YYYY-MM-DD'), stool_type, notes
		 FROM stool_logs
		 WHERE user_id = $1
		 ORDER BY log_date DESC, id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	logs := []models.StoolLog{}
	for rows.Next() {
		var l models.StoolLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.LogDate, &l.StoolType, &l.Notes); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return logs, nil
}

func (r *PostgresRepository) Dates(ctx context.Context, userID int64) ([]string, error) {
	query :=
		`SELECT DISTINCT to_char(log_date, 'YYYY-MM-DD')
		 FROM stool_logs
		 WHERE user_id = $1
		 ORDER BY 1
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	dates := []string{}
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return dates, nil
}

func (r *PostgresRepository) Create(ctx context.Context, l *models.StoolLog) (*models.StoolLog, error) {
	query :=
		`INSERT INTO stool_logs (user_id, log_date, stool_type, notes)
		 VALUES ($1, $2::date, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, l.UserID, l.LogDate, l.StoolType, l.Notes).Scan(&l.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return l, nil
}

func (r *PostgresRepository) Update(ctx context.Context, l *models.StoolLog) (*models.StoolLog, error) {
	query :=
		`UPDATE stool_logs
		 SET log_date = $1::date, stool_type = $2, notes = $3
		 WHERE id = $4 AND user_id = $5
		 `

	res, err := r.db.ExecContext(ctx, query, l.LogDate, l.StoolType, l.Notes, l.ID, l.UserID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return nil, common.ErrNotFound
	}

	return l, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM stool_logs WHERE id = $1 AND user_id = $2`

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
