package medications

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

func (r *PostgresRepository) List(ctx context.Context, userID int64) ([]models.Medication, error) {
	query :=
		`SELECT id, user_id, name, dosage, frequency, stock, medication_times, created_at
		 FROM medications
		 WHERE user_id = $1
		 ORDER BY id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	meds := []models.Medication{}
	for rows.Next() {
		var m models.Medication
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Dosage, &m.Frequency,
			&m.Stock, &m.MedicationTimes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		meds = append(meds, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return meds, nil
}

func (r *PostgresRepository) Create(ctx context.Context, m *models.Medication) (*models.Medication, error) {
	query :=
		`INSERT INTO medications (user_id, name, dosage, frequency, stock, medication_times)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		m.UserID, m.Name, m.Dosage, m.Frequency, m.Stock, m.MedicationTimes).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return m, nil
}

func (r *PostgresRepository) Update(ctx context.Context, m *models.Medication) error {
	query :=
		`UPDATE medications
		 SET name = $1, dosage = $2, frequency = $3, stock = $4, medication_times = $5
		 WHERE id = $6 AND user_id = $7
		 `

	res, err := r.db.ExecContext(ctx, query,
		m.Name, m.Dosage, m.Frequency, m.Stock, m.MedicationTimes, m.ID, m.UserID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM medications WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireAffected(res)
}

func (r *PostgresRepository) DecrementStock(ctx context.Context, userID, id int64, dose int) (bool, error) {
	query :=
		`UPDATE medications SET stock = stock - $1
		 WHERE id = $2 AND user_id = $3 AND stock >= $1
		 `

	res, err := r.db.ExecContext(ctx, query, dose, id, userID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return affected > 0, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, userID, id int64) (bool, error) {
	query := `SELECT 1 FROM medications WHERE id = $1 AND user_id = $2`

	var one int
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("db error: %w", err)
	}
	return true, nil
}

func (r *PostgresRepository) InsertLog(ctx context.Context, userID, medicationID int64) error {
	query :=
		`INSERT INTO medication_logs (user_id, medication_id)
		 VALUES ($1, $2)
		 `

	if _, err := r.db.ExecContext(ctx, query, userID, medicationID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Logs(ctx context.Context, userID, medicationID int64) ([]models.MedicationLog, error) {
	query :=
		`SELECT id, user_id, medication_id, taken_at
		 FROM medication_logs
		 WHERE medication_id = $1 AND user_id = $2
		 ORDER BY taken_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, medicationID, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	logs := []models.MedicationLog{}
	for rows.Next() {
		var l models.MedicationLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.MedicationID, &l.TakenAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return logs, nil
}

func requireAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
