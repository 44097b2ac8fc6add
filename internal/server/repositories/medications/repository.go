// Package medications persists medication plans and intake logs.
package medications

import (
	"context"

	"github.com/pandax-i/healthhub/internal/server/models"
)

// Repository defines storage operations for medications, all scoped to an
// owning user id.
type Repository interface {
	List(ctx context.Context, userID int64) ([]models.Medication, error)
	Create(ctx context.Context, m *models.Medication) (*models.Medication, error)
	Update(ctx context.Context, m *models.Medication) error
	Delete(ctx context.Context, userID, id int64) error

	// DecrementStock subtracts dose from the medication's stock only when
	// enough stock remains and the row is owned by userID. It reports
	// whether a row was updated.
	DecrementStock(ctx context.Context, userID, id int64, dose int) (bool, error)

	// Exists reports whether the medication exists and is owned by userID.
	Exists(ctx context.Context, userID, id int64) (bool, error)

	// InsertLog records an intake of the medication.
	InsertLog(ctx context.Context, userID, medicationID int64) error

	// Logs returns the intake history for one medication, newest first.
	Logs(ctx context.Context, userID, medicationID int64) ([]models.MedicationLog, error)
}
