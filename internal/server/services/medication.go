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

// MedicationService manages medication plans and the take operation, which
// couples a conditional stock decrement with an intake log in one
// transaction.
type MedicationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewMedicationService constructs a MedicationService.
func NewMedicationService(db *sql.DB, m repomanager.RepositoryManager) *MedicationService {
	return &MedicationService{db: db, repomanager: m}
}

// List returns the user's medications, newest first.
func (s *MedicationService) List(ctx context.Context, userID int64) ([]models.Medication, error) {
	return s.repomanager.Medications(s.db).List(ctx, userID)
}

// Create stores a new medication. The name is required.
func (s *MedicationService) Create(ctx context.Context, m *models.Medication) (*models.Medication, error) {
	if strings.TrimSpace(m.Name) == "" {
		return nil, common.ErrInvalidInput
	}
	return s.repomanager.Medications(s.db).Create(ctx, m)
}

// Update overwrites an owned medication; absent or foreign rows yield
// ErrNotFound.
func (s *MedicationService) Update(ctx context.Context, m *models.Medication) error {
	if strings.TrimSpace(m.Name) == "" {
		return common.ErrInvalidInput
	}
	return s.repomanager.Medications(s.db).Update(ctx, m)
}

// Delete removes an owned medication.
func (s *MedicationService) Delete(ctx context.Context, userID, id int64) error {
	return s.repomanager.Medications(s.db).Delete(ctx, userID, id)
}

// Take decrements the medication's stock by dose and records the intake, in
// one transaction. Doses below one are treated as one. When the conditional
// decrement matches no row, an absent medication yields ErrNotFound and an
// existing one ErrInsufficientStock; either way the unit rolls back.
func (s *MedicationService) Take(ctx context.Context, userID, id int64, dose int) error {
	if dose < 1 {
		dose = 1
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Medications(tx)

		ok, err := repo.DecrementStock(ctx, userID, id, dose)
		if err != nil {
			return fmt.Errorf("error decrementing stock: %w", err)
		}
		if !ok {
			exists, err := repo.Exists(ctx, userID, id)
			if err != nil {
				return fmt.Errorf("error checking medication: %w", err)
			}
			if !exists {
				return common.ErrNotFound
			}
			return common.ErrInsufficientStock
		}

		if err := repo.InsertLog(ctx, userID, id); err != nil {
			return fmt.Errorf("error recording intake: %w", err)
		}
		return nil
	})
}

// Logs returns the intake history for one owned medication, newest first.
func (s *MedicationService) Logs(ctx context.Context, userID, id int64) ([]models.MedicationLog, error) {
	repo := s.repomanager.Medications(s.db)

	exists, err := repo.Exists(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("error checking medication: %w", err)
	}
	if !exists {
		return nil, common.ErrNotFound
	}
	return repo.Logs(ctx, userID, id)
}
