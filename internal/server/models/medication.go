package models

import "time"

// Medication is a stock-bearing record: Stock must never go negative.
// A take operation decrements it conditionally and logs the intake in the
// same transaction.
type Medication struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	Name            string    `json:"name"`
	Dosage          string    `json:"dosage"`
	Frequency       string    `json:"frequency"`
	Stock           int       `json:"stock"`
	MedicationTimes string    `json:"medication_times"`
	CreatedAt       time.Time `json:"created_at"`
}

// MedicationLog records a single intake.
type MedicationLog struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	MedicationID int64     `json:"medication_id"`
	TakenAt      time.Time `json:"taken_at"`
}
