package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pandax-i/healthhub/internal/common"
	"github.com/pandax-i/healthhub/internal/server/models"
	"github.com/pandax-i/healthhub/internal/server/repositories/repomanager"
)

// MemoService manages to-do entries.
type MemoService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewMemoService constructs a MemoService.
func NewMemoService(db *sql.DB, m repomanager.RepositoryManager) *MemoService {
	return &MemoService{db: db, repomanager: m}
}

// List returns the user's memos, incomplete first, then by priority.
func (s *MemoService) List(ctx context.Context, userID int64) ([]models.Memo, error) {
	return s.repomanager.Memos(s.db).List(ctx, userID)
}

// Create stores a new memo. The task name is required; an empty or unknown
// priority defaults to medium.
func (s *MemoService) Create(ctx context.Context, m *models.Memo) (*models.Memo, error) {
	if strings.TrimSpace(m.TaskName) == "" {
		return nil, common.ErrInvalidInput
	}
	switch m.Priority {
	case "low", "medium", "high":
	default:
		m.Priority = "medium"
	}
	return s.repomanager.Memos(s.db).Create(ctx, m)
}

// SetStatus transitions a memo into or out of the completed state, stamping
// or clearing the completion time in the same statement. An absent or
// foreign-owned memo yields ErrNotFound.
func (s *MemoService) SetStatus(ctx context.Context, userID, id int64, isCompleted bool) error {
	ok, err := s.repomanager.Memos(s.db).SetStatus(ctx, userID, id, isCompleted)
	if err != nil {
		return fmt.Errorf("error updating memo: %w", err)
	}
	if !ok {
		return common.ErrNotFound
	}
	return nil
}

// Delete removes an owned memo.
func (s *MemoService) Delete(ctx context.Context, userID, id int64) error {
	return s.repomanager.Memos(s.db).Delete(ctx, userID, id)
}

// SearchCompleted returns completed memos whose task name matches q.
func (s *MemoService) SearchCompleted(ctx context.Context, userID int64, q string) ([]models.Memo, error) {
	if strings.TrimSpace(q) == "" {
		return nil, common.ErrInvalidInput
	}
	return s.repomanager.Memos(s.db).SearchCompleted(ctx, userID, q)
}
