package models

import "time"

// Memo is a to-do entry. CompletedAt is set when the memo transitions into
// the completed state and cleared when it transitions out.
type Memo struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	TaskName    string     `json:"task_name"`
	Priority    string     `json:"priority"`
	IsCompleted bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
}
